package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptguard/redact/span"
)

func TestRecordRoundTrip(t *testing.T) {
	record := NewRecord("hearing.txt", []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John", Source: span.SourceTransformer},
	})

	data, err := MarshalRecords([]Record{record})
	require.NoError(t, err)

	records, err := UnmarshalRecords(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hearing.txt", records[0].File)
	require.Len(t, records[0].Annotations, 1)
	assert.Equal(t, "PERSON", records[0].Annotations[0].Label)
	assert.Equal(t, "John", records[0].Annotations[0].Preview)
}

func TestMergeReplacesExistingFile(t *testing.T) {
	records := []Record{
		{File: "a.txt", Annotations: []Annotation{{Start: 0, End: 1}}},
		{File: "b.txt"},
	}

	records = Merge(records, Record{File: "a.txt", Annotations: []Annotation{{Start: 5, End: 9}}})
	require.Len(t, records, 2)
	assert.Equal(t, 5, records[0].Annotations[0].Start)

	records = Merge(records, Record{File: "c.txt"})
	assert.Len(t, records, 3)
}

func TestWriteListing(t *testing.T) {
	var b strings.Builder
	err := WriteListing(&b, []span.Span{
		{Start: 5, End: 9, Label: span.LabelPerson, Text: "John", Source: span.SourceTagger},
	})
	require.NoError(t, err)
	assert.Contains(t, b.String(), "start:     5")
	assert.Contains(t, b.String(), "text: John")
	assert.Contains(t, b.String(), "label: PERSON")
}

func TestWriteIndexDeduplicatesAndSorts(t *testing.T) {
	var b strings.Builder
	err := WriteIndex(&b, []span.Span{
		{Label: span.LabelPerson, Text: "John", Replacement: "[Person_1]"},
		{Label: span.LabelPerson, Text: "John", Replacement: "[Person_1]"},
		{Label: span.LabelLocation, Text: "Ione", Replacement: "[City_1]"},
	})
	require.NoError(t, err)

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "LOCATION | Ione  ➡  [City_1]", lines[0])
	assert.Equal(t, "PERSON | John  ➡  [Person_1]", lines[1])
}

func TestWriteDocumentIndex(t *testing.T) {
	var b strings.Builder
	err := WriteDocumentIndex(&b, map[string]string{
		"b.txt": "[PERSON]_2.txt",
		"a.txt": "[PERSON]_1.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "a.txt ➡ [PERSON]_1.txt\nb.txt ➡ [PERSON]_2.txt", b.String())
}

func TestStats(t *testing.T) {
	stats := NewStats()
	stats.Add(
		[]span.Span{
			{Label: span.LabelPerson},
			{Label: span.LabelPerson},
			{Label: span.LabelDate},
		},
		[]span.Span{{Label: span.LabelOrganization}},
	)
	stats.Add([]span.Span{{Label: span.LabelPerson}}, nil)

	assert.Equal(t, 4, stats.TotalKept())
	assert.Equal(t, 1, stats.TotalFiltered())
	assert.Equal(t, 3, stats.Kept[span.LabelPerson])

	var b strings.Builder
	require.NoError(t, stats.Write(&b))
	assert.Contains(t, b.String(), "total kept annotations: 4")
	assert.Contains(t, b.String(), "total PERSON kept annotations: 3")
	assert.Contains(t, b.String(), "total ORGANIZATION filtered annotations: 1")
}

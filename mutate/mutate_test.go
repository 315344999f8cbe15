package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/span"
)

func TestRedact(t *testing.T) {
	text := "John met Jane"
	spans := []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John", Replacement: "[Person_1]"},
		{Start: 9, End: 13, Label: span.LabelPerson, Text: "Jane", Replacement: "[Person_2]"},
	}
	assert.Equal(t, "[Person_1] met [Person_2]", Redact(text, spans))
}

func TestRedactKeepsTextWithoutReplacement(t *testing.T) {
	text := "John met Jane"
	spans := []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
	}
	assert.Equal(t, "John met Jane", Redact(text, spans))
}

func TestRedactSkipsOutOfBoundsSpan(t *testing.T) {
	text := "short"
	spans := []span.Span{
		{Start: 0, End: 100, Replacement: "[X]"},
	}
	assert.Equal(t, "short", Redact(text, spans))
}

func TestRedactUsesRuneOffsets(t *testing.T) {
	text := "café of John"
	spans := []span.Span{
		{Start: 8, End: 12, Label: span.LabelPerson, Text: "John", Replacement: "[Person_1]"},
	}
	assert.Equal(t, "café of [Person_1]", Redact(text, spans))
}

func TestMarkupAndStrip(t *testing.T) {
	text := "John works at Acme Bank"
	spans := []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 14, End: 23, Label: span.LabelOrganization, Text: "Acme Bank"},
	}

	marked := Markup(text, spans)
	assert.Equal(t, "[John | PERSON] works at [Acme Bank | ORGANIZATION]", marked)
	assert.Equal(t, text, StripMarkup(marked))
}

func TestFileName(t *testing.T) {
	r := identity.NewRegistry()
	r.Store("person", "Smith", "[PERSON_1]")

	assert.Equal(t, "[PERSON] [PERSON_1]", FileName("hearing smith", r))
	assert.Equal(t, "[PERSON_1] [ID]", FileName("Smith AB12345", r))
	assert.Equal(t, "[PERSON_1] [DATE]", FileName("Smith 2001-12-25", r))
	assert.Equal(t, "[PERSON_1] [ID]", FileName("Smith AB123-", r))
	assert.Equal(t, "[PERSON_1] AB123-4", FileName("Smith AB123-4", r),
		"a digit after the dash means the identifier was not cut off")
}

func TestMatchesIDShape(t *testing.T) {
	assert.True(t, matchesIDShape("AB12345"))
	assert.True(t, matchesIDShape("123456"))
	assert.False(t, matchesIDShape("AB123-"))
	assert.False(t, matchesIDShape("Smith"))
}

func TestIsCutOffID(t *testing.T) {
	assert.True(t, isCutOffID([]string{"AB123", "-"}, 0))
	assert.True(t, isCutOffID([]string{"AB123", "-", " "}, 0))
	assert.False(t, isCutOffID([]string{"AB123", "-", "4"}, 0))
	assert.False(t, isCutOffID([]string{"AB123"}, 0))
	assert.False(t, isCutOffID([]string{"Smith", "-"}, 0))
}

// Package artifact renders the review artifacts produced alongside redacted
// transcripts: the per-document annotation record, the fixed-width span
// listing, the pseudonymization index, the document name index, and per-label
// statistics. Everything renders to writers or bytes; file placement is the
// caller's concern.
package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/transcriptguard/redact/span"
)

// Annotation is the serialized form of one span in a Record.
type Annotation struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Label   string `json:"label"`
	Preview string `json:"preview"`
	Source  string `json:"source"`
}

// Record ties one document to its canonical annotations.
type Record struct {
	File        string       `json:"file"`
	Annotations []Annotation `json:"annotations"`
}

// NewRecord builds a record from a document's canonical spans.
func NewRecord(file string, spans []span.Span) Record {
	annotations := make([]Annotation, 0, len(spans))
	for _, s := range spans {
		annotations = append(annotations, Annotation{
			Start:   s.Start,
			End:     s.End,
			Label:   s.Label.String(),
			Preview: s.Text,
			Source:  s.Source.String(),
		})
	}
	return Record{File: file, Annotations: annotations}
}

// Merge adds a record to the set, replacing the annotations of an existing
// record for the same file so a rerun updates rather than duplicates.
func Merge(records []Record, record Record) []Record {
	for i, existing := range records {
		if existing.File == record.File {
			records[i].Annotations = record.Annotations
			return records
		}
	}
	return append(records, record)
}

// MarshalRecords renders the record set as indented JSON.
func MarshalRecords(records []Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal annotation records: %w", err)
	}
	return data, nil
}

// UnmarshalRecords parses a record set written by MarshalRecords.
func UnmarshalRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal annotation records: %w", err)
	}
	return records, nil
}

// WriteListing renders the spans as fixed-width rows for side-by-side review.
func WriteListing(w io.Writer, spans []span.Span) error {
	for _, s := range spans {
		_, err := fmt.Fprintf(w, "start: %5d\t end: %5d\t text: %-30s\t label: %-15s\t source: %-10s\n",
			s.Start, s.End, s.Text, s.Label, s.Source)
		if err != nil {
			return fmt.Errorf("write span listing: %w", err)
		}
	}
	return nil
}

// WriteIndex renders the pseudonymization index: one deduplicated
// "LABEL | original  ➡  replacement" line per distinct substitution, sorted
// for stable output.
func WriteIndex(w io.Writer, spans []span.Span) error {
	seen := make(map[string]struct{})
	var lines []string
	for _, s := range spans {
		line := fmt.Sprintf("%s | %s  ➡  %s", s.Label, s.Text, s.Replacement)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	sort.Strings(lines)
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write pseudonymization index: %w", err)
	}
	return nil
}

// WriteDocumentIndex renders the original-to-redacted name mapping, sorted by
// original name.
func WriteDocumentIndex(w io.Writer, index map[string]string) error {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s ➡ %s", name, index[name]))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write document index: %w", err)
	}
	return nil
}

// Package span defines the data model for detected entity spans.
//
// A Span is a labeled character range over one document's text, produced by an
// annotator and consumed by the conflict-resolution and pseudonymization
// layers. Offsets are half-open rune offsets into the document text, so for a
// well-formed span the invariant []rune(text)[s.Start:s.End] corresponds to
// the detected substring (modulo trimming applied at construction).
package span

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidSpan indicates a span with malformed offsets (end before start or
// offsets outside the document text). Malformed spans are rejected at
// construction, not clamped.
var ErrInvalidSpan = errors.New("invalid span")

// Span is a single detected entity occurrence in a document.
type Span struct {
	// Start is the inclusive rune offset of the span in the document text.
	Start int `json:"start"`

	// End is the exclusive rune offset of the span in the document text.
	End int `json:"end"`

	// Label is the entity category of the span.
	Label Label `json:"label"`

	// Text is the detected substring, trimmed of surrounding whitespace.
	Text string `json:"preview"`

	// Source tags the annotator that produced the span.
	Source Source `json:"source"`

	// Replacement is the pseudonym substituted for Text. It is empty until a
	// pseudonymization strategy fills it; spans without a replacement are
	// carried through text mutation unchanged.
	Replacement string `json:"-"`
}

// New validates offsets against the document length and returns the span.
// docLen is the document text length in runes; pass a negative docLen to skip
// the upper-bound check when the document text is not at hand.
func New(start, end int, label Label, text string, source Source, docLen int) (Span, error) {
	if start < 0 || end < start {
		return Span{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidSpan, start, end)
	}
	if docLen >= 0 && end > docLen {
		return Span{}, fmt.Errorf("%w: end=%d exceeds document length %d", ErrInvalidSpan, end, docLen)
	}
	return Span{
		Start:  start,
		End:    end,
		Label:  label,
		Text:   strings.TrimSpace(text),
		Source: source,
	}, nil
}

// Key returns the span's identity key, "start|end". It identifies the span
// within one document when folding strategy output back into the span list.
func (s Span) Key() string {
	return fmt.Sprintf("%d|%d", s.Start, s.End)
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether the span starts before other has ended.
// It assumes s.Start <= other.Start.
func (s Span) Overlaps(other Span) bool {
	return other.Start <= s.End
}

// String formats the span the way annotation listings print it.
func (s Span) String() string {
	return fmt.Sprintf("%s | %s // start:%d, end:%d // source:%q", s.Text, s.Label, s.Start, s.End, s.Source)
}

// SortByStart sorts spans by start offset, then end offset. The sort is
// stable; conflict-resolution tie-breaks rely on input order surviving.
func SortByStart(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
}

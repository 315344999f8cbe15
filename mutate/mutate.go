// Package mutate rewrites transcript text from resolved spans. All span
// offsets are half-open rune offsets into the document; spans are applied in
// descending start order so earlier offsets stay valid while the text shrinks
// and grows under replacement.
package mutate

import (
	"regexp"
	"sort"

	"github.com/transcriptguard/redact/span"
)

var markupRe = regexp.MustCompile(`\[(.*?) \| [A-Z_]+\]`)

// descending returns the spans sorted by start, highest first.
func descending(spans []span.Span) []span.Span {
	sorted := make([]span.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })
	return sorted
}

// Redact replaces every span's text with its pseudonym. Spans without a
// replacement keep their original text, so an unpseudonymized span never
// turns into a hole.
func Redact(text string, spans []span.Span) string {
	runes := []rune(text)
	for _, s := range descending(spans) {
		if s.Start < 0 || s.End > len(runes) || s.Start > s.End {
			continue
		}
		replacement := s.Replacement
		if replacement == "" {
			replacement = string(runes[s.Start:s.End])
		}
		runes = append(runes[:s.Start], append([]rune(replacement), runes[s.End:]...)...)
	}
	return string(runes)
}

// Markup wraps every span in a review marker, so reviewers see what was
// detected and as what: "[John Doe | PERSON] works at [Acme | ORGANIZATION]".
func Markup(text string, spans []span.Span) string {
	runes := []rune(text)
	for _, s := range descending(spans) {
		if s.Start < 0 || s.End > len(runes) || s.Start > s.End {
			continue
		}
		marked := "[" + string(runes[s.Start:s.End]) + " | " + s.Label.String() + "]"
		runes = append(runes[:s.Start], append([]rune(marked), runes[s.End:]...)...)
	}
	return string(runes)
}

// StripMarkup removes review markers, recovering the original text from a
// Markup rendering.
func StripMarkup(text string) string {
	return markupRe.ReplaceAllString(text, "$1")
}

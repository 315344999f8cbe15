package pseudonym

import (
	"strings"
	"unicode"

	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

// spelledNameStrategy links letter-by-letter spellings ("J-O-H-N") back to
// the person registry. A reconstructed name that matches a registered person
// is replaced with the person's number under a SPELLED_NAME_PERSON tag; an
// unmatched spelling degrades to the bare [SPELLED_NAME] tag.
func spelledNameStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		name := textutil.CleanName(textutil.Title(reconstructSpelling(s.Text)))
		replacement := "[SPELLED_NAME]"
		if pseudo, ok := c.Registry.Lookup(personCategory, name); ok {
			linked := strings.ToLower(pseudo)
			linked = strings.ReplaceAll(linked, "person", "SPELLED_NAME_PERSON")
			replacement = strings.TrimSuffix(linked, "-")
		}
		values = append(values, NamedValue{
			Surface:     name,
			AllCaps:     textutil.IsUpper(s.Text),
			SpanKey:     s.Key(),
			Replacement: replacement,
		})
	}
	return values
}

// reconstructSpelling collapses a spelled sequence into the word it spells,
// e.g. "J-O-H-N" -> "JOHN". Letters and separators are expected to alternate;
// a second consecutive letter starts a new word ("J-O B-Y" -> "JO BY").
func reconstructSpelling(spelled string) string {
	var b strings.Builder
	expectLetter := true
	for _, r := range spelled {
		switch {
		case unicode.IsLetter(r):
			if !expectLetter {
				b.WriteRune(' ')
			}
			b.WriteRune(r)
			expectLetter = false
		case r == '-' || r == '—':
			expectLetter = true
		}
	}
	return b.String()
}

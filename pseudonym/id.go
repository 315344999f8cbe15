package pseudonym

import (
	"fmt"
	"regexp"

	"github.com/transcriptguard/redact/span"
)

const idCategory = "id"

var digitRunRe = regexp.MustCompile(`\d+`)

// idStrategy keys identifiers on their concatenated digit runs, so "AB-1234"
// and "AB 1234" share one [ID_n] identity. A mention without digits is not an
// identifier and passes through unchanged.
func idStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		digits := ""
		for _, run := range digitRunRe.FindAllString(s.Text, -1) {
			digits += run
		}
		if digits == "" {
			continue
		}
		pseudo, ok := c.Registry.Lookup(idCategory, digits)
		if !ok {
			pseudo = fmt.Sprintf("ID_%d", c.Registry.Next(idCategory))
			c.Registry.Store(idCategory, digits, pseudo)
		}
		values = append(values, NamedValue{
			Surface:     digits,
			SpanKey:     s.Key(),
			Replacement: "[" + pseudo + "]",
		})
	}
	return values
}

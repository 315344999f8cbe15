package pseudonym

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transcriptguard/redact/span"
)

// simpleStrategy builds the map-and-counter strategies that need no
// normalization beyond lowercasing: emails, URLs, phone numbers, and spelled
// out items. Identical values (case-insensitively) share one pseudonym.
func simpleStrategy(category, prefix string) strategy {
	return func(c *Context, spans []span.Span) []NamedValue {
		sorted := make([]span.Span, len(spans))
		copy(sorted, spans)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

		values := make([]NamedValue, 0, len(sorted))
		for _, s := range sorted {
			key := strings.ToLower(s.Text)
			pseudo, ok := c.Registry.Lookup(category, key)
			if !ok {
				pseudo = fmt.Sprintf("%s_%d", prefix, c.Registry.Next(category))
				c.Registry.Store(category, key, pseudo)
			}
			values = append(values, NamedValue{
				Surface:     key,
				SpanKey:     s.Key(),
				Replacement: "[" + pseudo + "]",
			})
		}
		return values
	}
}

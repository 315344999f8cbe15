package pseudonym

import (
	"strings"

	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
)

// heightStrategy replaces numeric tokens of a height mention with [HEIGHT]
// ("six foot two" -> "[HEIGHT] foot [HEIGHT]").
func heightStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		tokens := numword.Split(s.Text)
		for i, token := range tokens {
			token = numword.Convert(token)
			tokens[i] = token
			if numword.IsDigits(token) {
				tokens[i] = "[HEIGHT]"
			}
		}
		values = append(values, NamedValue{
			Surface:     s.Text,
			SpanKey:     s.Key(),
			Replacement: strings.Join(tokens, ""),
		})
	}
	return values
}

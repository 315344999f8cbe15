package pseudonym

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
)

var (
	clockRe = regexp.MustCompile(`^\d{1,2}[:;.]\d{2}$`)

	// timeSplitRe keeps clock readings and dd/dd/dddd dates whole, then
	// words, punctuation, and whitespace as individual tokens.
	timeSplitRe = regexp.MustCompile(`\d{1,2}[:;.]\d{2}|\b\d{1,2}/\d{1,2}/\d{4}\b|\w+|[^\w\s]|\s`)
)

// timeStrategy blanks the time-bearing tokens of a mention with [TIME],
// leaving the surrounding words in place. The digit 1 survives because it is
// almost always the article "one" misrecognized, not a clock value.
func timeStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		tokens := timeSplitRe.FindAllString(s.Text, -1)
		for i, token := range tokens {
			if isTimeToken(token) {
				tokens[i] = "[TIME]"
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

func isTimeToken(token string) bool {
	if clockRe.MatchString(token) {
		return true
	}
	if numword.IsDigits(token) {
		if v, err := strconv.Atoi(token); err == nil && v != 1 {
			return true
		}
	}
	if ordinalRe.MatchString(token) {
		return true
	}
	return monthRe.MatchString(token)
}

package pseudonym

import (
	"regexp"
	"strings"

	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

var (
	wordSplitRe      = regexp.MustCompile(`\w+|[^\w\s]|\s`)
	approximateAgeRe = regexp.MustCompile(`(?i)\b\d{1,2}ish\b`)
)

// ageStrategy replaces numeric tokens of an age mention with [AGE], after
// converting worded numerals ("fifty five years old" -> "[AGE] years old").
// "one day" and trailing "or two" mentions are idiom, not age, and pass
// through verbatim.
func ageStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		lower := strings.ToLower(s.Text)
		if strings.Contains(lower, "one day") || strings.HasSuffix(lower, "or two") {
			values = append(values, NamedValue{Surface: s.Text, SpanKey: s.Key(), Replacement: s.Text})
			continue
		}
		values = append(values, NamedValue{
			Surface:     s.Text,
			SpanKey:     s.Key(),
			Replacement: agePseudonym(numword.Convert(s.Text)),
		})
	}
	return values
}

func agePseudonym(converted string) string {
	tokens := wordSplitRe.FindAllString(converted, -1)
	for i, token := range tokens {
		token = numword.Convert(token)
		tokens[i] = token
		if numword.IsDigits(token) || approximateAgeRe.MatchString(token) {
			tokens[i] = "[AGE]"
			continue
		}
		// ordinals like 21st are neither digits nor letters but alphanumeric
		if !textutil.IsAlpha(token) && textutil.IsAlnum(token) && textutil.ContainsDigit(token) {
			if strings.Contains(token, "st") || strings.Contains(token, "nd") ||
				strings.Contains(token, "rd") || strings.Contains(token, "th") {
				tokens[i] = "[AGE]"
			}
		}
	}
	return strings.TrimSpace(strings.Join(tokens, ""))
}

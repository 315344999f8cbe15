package pseudonym

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
)

var (
	// simpleDateRe matches fully numeric dates with /, -, \ or . separators
	// and a 2- or 4-digit year.
	simpleDateRe = regexp.MustCompile(
		`\d{1,2}/\d{1,2}/(?:\d{4}|\d{2})\b|` +
			`\d{1,2}-\d{1,2}-(?:\d{4}|\d{2})\b|` +
			`\d{1,2}\\\d{1,2}\\(?:\d{4}|\d{2})\b|` +
			`\d{1,2}\.\d{1,2}\.(?:\d{4}|\d{2})\b`)

	monthRe = regexp.MustCompile(`(?i)^(January|February|March|April|May|June|July|August|September|October|November|December)$`)
	dayRe   = regexp.MustCompile(`(?i)\b(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)s?\b`)

	ordinalRe = regexp.MustCompile(`^\d{1,2}(th|st|nd|rd)$`)
	decadeRe  = regexp.MustCompile(`^\d0s$`)
)

// cutOffYearMarkers flag spoken years interrupted mid-word ("nineteen
// eighty- 1985"); converting the word fragments would double-count, so the
// raw tokens are kept.
var cutOffYearMarkers = []string{
	"thousand- ", "ninety- ", "nineteen eighty- ", "seventy- ",
	"sixty- ", "fifty- ", "forty- ", "thirty- ", "twenty- ",
}

// dateStrategy replaces the date-bearing tokens of a mention with structural
// placeholders ([MONTH], [DAY], [YEAR], ...) so the sentence shape survives.
// Spoken years ("two thousand five") are first reconstructed into a single
// numeric year token. A mention where nothing was recognized passes through
// unchanged.
func dateStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		values = append(values, NamedValue{
			Surface:     s.Text,
			SpanKey:     s.Key(),
			Replacement: datePseudonym(s.Text),
		})
	}
	return values
}

func datePseudonym(name string) string {
	if fullMatch(simpleDateRe, name) {
		return "[DATE]"
	}

	var tokens []string
	if numword.ContainsAny(name, cutOffYearMarkers) {
		tokens = numword.Split(name)
	} else {
		for _, token := range numword.Split(name) {
			tokens = append(tokens, numword.Convert(token))
		}
	}

	if numword.ContainsAny(name, []string{"thousand", "nineteen"}) {
		passthrough, rebuilt := reconstructSpokenYear(name, tokens)
		if passthrough {
			// ambiguous reconstruction: better to leave the mention
			// alone than to mangle it
			return ""
		}
		if rebuilt != nil {
			tokens = rebuilt
		}
	}

	out := make([]string, len(tokens))
	for i, token := range tokens {
		tokens[i] = numword.ReplaceDecade(token)
		out[i] = tokens[i]
	}
	for i, token := range tokens {
		switch {
		case token == " ":
		case fullMatch(simpleDateRe, token):
			out[i] = "[DATE]"
		case numword.IsDigits(token):
			if len(token) == 4 {
				out[i] = "[YEAR]"
			} else {
				out[i] = "[NUMBER]"
			}
		case monthRe.MatchString(token):
			out[i] = "[MONTH]"
		case dayRe.MatchString(token):
			out[i] = "[DAY_OF_WEEK]"
		case ordinalRe.MatchString(token):
			out[i] = "[DAY]"
		case decadeRe.MatchString(token):
			out[i] = "[DECADE]"
		}
	}

	rebuilt := strings.Join(out, "")
	if rebuilt == name {
		return ""
	}
	return rebuilt
}

// reconstructSpokenYear splices spoken-year fragments back into one numeric
// year: "two thousand five" tokenizes as "2 1000 5" and becomes "2005",
// "nineteen eighty five" as "19 80 5" and becomes "1985". It returns
// passthrough=true when the mention cannot be reconstructed safely, or a
// re-tokenized list with the year spliced in. The year 2000 is ambiguous
// ("two thousand" the year vs. the quantity), so those mentions keep their
// raw tokens instead of a reconstructed year.
func reconstructSpokenYear(name string, tokens []string) (passthrough bool, rebuilt []string) {
	var yearDigits []string
	hasDigits := false
	for _, token := range tokens {
		if !numword.IsDigits(token) {
			continue
		}
		hasDigits = true
		if v, _ := strconv.Atoi(token); v <= 1000 {
			yearDigits = append(yearDigits, token)
		}
	}
	if !hasDigits {
		return true, nil
	}

	startIdx, endIdx := 0, len(tokens)-1
	if len(yearDigits) > 0 {
		for i, token := range tokens {
			if token == yearDigits[0] {
				startIdx = i
			} else if token == yearDigits[len(yearDigits)-1] {
				endIdx = i
			}
		}
	}

	fullYear := 0
	if len(yearDigits) >= 2 {
		first, _ := strconv.Atoi(yearDigits[0])
		second, _ := strconv.Atoi(yearDigits[1])
		if yearDigits[1] == "1000" {
			fullYear = first * second
			if len(yearDigits) >= 3 {
				if third, _ := strconv.Atoi(yearDigits[2]); third < 100 {
					fullYear += third
				}
			}
		} else if yearDigits[0] == "19" {
			fullYear = first*100 + second
			if len(yearDigits) >= 3 {
				if third, _ := strconv.Atoi(yearDigits[2]); fullYear+third < time.Now().Year()+10 {
					fullYear += third
				}
			}
		}
	}

	badYear := fullYear == 0 || len(strconv.Itoa(fullYear)) != 4
	if fullYear == 2000 || (badYear && hasFourDigitToken(tokens)) {
		return false, numword.Split(name)
	}
	if badYear {
		return true, nil
	}

	var b strings.Builder
	for i := 0; i < len(tokens) && i <= startIdx; i++ {
		if i < startIdx {
			b.WriteString(tokens[i])
			continue
		}
		b.WriteString(strconv.Itoa(fullYear))
	}
	b.WriteString(strings.Join(tokens[endIdx+1:], ""))
	return false, numword.Split(b.String())
}

func hasFourDigitToken(tokens []string) bool {
	for _, token := range tokens {
		if numword.IsDigits(token) && len(token) == 4 {
			return true
		}
	}
	return false
}

func fullMatch(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

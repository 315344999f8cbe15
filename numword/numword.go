// Package numword converts worded numerals from transcribed speech into
// digits ("eighty five" -> "85"), maps decade words ("twenties" -> "20s"),
// and tokenizes annotation values the way the pseudonymization strategies
// expect. The vocabulary is the fixed set that appears in hearing speech:
// units, teens, tens, and the hundred/thousand/million/billion scales.
package numword

import (
	"regexp"
	"strconv"
	"strings"
)

var wordValues = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100, "thousand": 1000, "million": 1000000, "billion": 1000000000,
}

var decadeWords = map[string]string{
	"twenties":  "20s",
	"thirties":  "30s",
	"forties":   "40s",
	"fifties":   "50s",
	"sixties":   "60s",
	"seventies": "70s",
	"eighties":  "80s",
	"nineties":  "90s",
}

const wordAlternatives = `zero|one|two|three|four|five|six|seven|eight|nine|ten|` +
	`eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|` +
	`twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety|hundred|thousand|million|billion`

const secondWordAlternatives = `one|two|three|four|five|six|seven|eight|nine|ten|` +
	`eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|` +
	`thirty|forty|fifty|sixty|seventy|eighty|ninety`

var (
	wordedNumberRe = regexp.MustCompile(`(?i)\b(?:` + wordAlternatives + `)(?:[-\s](?:` + secondWordAlternatives + `))?\b`)
	decadeRe       = regexp.MustCompile(`^(` + strings.Join(decadeKeys(), "|") + `)\b`)

	// splitRe keeps dd/dd/dddd dates whole, then words, punctuation, and
	// whitespace as individual tokens.
	splitRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b|\w+|[^\w\s]|\s`)

	// fileSplitRe additionally keeps yyyy-mm-dd dates whole for file names.
	fileSplitRe = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}|\b\d{1,2}/\d{1,2}/\d{4}\b|\w+|[^\w\s]|\s`)
)

func decadeKeys() []string {
	keys := make([]string, 0, len(decadeWords))
	for k := range decadeWords {
		keys = append(keys, k)
	}
	return keys
}

// Parse converts a worded numeral of one or two words ("five", "eighty five",
// "twenty-five") into its value. The second word adds to a tens word;
// standalone scale words yield the scale itself ("thousand" -> 1000).
func Parse(words string) (int, bool) {
	fields := strings.FieldsFunc(strings.ToLower(words), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(fields) == 0 {
		return 0, false
	}
	if len(fields) == 2 {
		// spoken years: "nineteen eighty" -> 1980
		first, firstOK := wordValues[fields[0]]
		second, secondOK := wordValues[fields[1]]
		if firstOK && secondOK && first >= 10 && first <= 19 && second >= 20 && second%10 == 0 {
			return first*100 + second, true
		}
	}
	total := 0
	for i, field := range fields {
		v, ok := wordValues[field]
		if !ok {
			return 0, false
		}
		if i > 0 && v >= 100 {
			// "two hundred" style scaling
			total *= v
			continue
		}
		total += v
	}
	return total, true
}

// Convert replaces every worded numeral in text with its digit form. Text
// without worded numerals is returned unchanged.
func Convert(text string) string {
	return wordedNumberRe.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := Parse(match); ok {
			return strconv.Itoa(v)
		}
		return match
	})
}

// ReplaceDecade maps a leading decade word to its numeric form
// ("twenties" -> "20s"). Tokens without a decade word are returned unchanged.
func ReplaceDecade(token string) string {
	match := decadeRe.FindString(strings.ToLower(token))
	if match == "" {
		return token
	}
	return decadeWords[match]
}

// Split tokenizes an annotation value, keeping dd/dd/dddd dates whole and
// preserving whitespace and punctuation as their own tokens so the value can
// be rebuilt byte-for-byte with selected tokens substituted.
func Split(text string) []string {
	return splitRe.FindAllString(text, -1)
}

// SplitFileName tokenizes a derived artifact name; it additionally keeps
// yyyy-mm-dd date components whole.
func SplitFileName(name string) []string {
	return fileSplitRe.FindAllString(name, -1)
}

// ContainsAny reports whether the lowercased text contains any of the given
// keywords.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, word := range keywords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// IsDigits reports whether the token is one or more ASCII digits.
func IsDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Package textutil holds the small text helpers shared by the validity rules
// and the pseudonymization strategies: name cleaning, title casing that
// restarts at every non-letter, and case predicates over transcript text.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nameSymbolRe = regexp.MustCompile(`’s|'s|’|'|\.|\?|!|>|<`)
	digitRe      = regexp.MustCompile(`\d`)
)

// SpelledNameRe matches letter-by-letter spellings such as "J-O-H-N" or
// "S—M-I-T-H", allowing a stray space around the dashes.
var SpelledNameRe = regexp.MustCompile(`\b[A-Z][-—]\s?[A-Z](?:\s?[-—]\s?[A-Z])*\b`)

// CleanName strips possessives, quote marks, sentence punctuation, angle
// brackets, and digits from a detected name, then trims whitespace.
func CleanName(name string) string {
	cleaned := nameSymbolRe.ReplaceAllString(name, "")
	cleaned = digitRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// Title uppercases the first letter of every word and lowercases the rest,
// where a word starts at any letter that follows a non-letter. "john-DOE"
// becomes "John-Doe".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// IsUpper reports whether the string has at least one cased letter and every
// cased letter is uppercase.
func IsUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// IsLower reports whether the string has at least one cased letter and every
// cased letter is lowercase.
func IsLower(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// IsAlpha reports whether the string is non-empty and all letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether the string is non-empty and all letters or digits.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsDigit reports whether the string contains a decimal digit.
func ContainsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// ContainsLetter reports whether the string contains a letter.
func ContainsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

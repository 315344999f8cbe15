package resolve

import (
	"strings"
	"unicode"

	"github.com/transcriptguard/redact/span"
)

// resolveLabelPair applies the fixed precedence table for two spans covering
// the exact same range with different labels. current is the label of the
// representative kept so far, other/otherText describe the competing span.
// The table is symmetric in input order; unlisted pairs keep the current
// label.
func resolveLabelPair(current, other span.Label, otherText string) span.Label {
	switch {
	case pairIs(current, other, span.LabelPerson, span.LabelSpelledName):
		if strings.Contains(otherText, "-") {
			return span.LabelSpelledName
		}
		return span.LabelPerson

	case pairIs(current, other, span.LabelLocation, span.LabelID):
		// IDs carry a letter prefix but never an inner space
		if containsLetter(otherText) && !strings.Contains(otherText, " ") {
			return span.LabelID
		}
		return span.LabelLocation

	case pairIs(current, other, span.LabelSpelledName, span.LabelLocation):
		return span.LabelLocation

	case pairIs(current, other, span.LabelNRP, span.LabelPerson):
		return span.LabelPerson

	case pairIs(current, other, span.LabelPhoneNumber, span.LabelID):
		return span.LabelID
	}
	return current
}

func pairIs(a, b, x, y span.Label) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func containsLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

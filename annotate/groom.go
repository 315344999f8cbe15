package annotate

import (
	"strings"

	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

// basePersonTitles are the speaker roles that precede names in hearing
// transcripts. Lowercase and title-case variants are recognized too.
var basePersonTitles = []string{
	"INMATE", "ATTORNEY", "COMMISSIONER",
	"VICTIM", "<inaudible>", "VNOK",
	"INTERPRETER", "OBSERVER", "OFFICER",
	"DA", "NS", "Ms.", "Ms", "Mr.", "Mr",
	"Dear", "ADVOCATE", "SERGEANT", "Dr.",
}

// personPrefixes are transcription artifacts glued onto the front of
// detected names, checked in order.
var personPrefixes = []string{
	"<unintelligible>", "<unintelligible", "unintelligible>", "unintelligible",
	"<UNINTELLIGIBLE>", "<UNINTELLIGIBLE", "UNINTELLIGIBLE>", "UNINTELLIGIBLE",
	"Niece\n ", "Niece ",
	"<", "> ", "a ", "an ", "A ", "An ", "AN ", "the ", ".",
}

// personSuffixes are artifacts glued onto the end of detected names.
var personSuffixes = []string{
	"unintelligible", "<unintelligible", "<unintelligible>", "unintelligible>",
	"UNINTELLIGIBLE", "<UNINTELLIGIBLE", "<UNINTELLIGIBLE>", "UNINTELLIGIBLE>",
	">", "<", "’s", "'s", ", uh", "?", ".", "’", "'", "THROUGH", "through",
	"- and", "”", ",-", ",",
}

var dateTrailingSymbols = []string{"?", ".", "!", ",", ":", ";"}

// Groom applies the surface fix-ups detectors get wrong, keeping offsets in
// step with every text trim. Spans that groom down to nothing, or to a bare
// speaker title, are dropped.
func Groom(spans []span.Span) []span.Span {
	out := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		switch s.Label {
		case span.LabelPerson:
			s = GroomPerson(s)
		case span.LabelDate:
			s = TrimDateSymbols(s)
		}
		if s, ok := truncateAtNewline(s); ok {
			out = append(out, s)
			continue
		}
	}

	kept := out[:0]
	for _, s := range out {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" || isPersonTitle(trimmed) || s.Start >= s.End {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// GroomPerson runs the person-specific fix-ups in detection order: the
// speaker title, the interpreter tag, suffixes, prefixes, and finally any
// spelled name glued onto the end.
func GroomPerson(s span.Span) span.Span {
	s = TrimPersonTitle(s)

	if strings.HasSuffix(strings.ToLower(s.Text), " through interpreter") {
		size := len(" through interpreter")
		s.Text = s.Text[:len(s.Text)-size]
		s.End -= size
	}

	s = trimPersonSuffixes(s)
	s = trimPersonPrefixes(s)
	return SplitSpelledName(s)
}

// TrimPersonTitle removes a leading speaker title ("INMATE JOHN" -> "JOHN")
// and a trailing colon, moving the offsets with the text.
func TrimPersonTitle(s span.Span) span.Span {
	fields := strings.Fields(s.Text)
	if len(fields) > 0 && isPersonTitle(fields[0]) {
		title := fields[0]
		if rest, ok := strings.CutPrefix(s.Text, title); ok {
			s.Start += len([]rune(title))
			s.Text = rest
			if strings.HasPrefix(s.Text, " ") {
				s.Start++
				s.Text = s.Text[1:]
			}
		}
	}
	if strings.HasSuffix(s.Text, ":") {
		s.End--
		s.Text = strings.TrimSuffix(s.Text, ":")
	}
	return s
}

func trimPersonPrefixes(s span.Span) span.Span {
	for _, prefix := range personPrefixes {
		rest, ok := strings.CutPrefix(s.Text, prefix)
		if !ok || rest == "" {
			continue
		}
		s.Start += len([]rune(prefix))
		s.Text = rest
		if strings.HasPrefix(s.Text, " ") {
			s.Start++
			s.Text = s.Text[1:]
		}
	}
	if strings.HasPrefix(strings.ToLower(s.Text), "inmate ") {
		fields := strings.Fields(s.Text)
		s.Start += len([]rune("inmate "))
		s.Text = strings.Join(fields[1:], " ")
	}
	return s
}

func trimPersonSuffixes(s span.Span) span.Span {
	for _, suffix := range personSuffixes {
		rest, ok := strings.CutSuffix(s.Text, suffix)
		if !ok || rest == "" {
			continue
		}
		s.End -= len([]rune(suffix))
		s.Text = rest
	}
	return s
}

// SplitSpelledName cuts a spelled name off the end of a person span
// ("John J-O-H-N" -> "John"); the spelled part is detected separately under
// its own label.
func SplitSpelledName(s span.Span) span.Span {
	loc := textutil.SpelledNameRe.FindStringIndex(s.Text)
	if loc == nil {
		return s
	}
	spelled := s.Text[loc[0]:loc[1]]
	s.Text = s.Text[:loc[0]]
	s.End -= len([]rune(spelled)) + 1
	return s
}

// TrimDateSymbols removes one trailing sentence symbol and one leading space
// from a date span.
func TrimDateSymbols(s span.Span) span.Span {
	for _, symbol := range dateTrailingSymbols {
		if strings.HasSuffix(s.Text, symbol) {
			s.Text = s.Text[:len(s.Text)-1]
			s.End--
			break
		}
	}
	if strings.HasPrefix(s.Text, " ") {
		s.Text = s.Text[1:]
		s.Start++
	}
	return s
}

// truncateAtNewline keeps only the part before a single line break; a span
// crossing more than one line is noise and is dropped.
func truncateAtNewline(s span.Span) (span.Span, bool) {
	if !strings.Contains(s.Text, "\n") {
		return s, true
	}
	parts := strings.Split(s.Text, "\n")
	if len(parts) != 2 {
		return s, false
	}
	s.End -= len([]rune(parts[1])) + 1
	s.Text = parts[0]
	return s, true
}

func isPersonTitle(token string) bool {
	for _, title := range basePersonTitles {
		if token == title || token == strings.ToLower(title) || token == textutil.Title(title) {
			return true
		}
	}
	return false
}

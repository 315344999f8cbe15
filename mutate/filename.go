package mutate

import (
	"regexp"
	"strings"

	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/textutil"
)

var (
	// identifier shapes: a short letter prefix followed by digits, plus the
	// cut-off form ending in a dash
	idShapeRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z]{0,4}\d{5,10}\b`),
		regexp.MustCompile(`\b[A-Z]{1,4}\d{4,10}\b`),
	}
	cutOffIDRe = regexp.MustCompile(`\b[A-Z]{1,4}\d{2,5}-`)

	isoDateRe = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

// FileName pseudonymizes a derived artifact name so it stays consistent with
// the redacted content: name tokens resolve through the person registry built
// during pseudonymization, identifier-shaped tokens become [ID], and
// yyyy-mm-dd dates become [DATE]. A name token with no registry entry becomes
// the bare [PERSON] placeholder rather than leaking through.
func FileName(name string, registry *identity.Registry) string {
	tokens := numword.SplitFileName(name)
	for i, token := range tokens {
		switch {
		case isCutOffID(tokens, i):
			tokens[i] = "[ID]"
			tokens[i+1] = ""
		case textutil.IsAlpha(token):
			tokens[i] = personFileToken(token, registry)
		case textutil.IsAlnum(token) && matchesIDShape(token):
			tokens[i] = "[ID]"
		case isoDateRe.MatchString(token):
			tokens[i] = "[DATE]"
		}
	}
	return strings.Join(tokens, "")
}

func personFileToken(token string, registry *identity.Registry) string {
	if pseudo, ok := registry.Lookup("person", token); ok {
		return pseudo
	}
	for _, key := range registry.Keys("person") {
		if strings.EqualFold(key, token) {
			pseudo, _ := registry.Lookup("person", key)
			return pseudo
		}
	}
	return "[PERSON]"
}

func matchesIDShape(token string) bool {
	for _, re := range idShapeRes {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// isCutOffID reports whether tokens[i] plus the dash token after it form a
// cut-off identifier ("AB123-") with no digit continuing past the dash. The
// tokenizer splits the dash off, so the shape is reassembled before matching.
func isCutOffID(tokens []string, i int) bool {
	if i+1 >= len(tokens) || tokens[i+1] != "-" {
		return false
	}
	if i+2 < len(tokens) {
		next := tokens[i+2]
		if next != "" && next[0] >= '0' && next[0] <= '9' {
			return false
		}
	}
	loc := cutOffIDRe.FindStringIndex(tokens[i] + "-")
	return loc != nil && loc[0] == 0 && loc[1] == len(tokens[i])+1
}

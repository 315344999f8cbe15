package pseudonym

import (
	"errors"
	"fmt"
	"strings"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

const nrpCategory = "nrp"

var nrpCandidates = []string{
	"Person's religion", "Religion name", "Politics", "Political Stance",
	"Nationality", "Language", "Ethnicity",
}

var nrpKinds = map[string]struct {
	prefix  string
	counter string
}{
	"Person's religion": {"RELIGION", "religion"},
	"Religion name":     {"RELIGION", "religion"},
	"Politics":          {"POLITICAL", "politics"},
	"Political Stance":  {"POLITICAL", "politics"},
	"Nationality":       {"NATIONALITY", "nationality"},
	"Ethnicity":         {"ETHNICITY", "ethnicity"},
	"Language":          {"LANGUAGE", "language"},
}

// nrpStrategy pseudonymizes nationality/religious/political mentions. The
// surface form is normalized to a singular headword ("the Catholics" ->
// "Catholic") before registry lookup, so grammatical variants share one
// identity. The classifier picks the sub-type prefix.
func nrpStrategy(c *Context, spans []span.Span) []NamedValue {
	values := make([]NamedValue, 0, len(spans))
	for _, s := range spans {
		singular := normalizeNRP(c, s.Text)

		pseudo, ok := c.Registry.Lookup(nrpCategory, singular)
		if !ok {
			pseudo = c.newNRPPseudonym(singular)
		}
		c.Registry.Store(nrpCategory, singular, pseudo)

		if textutil.IsUpper(s.Text) {
			pseudo = strings.ToUpper(pseudo)
		}
		values = append(values, NamedValue{
			Surface:     singular,
			AllCaps:     textutil.IsUpper(s.Text),
			SpanKey:     s.Key(),
			Replacement: "[" + pseudo + "]",
		})
	}
	return values
}

// normalizeNRP reduces a mention to its singular, title-cased headword:
// leading articles and the "ex-" prefix are stripped, "Islamic" keys as
// "Islam", and plurals are singularized.
func normalizeNRP(c *Context, name string) string {
	lower := strings.ToLower(name)
	current := textutil.Title(name)
	if lower == "islamic" {
		current = current[:len(current)-2]
	}

	switch {
	case strings.HasPrefix(lower, "a "), strings.HasPrefix(lower, "the "), strings.HasPrefix(lower, "aa "):
		if parts := strings.Fields(current); len(parts) > 1 {
			current = strings.Join(parts[1:], " ")
		}
	case strings.HasPrefix(lower, "ex-"):
		current = strings.ReplaceAll(strings.ToLower(current), "ex-", "")
	}

	current = textutil.Title(current)
	if c.inflector.IsPlural(current) {
		current = c.inflector.Singular(current)
	}
	return current
}

func (c *Context) newNRPPseudonym(singular string) string {
	kindName, err := c.Classifier.Classify(c.Ctx, singular, nrpCandidates)
	if err == nil {
		if kind, ok := nrpKinds[kindName]; ok {
			return fmt.Sprintf("%s_%d", kind.prefix, c.Registry.Next("nrp."+kind.counter))
		}
	} else if !errors.Is(err, classify.ErrNoResult) {
		c.Logger.Warn("nrp classification failed", "error", err)
	}
	return fmt.Sprintf("NRP_%d", c.Registry.Next(nrpCategory))
}

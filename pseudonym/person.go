package pseudonym

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

const personCategory = "person"

// personStrategy pseudonymizes person names token by token. Every name token
// gets its own [PERSON_n] identity; an abbreviation entry keyed on the first
// letter is stored alongside so a later lone initial ("M.") resolves to the
// same person. Interrupted mentions ending in a dash ("Mi-") are resolved by
// searching earlier full names for the fragment.
func personStrategy(c *Context, spans []span.Span) []NamedValue {
	kept := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		if len([]rune(s.Text)) > 1 {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })

	values := make([]NamedValue, 0, len(kept))
	for _, s := range kept {
		cleaned := textutil.CleanName(s.Text)
		var parts []string
		if resolved, ok := resolveCutOffName(c, cleaned); ok {
			parts = resolved
		} else {
			for _, token := range numword.Split(cleaned) {
				parts = append(parts, personToken(c, token))
			}
		}
		values = append(values, NamedValue{
			Surface:     textutil.Title(cleaned),
			AllCaps:     textutil.IsUpper(s.Text),
			SpanKey:     s.Key(),
			Replacement: strings.Join(parts, ""),
		})
	}
	return values
}

// resolveCutOffName handles names interrupted mid-word ("Mi-"): when an
// already registered name token contains the fragment, the whole registered
// pseudonym is reused for the fragment.
func resolveCutOffName(c *Context, name string) ([]string, bool) {
	if !strings.HasSuffix(name, "-") {
		return nil, false
	}
	fragment := textutil.Title(strings.TrimSuffix(name, "-"))
	for _, key := range c.Registry.Keys(personCategory) {
		if strings.Contains(key, fragment) {
			pseudo, _ := c.Registry.Lookup(personCategory, key)
			return []string{pseudo}, true
		}
	}
	return nil, false
}

func personToken(c *Context, token string) string {
	if !textutil.IsAlpha(token) {
		return token
	}
	if numword.ContainsAny(token, []string{"unintelligible", "inaudible"}) {
		switch strings.ToLower(token) {
		case "unintelligible":
			return "<unintelligible>"
		case "inaudible":
			return "<inaudible>"
		}
		return strings.ToLower(token)
	}

	title := textutil.Title(token)
	if pseudo, ok := c.Registry.Lookup(personCategory, title); ok {
		return pseudo
	}
	pseudo := fmt.Sprintf("[PERSON_%d]", c.Registry.Next(personCategory))
	c.Registry.Store(personCategory, title, pseudo)
	// abbreviation entry: a later bare initial maps to the same person
	initial := string([]rune(title)[0])
	c.Registry.Store(personCategory, initial, strings.ToUpper(pseudo))
	return pseudo
}

package pseudonym

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

const organizationCategory = "organization"

// orgKinds maps trigger keywords to a typed pseudonym prefix, checked in
// order. "pd" only counts as police at the end of the name.
var orgKinds = []struct {
	trigger *regexp.Regexp
	suffix  string
	counter string
}{
	{regexp.MustCompile(`(?i)university`), "University", "university"},
	{regexp.MustCompile(`(?i)school`), "School", "school"},
	{regexp.MustCompile(`(?i)prison`), "Prison", "prison"},
	{regexp.MustCompile(`(?i)hospital`), "Hospital", "hospital"},
	{regexp.MustCompile(`(?i)jail`), "Jail", "jail"},
	{regexp.MustCompile(`(?i)asylum`), "Asylum", "asylum"},
	{regexp.MustCompile(`(?i)police|pd$`), "Police_Department", "police"},
	{regexp.MustCompile(`(?i)facility|facilities`), "Facility", "facility"},
	{regexp.MustCompile(`(?i)senate`), "Senate", "senate"},
	{regexp.MustCompile(`(?i)training`), "Training", "training"},
	{regexp.MustCompile(`(?i)group`), "Group", "group"},
	{regexp.MustCompile(`(?i)bank`), "Bank", "bank"},
	{regexp.MustCompile(`(?i)program`), "Program", "program"},
	{regexp.MustCompile(`(?i)board`), "Board", "board"},
	{regexp.MustCompile(`(?i)office`), "Office", "office"},
	{regexp.MustCompile(`(?i)factories|factory`), "Factory", "factory"},
	{regexp.MustCompile(`(?i)industries|industry`), "Factory", "factory"},
}

// orgClassifierKinds lets the classifier pick a typed prefix when no keyword
// fired, e.g. for "Sing Sing" without the word "prison" in it. Keyword
// matches always win over the classifier.
var orgClassifierKinds = map[string]struct {
	suffix  string
	counter string
}{
	"University":        {"University", "university"},
	"School":            {"School", "school"},
	"Prison":            {"Prison", "prison"},
	"Hospital":          {"Hospital", "hospital"},
	"Police Department": {"Police_Department", "police"},
	"Bank":              {"Bank", "bank"},
	"Government Body":   {"Board", "board"},
	"Company":           {"Group", "group"},
}

var orgClassifierCandidates = []string{
	"University", "School", "Prison", "Hospital", "Police Department",
	"Bank", "Government Body", "Company", "Miscellaneous",
}

// organizationStrategy pseudonymizes organizations, shortest name first so a
// short form registers before the long forms that embed it. A new name whose
// text contains an already registered organization as a whole word reuses
// that registration.
func organizationStrategy(c *Context, spans []span.Span) []NamedValue {
	sorted := make([]span.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) < len(sorted[j].Text)
	})

	values := make([]NamedValue, 0, len(sorted))
	for _, s := range sorted {
		allCaps := textutil.IsUpper(s.Text)
		pseudo := organizationPseudonym(c, s.Text)
		if allCaps {
			pseudo = strings.ToUpper(pseudo)
		}
		values = append(values, NamedValue{
			Surface:     textutil.Title(s.Text),
			AllCaps:     allCaps,
			SpanKey:     s.Key(),
			Replacement: "[" + pseudo + "]",
		})
	}
	return values
}

func organizationPseudonym(c *Context, name string) string {
	title := textutil.Title(name)
	if pseudo, ok := c.Registry.Lookup(organizationCategory, title); ok {
		return pseudo
	}
	for _, key := range c.Registry.Keys(organizationCategory) {
		wholeWord, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
		if err != nil {
			continue
		}
		if wholeWord.MatchString(name) {
			pseudo, _ := c.Registry.Lookup(organizationCategory, key)
			return pseudo
		}
	}

	pseudo := textutil.Title(c.newOrganizationPseudonym(name))
	c.Registry.Store(organizationCategory, title, pseudo)
	return pseudo
}

func (c *Context) newOrganizationPseudonym(name string) string {
	for _, kind := range orgKinds {
		if kind.trigger.MatchString(name) {
			return fmt.Sprintf("%s_%d", kind.suffix, c.Registry.Next("org."+kind.counter))
		}
	}

	kindName, err := c.Classifier.Classify(c.Ctx, name, orgClassifierCandidates)
	if err == nil {
		if kind, ok := orgClassifierKinds[kindName]; ok {
			return fmt.Sprintf("%s_%d", kind.suffix, c.Registry.Next("org."+kind.counter))
		}
	} else if !errors.Is(err, classify.ErrNoResult) {
		c.Logger.Warn("organization classification failed", "error", err)
	}
	return fmt.Sprintf("ORGANIZATION_%d", c.Registry.Next(organizationCategory+".generic"))
}

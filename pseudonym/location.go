package pseudonym

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/numword"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

const locationCategory = "location"

var locationCandidates = []string{
	"Zip Code", "zip", "zipcode", "Address", "Country", "State", "City", "Miscellaneous",
}

// locationKinds maps a classifier answer (matched by containment, so "Zip
// Code" also catches "zipcode") to a typed prefix and counter.
var locationKinds = []struct {
	key     string
	suffix  string
	counter string
}{
	{"zip code", "ZIP_CODE", "zip_code"},
	{"zip", "ZIP_CODE", "zip_code"},
	{"zipcode", "ZIP_CODE", "zip_code"},
	{"address", "ADDRESS", "address"},
	{"country", "COUNTRY", "country"},
	{"state", "STATE", "state"},
	{"city", "CITY", "city"},
	{"miscellaneous", "MISCELLANEOUS", locationCategory},
}

// locationStrategy pseudonymizes locations, shortest first so that a city
// name registers before "the city of X" style long forms that contain it. A
// long form reuses the registration of any part already in the registry.
// Counties bypass classification; everything else gets sub-typed by the
// classifier.
func locationStrategy(c *Context, spans []span.Span) []NamedValue {
	kept := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		if s.Text != "" {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i].Text) < len(kept[j].Text)
	})

	values := make([]NamedValue, 0, len(kept))
	for _, s := range kept {
		allCaps := textutil.IsUpper(s.Text)

		var pseudo string
		if strings.Contains(strings.ToLower(s.Text), "county") {
			pseudo = countyPseudonym(c, s.Text)
		} else {
			pseudo = locationPseudonym(c, s.Text)
		}
		if allCaps {
			pseudo = strings.ToUpper(pseudo)
		}
		// multi-line addresses collapse to one line
		pseudo = strings.ReplaceAll(pseudo, "\n", ". ")

		values = append(values, NamedValue{
			Surface:     textutil.Title(s.Text),
			AllCaps:     allCaps,
			SpanKey:     s.Key(),
			Replacement: "[" + pseudo + "]",
		})
	}
	return values
}

func countyPseudonym(c *Context, name string) string {
	title := textutil.Title(name)
	if pseudo, ok := c.Registry.Lookup(locationCategory, title); ok {
		return pseudo
	}
	pseudo := fmt.Sprintf("County_%d", c.Registry.Next("county"))
	c.Registry.Store(locationCategory, title, pseudo)
	return pseudo
}

func locationPseudonym(c *Context, name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	title := textutil.Title(name)
	if pseudo, ok := c.Registry.Lookup(locationCategory, title); ok {
		return pseudo
	}
	for _, part := range numword.Split(name) {
		if pseudo, ok := c.Registry.Lookup(locationCategory, textutil.Title(part)); ok {
			return pseudo
		}
	}

	pseudo := textutil.Title(c.newLocationPseudonym(name))
	c.Registry.Store(locationCategory, title, pseudo)
	return pseudo
}

func (c *Context) newLocationPseudonym(name string) string {
	kindName, err := c.Classifier.Classify(c.Ctx, name, locationCandidates)
	if err != nil {
		if !errors.Is(err, classify.ErrNoResult) {
			c.Logger.Warn("location classification failed", "error", err)
		}
		return fmt.Sprintf("Location_%d", c.Registry.Next(locationCategory))
	}
	lower := strings.ToLower(kindName)
	for _, kind := range locationKinds {
		if strings.Contains(lower, kind.key) {
			return fmt.Sprintf("%s_%d", kind.suffix, c.Registry.Next(kind.counter))
		}
	}
	return fmt.Sprintf("Location_%d", c.Registry.Next(locationCategory))
}

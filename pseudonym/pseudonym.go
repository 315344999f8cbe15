// Package pseudonym generates stable, re-identifiable replacements for
// canonical spans.
//
// One strategy exists per entity category. Each strategy consumes the
// document's identity registry so that two spans denoting the same entity get
// the same counter-based pseudonym, even when the surface form changes
// between occurrences (case, truncation, spelling-out). Strategies read spans
// and fill only the Replacement field; a span left without a replacement
// passes through text mutation unchanged.
//
// All registry state is per document. Apply must be called with a fresh
// registry for every document unless cross-document sharing was explicitly
// opted into (see the identity package).
package pseudonym

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/textutil"
)

// Context carries the per-document state and collaborators a strategy needs.
type Context struct {
	// Ctx is the request context, passed to the classifier.
	Ctx context.Context

	// Registry is the document's identity registry.
	Registry *identity.Registry

	// Classifier sub-types organization, location, and NRP values. Use
	// classify.None when no model backend is available.
	Classifier classify.Classifier

	// Logger records degraded paths (classifier misses, ambiguous year
	// reconstruction). Optional.
	Logger *slog.Logger

	inflector *pluralize.Client
}

// NewContext builds a strategy context around a fresh registry.
func NewContext(ctx context.Context, registry *identity.Registry, classifier classify.Classifier, logger *slog.Logger) *Context {
	if classifier == nil {
		classifier = classify.None
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		Ctx:        ctx,
		Registry:   registry,
		Classifier: classifier,
		Logger:     logger,
		inflector:  pluralize.NewClient(),
	}
}

// NamedValue is the per-category working unit: one span's surface form and
// the replacement computed for it. It back-references the span by key, never
// by ownership.
type NamedValue struct {
	// Surface is the normalized surface form the strategy worked on.
	Surface string

	// AllCaps records whether the original span text was fully uppercase.
	AllCaps bool

	// SpanKey is the owning span's identity key ("start|end").
	SpanKey string

	// Replacement is the computed pseudonym, empty when the strategy
	// declined (ambiguous reconstruction, nothing to substitute).
	Replacement string
}

type strategy func(c *Context, spans []span.Span) []NamedValue

// applyOrder fixes strategy execution order: person must run before spelled
// name, which derives its identities from the person registry.
var applyOrder = []struct {
	label span.Label
	run   strategy
}{
	{span.LabelPerson, personStrategy},
	{span.LabelSpelledName, spelledNameStrategy},
	{span.LabelOrganization, organizationStrategy},
	{span.LabelLocation, locationStrategy},
	{span.LabelURL, simpleStrategy("url", "URL")},
	{span.LabelEmail, simpleStrategy("email", "EMAIL")},
	{span.LabelNRP, nrpStrategy},
	{span.LabelDate, dateStrategy},
	{span.LabelTime, timeStrategy},
	{span.LabelID, idStrategy},
	{span.LabelAge, ageStrategy},
	{span.LabelHeight, heightStrategy},
	{span.LabelPhoneNumber, simpleStrategy("phone_number", "PHONE_NUMBER")},
	{span.LabelSpelledOutItem, simpleStrategy("spelled_out_item", "SPELLED_OUT_ITEM")},
}

// Apply runs every category strategy over its spans and folds the computed
// replacements back into the span list, returning a new list. Spans whose
// strategy produced no replacement keep an empty Replacement.
func Apply(c *Context, spans []span.Span) []span.Span {
	byLabel := make(map[span.Label][]span.Span)
	for _, s := range spans {
		byLabel[s.Label] = append(byLabel[s.Label], s)
	}

	replacements := make(map[string]NamedValue)
	for _, entry := range applyOrder {
		labeled := byLabel[entry.label]
		if len(labeled) == 0 {
			continue
		}
		for _, value := range entry.run(c, labeled) {
			if value.Replacement == "" {
				continue
			}
			replacements[value.SpanKey] = value
		}
	}

	out := make([]span.Span, len(spans))
	copy(out, spans)
	for i, s := range out {
		value, ok := replacements[s.Key()]
		if !ok {
			continue
		}
		if s.Label == span.LabelPerson {
			// person replacements are cased after the original mention
			if textutil.IsUpper(s.Text) {
				out[i].Replacement = strings.ToUpper(value.Replacement)
			} else {
				out[i].Replacement = textutil.Title(value.Replacement)
			}
			continue
		}
		out[i].Replacement = value.Replacement
	}
	return out
}

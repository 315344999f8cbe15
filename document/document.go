// Package document runs the full redaction pipeline for one transcript:
// gather, groom, resolve, validate, pseudonymize, mutate. It owns the
// per-document lifecycle; everything stateful (the identity registry) is
// created fresh inside Process so no identity ever leaks between documents.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/transcriptguard/redact/annotate"
	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/mutate"
	"github.com/transcriptguard/redact/pseudonym"
	"github.com/transcriptguard/redact/resolve"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/validity"
)

// ErrNoAnnotations indicates a document produced no spans to redact.
var ErrNoAnnotations = errors.New("no annotations for document")

// Document is one transcript to redact. Spans may be pre-detected; when
// empty, the processor's annotators are consulted.
type Document struct {
	// Name is the source file name, e.g. "hearing_smith_2019.txt".
	Name string

	// Text is the full transcript text.
	Text string

	// Spans are pre-detected raw spans with half-open rune offsets.
	Spans []span.Span
}

// Result is the outcome of redacting one document.
type Result struct {
	// RunID uniquely identifies this processing run.
	RunID string

	// Name is the original document name.
	Name string

	// RedactedName is the pseudonymized artifact name, consistent with the
	// identities inside the document.
	RedactedName string

	// Spans are the canonical spans with replacements filled.
	Spans []span.Span

	// Filtered are the spans dropped by conflict resolution and validity
	// checking, kept for review.
	Filtered []span.Span

	// Redacted is the transcript with every span replaced by its pseudonym.
	Redacted string

	// Markup is the transcript with review markers around every span.
	Markup string
}

// Processor runs the pipeline. Construct with NewProcessor; the zero value is
// not usable.
type Processor struct {
	cfg config

	spansIn  metric.Int64Counter
	kept     metric.Int64Counter
	filtered metric.Int64Counter
}

// NewProcessor builds a processor from the options.
func NewProcessor(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Processor{cfg: cfg}
	var err error
	if p.spansIn, err = cfg.meter.Int64Counter("redact.spans.in",
		metric.WithDescription("raw spans entering conflict resolution")); err != nil {
		return nil, fmt.Errorf("create spans.in counter: %w", err)
	}
	if p.kept, err = cfg.meter.Int64Counter("redact.spans.kept",
		metric.WithDescription("canonical spans surviving the pipeline")); err != nil {
		return nil, fmt.Errorf("create spans.kept counter: %w", err)
	}
	if p.filtered, err = cfg.meter.Int64Counter("redact.spans.filtered",
		metric.WithDescription("spans dropped by resolution and validity checking")); err != nil {
		return nil, fmt.Errorf("create spans.filtered counter: %w", err)
	}
	return p, nil
}

// Process redacts one document. The sequence number feeds the redacted file
// name; single-document callers get 1.
func (p *Processor) Process(ctx context.Context, doc Document) (Result, error) {
	return p.process(ctx, doc, 1)
}

func (p *Processor) process(ctx context.Context, doc Document, seq int) (Result, error) {
	ctx, pipelineSpan := p.cfg.tracer.Start(ctx, "redact.process",
		trace.WithAttributes(attribute.String("document.name", doc.Name)))
	defer pipelineSpan.End()

	raw := doc.Spans
	if len(raw) == 0 && len(p.cfg.annotators) > 0 {
		var err error
		raw, err = annotate.Gather(ctx, doc.Text, p.cfg.annotators...)
		if err != nil {
			return Result{}, err
		}
	}
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoAnnotations, doc.Name)
	}
	p.spansIn.Add(ctx, int64(len(raw)))

	groomed := annotate.Groom(raw)
	resolved := resolve.Resolve(groomed, doc.Text)
	valid, invalid := validity.Filter(p.cfg.checker, resolved.Spans)

	if len(valid) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoAnnotations, doc.Name)
	}

	registry := p.newRegistry(ctx)
	pctx := pseudonym.NewContext(ctx, registry, p.cfg.classifier, p.cfg.logger)
	canonical := pseudonym.Apply(pctx, valid)

	filtered := make([]span.Span, 0, len(resolved.Filtered)+len(invalid))
	filtered = append(filtered, resolved.Filtered...)
	filtered = append(filtered, invalid...)

	p.kept.Add(ctx, int64(len(canonical)))
	p.filtered.Add(ctx, int64(len(filtered)))

	result := Result{
		RunID:        uuid.New().String(),
		Name:         doc.Name,
		RedactedName: redactedName(doc.Name, seq, registry),
		Spans:        canonical,
		Filtered:     filtered,
		Redacted:     mutate.Redact(doc.Text, canonical),
		Markup:       mutate.Markup(doc.Text, canonical),
	}

	p.cfg.logger.Info("document redacted",
		"document", doc.Name,
		"run_id", result.RunID,
		"spans_in", len(raw),
		"kept", len(canonical),
		"filtered", len(filtered))
	return result, nil
}

func (p *Processor) newRegistry(ctx context.Context) *identity.Registry {
	if p.cfg.store != nil {
		return identity.NewShared(ctx, p.cfg.store)
	}
	return identity.NewRegistry()
}

// redactedName derives the output file name from the original, resolving name
// tokens through the same registry the content used.
func redactedName(name string, seq int, registry *identity.Registry) string {
	base := strings.TrimSuffix(name, ".txt")
	return fmt.Sprintf("%s_%d.txt", mutate.FileName(base, registry), seq)
}

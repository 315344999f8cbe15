// Package annotate joins the outputs of the configured annotation sources
// into one raw span list and grooms the spans before conflict resolution.
//
// Annotators are external detectors (statistical NER, pattern recognizers).
// This package does not implement detection; it owns the fan-out, the
// combination of results, and the surface-level fix-ups that detectors
// habitually get wrong on hearing transcripts (leading speaker titles,
// trailing possessives, spelled names glued onto person names).
package annotate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/transcriptguard/redact/span"
)

// Annotator is one span detection source.
type Annotator interface {
	// Name identifies the source in logs and span provenance.
	Name() string

	// Annotate detects spans in the text. Offsets are half-open rune
	// offsets into text.
	Annotate(ctx context.Context, text string) ([]span.Span, error)
}

// Func adapts a named function to the Annotator interface.
type Func struct {
	Source string
	Fn     func(ctx context.Context, text string) ([]span.Span, error)
}

// Name implements Annotator.
func (f Func) Name() string { return f.Source }

// Annotate implements Annotator.
func (f Func) Annotate(ctx context.Context, text string) ([]span.Span, error) {
	return f.Fn(ctx, text)
}

// Gather runs every annotator concurrently and combines their spans, sorted
// by start with empty-text spans dropped. Any annotator error fails the whole
// gather: conflict resolution must never run on partial input, or spans from
// the failed source would silently survive in the output text.
func Gather(ctx context.Context, text string, annotators ...Annotator) ([]span.Span, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([][]span.Span, len(annotators))

	for i, annotator := range annotators {
		i, annotator := i, annotator
		g.Go(func() error {
			spans, err := annotator.Annotate(ctx, text)
			if err != nil {
				return fmt.Errorf("annotator %s: %w", annotator.Name(), err)
			}
			results[i] = spans
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []span.Span
	for _, spans := range results {
		for _, s := range spans {
			if s.Text == "" {
				continue
			}
			combined = append(combined, s)
		}
	}
	span.SortByStart(combined)
	return combined, nil
}

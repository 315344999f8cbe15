package redact

import (
	"context"
	"errors"

	"github.com/transcriptguard/redact/document"
	"github.com/transcriptguard/redact/span"
)

// Process redacts a single document with a default pipeline. It is the
// convenience path for one-off documents; callers that process many documents
// or need classifiers, shared identity stores, or observability should build
// a document.Processor directly.
//
// Input spans are checked against the document bounds before any work starts;
// a malformed span fails the whole call with a KindValidation error rather
// than corrupting offsets downstream.
func Process(ctx context.Context, name, text string, spans []span.Span, opts ...document.Option) (document.Result, error) {
	docLen := len([]rune(text))
	for _, s := range spans {
		if _, err := span.New(s.Start, s.End, s.Label, s.Text, s.Source, docLen); err != nil {
			return document.Result{}, &Error{Op: "Process", Kind: KindValidation, Err: err}
		}
	}

	processor, err := document.NewProcessor(opts...)
	if err != nil {
		return document.Result{}, &Error{Op: "Process", Kind: KindConfiguration, Err: err}
	}

	result, err := processor.Process(ctx, document.Document{Name: name, Text: text, Spans: spans})
	if err != nil {
		if errors.Is(err, ErrNoAnnotations) {
			return document.Result{}, err
		}
		// past configuration, the only other failure mode is an annotator
		return document.Result{}, &Error{Op: "Process", Kind: KindAnnotation, Err: err}
	}
	return result, nil
}

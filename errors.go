package redact

import (
	"errors"
	"fmt"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/document"
	"github.com/transcriptguard/redact/span"
)

// Sentinel errors for common conditions, re-exported from the packages that
// produce them so callers can depend on the root package alone.
var (
	// ErrInvalidSpan indicates span offsets that do not describe a valid
	// half-open range within the document.
	ErrInvalidSpan = span.ErrInvalidSpan

	// ErrNoAnnotations indicates a document produced no spans to redact.
	ErrNoAnnotations = document.ErrNoAnnotations

	// ErrNoResult indicates the classifier produced no label for a text.
	ErrNoResult = classify.ErrNoResult
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindAnnotation represents errors from annotation sources.
	KindAnnotation = "annotation"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindStorage represents errors from the shared identity store.
	KindStorage = "storage"
)

// Error is a structured error wrapping an underlying error with the failing
// operation and a category. It supports errors.Is and errors.As through
// Unwrap.
type Error struct {
	// Op is the operation that failed (e.g. "Processor.Process").
	Op string

	// Kind categorizes the error (e.g. KindValidation).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("redact: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("redact: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind (and Op when set in the target) or delegates to the
// underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			return t.Op == "" || e.Op == t.Op
		}
	}
	return errors.Is(e.Err, target)
}

// Package classify defines the zero-shot classification contract consumed by
// the organization, location, and NRP pseudonymization strategies.
//
// The real classifier is an external model collaborator and out of scope
// here; the contract is the Classify signature. A classifier returning
// ErrNoResult (or any error) degrades the caller to a generic counter-based
// pseudonym; classification failure is a normal, recoverable path, never a
// fault.
package classify

import (
	"context"
	"errors"
	"strings"
)

// ErrNoResult indicates the classifier produced no label for the text.
var ErrNoResult = errors.New("no classification result")

// Classifier picks the best-fitting label for a text from the candidate
// labels.
type Classifier interface {
	Classify(ctx context.Context, text string, candidates []string) (string, error)
}

// Func adapts a function to the Classifier interface.
type Func func(ctx context.Context, text string, candidates []string) (string, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, text string, candidates []string) (string, error) {
	return f(ctx, text, candidates)
}

// None is a classifier that never produces a result, degrading every
// sub-typed strategy to its generic counter. Useful when no model backend is
// deployed.
var None Classifier = Func(func(context.Context, string, []string) (string, error) {
	return "", ErrNoResult
})

// KeywordClassifier is a deterministic fallback classifier: a candidate label
// wins when the text contains it (or one of its configured synonyms) as a
// case-insensitive substring.
type KeywordClassifier struct {
	// Synonyms maps a candidate label to additional trigger words beyond
	// the label itself.
	Synonyms map[string][]string
}

// Classify implements Classifier.
func (k *KeywordClassifier) Classify(_ context.Context, text string, candidates []string) (string, error) {
	lower := strings.ToLower(text)
	for _, candidate := range candidates {
		if strings.Contains(lower, strings.ToLower(candidate)) {
			return candidate, nil
		}
		for _, synonym := range k.Synonyms[candidate] {
			if strings.Contains(lower, strings.ToLower(synonym)) {
				return candidate, nil
			}
		}
	}
	return "", ErrNoResult
}

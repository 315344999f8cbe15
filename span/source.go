package span

import "fmt"

// Source identifies the annotator that produced a span.
type Source string

const (
	// SourceHybrid is the rule/ML hybrid entity recognizer.
	SourceHybrid Source = "hybrid"

	// SourceTransformer is the transformer-based NER pipeline.
	SourceTransformer Source = "transformer"

	// SourceTagger is the statistical sequence tagger.
	SourceTagger Source = "tagger"
)

// IsValid returns true if the source is a known annotator tag.
func (s Source) IsValid() bool {
	switch s {
	case SourceHybrid, SourceTransformer, SourceTagger:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// ParseSource parses a string into a Source value.
// Returns an error if the string is not a known annotator tag.
func ParseSource(s string) (Source, error) {
	source := Source(s)
	if !source.IsValid() {
		return "", fmt.Errorf("invalid source: %s", s)
	}
	return source, nil
}

// AllSources returns all known annotator tags.
func AllSources() []Source {
	return []Source{SourceHybrid, SourceTransformer, SourceTagger}
}

package artifact

import (
	"fmt"
	"io"

	"github.com/transcriptguard/redact/span"
)

// Stats counts kept and filtered spans per label across a document set.
type Stats struct {
	Kept     map[span.Label]int
	Filtered map[span.Label]int
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		Kept:     make(map[span.Label]int),
		Filtered: make(map[span.Label]int),
	}
}

// Add accumulates one document's kept and filtered spans.
func (s *Stats) Add(kept, filtered []span.Span) {
	for _, sp := range kept {
		s.Kept[sp.Label]++
	}
	for _, sp := range filtered {
		s.Filtered[sp.Label]++
	}
}

// TotalKept returns the number of kept spans across all labels.
func (s *Stats) TotalKept() int {
	total := 0
	for _, n := range s.Kept {
		total += n
	}
	return total
}

// TotalFiltered returns the number of filtered spans across all labels.
func (s *Stats) TotalFiltered() int {
	total := 0
	for _, n := range s.Filtered {
		total += n
	}
	return total
}

// Write renders the per-label counts in a fixed label order.
func (s *Stats) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "total kept annotations: %d\n\n", s.TotalKept()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	for _, label := range span.AllLabels() {
		if _, err := fmt.Fprintf(w, "total %s kept annotations: %d\n", label, s.Kept[label]); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\ntotal filtered annotations: %d\n\n", s.TotalFiltered()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	for _, label := range span.AllLabels() {
		if _, err := fmt.Fprintf(w, "total %s filtered annotations: %d\n", label, s.Filtered[label]); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	return nil
}

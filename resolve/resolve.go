// Package resolve implements the span conflict-resolution engine.
//
// Input is the unordered union of spans from all annotators for one document;
// output is a sorted, non-overlapping, deduplicated span sequence plus the
// spans that were filtered out along the way, for auditing. Resolution is a
// pipeline of pure passes, each producing a new span list:
//
//  1. merge adjacent same-label spans
//  2. deduplicate and relabel same-range spans
//  3. keep the longest span per shared start offset
//  4. keep the longest span per shared end offset
//  5. break remaining overlaps left to right
//  6. drop empty and zero-width leftovers
//
// The engine is pure span algebra: it never consults an annotator or model
// and is fully deterministic given its input.
package resolve

import (
	"strings"

	"github.com/transcriptguard/redact/span"
)

// Result is the outcome of conflict resolution for one document.
type Result struct {
	// Spans is the canonical sequence: sorted by start, non-overlapping,
	// deduplicated.
	Spans []span.Span

	// Filtered holds every input span that did not survive, for auditing.
	Filtered []span.Span
}

// separators break an adjacency merge: two same-label spans with a gap of one
// or two characters stay separate entities when the gap region contains one
// of these.
var separators = []string{"\n", ":", " ,", ", ", ". ", " - "}

// Resolve runs the full conflict-resolution pipeline over the raw spans.
func Resolve(spans []span.Span, text string) Result {
	runes := []rune(text)
	var filtered []span.Span

	work := make([]span.Span, len(spans))
	copy(work, spans)
	span.SortByStart(work)

	work, dropped := mergeAdjacent(work, runes)
	filtered = append(filtered, dropped...)

	work, dropped = dedupSameRange(work)
	filtered = append(filtered, dropped...)

	work, dropped = keepLongestPerStart(work)
	filtered = append(filtered, dropped...)

	work, dropped = keepLongestPerEnd(work)
	filtered = append(filtered, dropped...)

	span.SortByStart(work)
	work, dropped = breakOverlaps(work)
	filtered = append(filtered, dropped...)

	work, dropped = dropEmpty(work)
	filtered = append(filtered, dropped...)

	return Result{Spans: work, Filtered: filtered}
}

// mergeAdjacent joins consecutive same-label spans that are contiguous, or
// separated by a one or two character gap that holds no separating symbol.
// A name broken across a line wrap or light punctuation stays one entity.
func mergeAdjacent(spans []span.Span, text []rune) (kept, dropped []span.Span) {
	if len(spans) == 0 {
		return nil, nil
	}

	current := spans[0]
	for _, next := range spans[1:] {
		switch {
		case next.Label == current.Label && next.Start == current.End:
			current.Text += next.Text
			current.End = next.End
		case next.Label == current.Label &&
			(next.Start == current.End+1 || next.Start == current.End+2) &&
			!gapHasSeparator(text, current.End, next.End):
			current.Text += " " + next.Text
			current.End = next.End
		default:
			kept = append(kept, current)
			current = next
		}
	}
	kept = append(kept, current)

	// stray curly apostrophes survive some annotators as one-rune spans
	n := 0
	for _, s := range kept {
		if s.Text == "’" {
			dropped = append(dropped, s)
			continue
		}
		kept[n] = s
		n++
	}
	return kept[:n], dropped
}

func gapHasSeparator(text []rune, from, to int) bool {
	if from < 0 || to > len(text) || from > to {
		return false
	}
	region := string(text[from:to])
	for _, sep := range separators {
		if strings.Contains(region, sep) {
			return true
		}
	}
	return false
}

// dedupSameRange groups spans by exact (start, end). Identical label+text
// duplicates collapse to one; across differing labels the precedence table
// decides, and the longer-text representative wins where no rule applies.
func dedupSameRange(spans []span.Span) (kept, dropped []span.Span) {
	type group struct {
		key   string
		items []span.Span
	}
	var order []string
	groups := make(map[string]*group)
	for _, s := range spans {
		key := s.Key()
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.items = append(g.items, s)
	}

	for _, key := range order {
		g := groups[key]

		unique := g.items[:0:0]
		for _, item := range g.items {
			dup := false
			for _, seen := range unique {
				if seen.Label == item.Label && seen.Text == item.Text {
					dup = true
					break
				}
			}
			if dup {
				dropped = append(dropped, item)
				continue
			}
			unique = append(unique, item)
		}

		winner := unique[0]
		for _, cand := range unique[1:] {
			if cand.Label != winner.Label {
				winner.Label = resolveLabelPair(winner.Label, cand.Label, cand.Text)
			}
			if len(cand.Text) > len(winner.Text) {
				label := winner.Label
				dropped = append(dropped, winner)
				winner = cand
				winner.Label = label
			} else {
				dropped = append(dropped, cand)
			}
		}
		kept = append(kept, winner)
	}
	return kept, dropped
}

// keepLongestPerStart resolves spans sharing a start offset by keeping only
// the longest one; an annotator that under-extended the boundary loses.
func keepLongestPerStart(spans []span.Span) (kept, dropped []span.Span) {
	return keepLongest(spans, func(s span.Span) int { return s.Start })
}

// keepLongestPerEnd is the symmetric rule for spans sharing an end offset.
func keepLongestPerEnd(spans []span.Span) (kept, dropped []span.Span) {
	return keepLongest(spans, func(s span.Span) int { return s.End })
}

func keepLongest(spans []span.Span, keyOf func(span.Span) int) (kept, dropped []span.Span) {
	var order []int
	groups := make(map[int][]span.Span)
	for _, s := range spans {
		key := keyOf(s)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	for _, key := range order {
		group := groups[key]
		best := 0
		for i, s := range group {
			if s.Len() > group[best].Len() {
				best = i
			}
		}
		for i, s := range group {
			if i == best {
				kept = append(kept, s)
			} else {
				dropped = append(dropped, s)
			}
		}
	}
	return kept, dropped
}

// breakOverlaps walks the start-sorted spans left to right. A span overlapping
// the last accepted one is dropped when it re-detects the same label, or when
// the last accepted span is a hybrid-annotator organization (a corpus-specific
// priority exception, preserved as-is rather than generalized); otherwise the
// accepted span is truncated to end just before the new one starts.
func breakOverlaps(spans []span.Span) (kept, dropped []span.Span) {
	if len(spans) == 0 {
		return nil, nil
	}
	kept = append(kept, spans[0])

	for _, current := range spans[1:] {
		last := &kept[len(kept)-1]
		if current.Start <= last.End {
			if last.Source == span.SourceHybrid && last.Label == span.LabelOrganization {
				dropped = append(dropped, current)
				continue
			}
			if last.Label == current.Label {
				dropped = append(dropped, current)
				continue
			}
			last.End = current.Start - 1
			if n := last.End - last.Start; n >= 0 {
				if runes := []rune(last.Text); n < len(runes) {
					last.Text = string(runes[:n])
				}
			}
		}
		kept = append(kept, current)
	}
	return kept, dropped
}

// dropEmpty removes spans whose text was trimmed away or whose range
// collapsed to zero width.
func dropEmpty(spans []span.Span) (kept, dropped []span.Span) {
	for _, s := range spans {
		if strings.TrimSpace(s.Text) == "" || s.Start == s.End {
			dropped = append(dropped, s)
			continue
		}
		kept = append(kept, s)
	}
	return kept, dropped
}

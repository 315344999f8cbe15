// Package validity implements the post-resolution span filter.
//
// The core calls IsInvalid once per surviving span before pseudonymization.
// The default RuleChecker ports the per-label heuristic rule sets tuned on
// hearing transcripts (keyword blocklists, shape checks, case checks); it can
// be replaced or extended with operator-defined CEL expressions via
// CELChecker. Checkers are pure: they never mutate the span and have no side
// effects.
package validity

import (
	"strings"

	"github.com/transcriptguard/redact/span"
)

// Checker decides whether a span's text is an invalid detection for its
// label. Implementations must be pure.
type Checker interface {
	IsInvalid(label span.Label, text string) bool
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(label span.Label, text string) bool

// IsInvalid calls f.
func (f CheckerFunc) IsInvalid(label span.Label, text string) bool {
	return f(label, text)
}

// RuleChecker is the default heuristic checker. The zero value is not usable;
// call NewRuleChecker.
type RuleChecker struct {
	rules map[span.Label]func(text string) bool
}

// NewRuleChecker builds the default checker with the built-in per-label rule
// sets. Labels without a rule set (ID, AGE, HEIGHT, EMAIL_ADDRESS,
// PHONE_NUMBER, SPELLED_OUT_ITEM) are never invalid.
func NewRuleChecker() *RuleChecker {
	return &RuleChecker{
		rules: map[span.Label]func(string) bool{
			span.LabelPerson:       invalidPerson,
			span.LabelLocation:     invalidLocation,
			span.LabelOrganization: invalidOrganization,
			span.LabelNRP:          invalidNRP,
			span.LabelURL:          invalidURL,
			span.LabelSpelledName:  invalidSpelledName,
			span.LabelDate:         invalidDate,
			span.LabelTime:         invalidTime,
		},
	}
}

// IsInvalid applies the rule set for the span's label.
func (c *RuleChecker) IsInvalid(label span.Label, text string) bool {
	rule, ok := c.rules[label]
	if !ok {
		return false
	}
	return rule(text)
}

// BlocklistChecker marks spans invalid when their text matches a configured
// surface form, case-insensitively. It extends the built-in rule sets per
// deployment; chain it after a RuleChecker.
type BlocklistChecker struct {
	entries map[span.Label]map[string]struct{}
}

// NewBlocklistChecker builds a checker from per-label blocked surface forms.
func NewBlocklistChecker(blocklist map[span.Label][]string) *BlocklistChecker {
	entries := make(map[span.Label]map[string]struct{}, len(blocklist))
	for label, words := range blocklist {
		set := make(map[string]struct{}, len(words))
		for _, word := range words {
			set[strings.ToLower(word)] = struct{}{}
		}
		entries[label] = set
	}
	return &BlocklistChecker{entries: entries}
}

// IsInvalid reports whether the text is blocked for the label.
func (c *BlocklistChecker) IsInvalid(label span.Label, text string) bool {
	set, ok := c.entries[label]
	if !ok {
		return false
	}
	_, blocked := set[strings.ToLower(strings.TrimSpace(text))]
	return blocked
}

// Chain combines checkers; a span is invalid if any checker says so.
func Chain(checkers ...Checker) Checker {
	return CheckerFunc(func(label span.Label, text string) bool {
		for _, c := range checkers {
			if c.IsInvalid(label, text) {
				return true
			}
		}
		return false
	})
}

// Filter partitions spans into valid and invalid according to the checker.
func Filter(checker Checker, spans []span.Span) (valid, invalid []span.Span) {
	for _, s := range spans {
		if checker.IsInvalid(s.Label, s.Text) {
			invalid = append(invalid, s)
			continue
		}
		valid = append(valid, s)
	}
	return valid, invalid
}

// Package identity maintains the per-document pseudonym registries.
//
// A Registry maps normalized surface forms to generated pseudonyms, one map
// per category, with monotonically increasing counters starting at 1. Within
// one document the same normalized key always yields the same pseudonym and
// no counter value is ever reused. Registries are owned by a single
// document's pseudonymization pass: they are created fresh per document and
// are never written concurrently, so they carry no locks.
//
// Cross-document identity reuse is an explicit, opt-in extension: wrap a
// Store (see RedisStore) with NewShared. The default Registry never leaks
// identities across documents.
package identity

import "context"

// Registry is the in-memory per-document identity registry.
type Registry struct {
	categories map[string]*category
	counters   map[string]int

	// shared, when non-nil, is consulted after a local miss and mirrors
	// every write. Only set via NewShared.
	shared Store
	ctx    context.Context
}

type category struct {
	values map[string]string
	order  []string
}

// NewRegistry returns an empty registry with all counters at 1.
func NewRegistry() *Registry {
	return &Registry{
		categories: make(map[string]*category),
		counters:   make(map[string]int),
	}
}

// NewShared returns a registry that additionally consults and mirrors the
// given store, so identical surface forms in different documents share
// pseudonyms. This is the explicit cross-document mode; counters are
// allocated through the store to stay unique across documents.
func NewShared(ctx context.Context, store Store) *Registry {
	r := NewRegistry()
	r.shared = store
	r.ctx = ctx
	return r
}

// Lookup returns the pseudonym stored under the normalized key.
func (r *Registry) Lookup(cat, key string) (string, bool) {
	if c, ok := r.categories[cat]; ok {
		if v, ok := c.values[key]; ok {
			return v, true
		}
	}
	if r.shared != nil {
		if v, err := r.shared.Lookup(r.ctx, cat, key); err == nil && v != "" {
			r.put(cat, key, v)
			return v, true
		}
	}
	return "", false
}

// Store records the pseudonym under the normalized key. Re-storing an
// existing key overwrites it; callers are expected to Lookup first.
func (r *Registry) Store(cat, key, pseudonym string) {
	r.put(cat, key, pseudonym)
	if r.shared != nil {
		// best effort: a failed mirror write costs cross-document reuse,
		// not correctness of this document
		_ = r.shared.Store(r.ctx, cat, key, pseudonym)
	}
}

func (r *Registry) put(cat, key, pseudonym string) {
	c, ok := r.categories[cat]
	if !ok {
		c = &category{values: make(map[string]string)}
		r.categories[cat] = c
	}
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = pseudonym
}

// Keys returns the category's normalized keys in insertion order. The
// cut-off-name search depends on this ordering being deterministic.
func (r *Registry) Keys(cat string) []string {
	c, ok := r.categories[cat]
	if !ok {
		return nil
	}
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Next returns the next value of the named counter, starting at 1.
func (r *Registry) Next(counter string) int {
	if r.shared != nil {
		if n, err := r.shared.Next(r.ctx, counter); err == nil {
			return n
		}
	}
	r.counters[counter]++
	return r.counters[counter]
}

// Len returns the number of entries in a category, for tests and stats.
func (r *Registry) Len(cat string) int {
	c, ok := r.categories[cat]
	if !ok {
		return 0
	}
	return len(c.values)
}

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookupAndStore(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("person", "John")
	assert.False(t, ok)

	r.Store("person", "John", "[PERSON_1]")
	got, ok := r.Lookup("person", "John")
	require.True(t, ok)
	assert.Equal(t, "[PERSON_1]", got)

	// categories are independent namespaces
	_, ok = r.Lookup("location", "John")
	assert.False(t, ok)
}

func TestRegistryNextStartsAtOne(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 1, r.Next("person"))
	assert.Equal(t, 2, r.Next("person"))
	assert.Equal(t, 1, r.Next("location"))
}

func TestRegistryKeysInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Store("person", "Smith", "[PERSON_1]")
	r.Store("person", "Jones", "[PERSON_2]")
	r.Store("person", "Smith", "[PERSON_1]")

	assert.Equal(t, []string{"Smith", "Jones"}, r.Keys("person"))
	assert.Equal(t, 2, r.Len("person"))
	assert.Nil(t, r.Keys("location"))
}

type fakeStore struct {
	values   map[string]string
	counters map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}, counters: map[string]int{}}
}

func (s *fakeStore) Lookup(_ context.Context, category, key string) (string, error) {
	return s.values[category+"/"+key], nil
}

func (s *fakeStore) Store(_ context.Context, category, key, pseudonym string) error {
	s.values[category+"/"+key] = pseudonym
	return nil
}

func (s *fakeStore) Next(_ context.Context, counter string) (int, error) {
	s.counters[counter]++
	return s.counters[counter], nil
}

func (s *fakeStore) Close() error { return nil }

func TestSharedRegistryConsultsStore(t *testing.T) {
	store := newFakeStore()
	store.values["person/John"] = "[PERSON_7]"

	r := NewShared(context.Background(), store)

	got, ok := r.Lookup("person", "John")
	require.True(t, ok)
	assert.Equal(t, "[PERSON_7]", got)

	r.Store("person", "Jane", "[PERSON_8]")
	assert.Equal(t, "[PERSON_8]", store.values["person/Jane"])
}

func TestSharedRegistryCountersGoThroughStore(t *testing.T) {
	store := newFakeStore()
	store.counters["person"] = 4

	r := NewShared(context.Background(), store)
	assert.Equal(t, 5, r.Next("person"))
	assert.Equal(t, 6, r.Next("person"))
}

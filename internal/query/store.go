package query

import (
	"errors"
	"fmt"
	"slices"
)

// Store is the canonical collection of one entity kind. Ids are unique at all
// times. Order is insertion order and carries no meaning for consumers.
type Store[E any] struct {
	id    func(E) string
	items []E
	index map[string]int
}

// NewStore builds a Store seeded with items. It fails when two items share an id.
func NewStore[E any](id func(E) string, seed []E) (*Store[E], error) {
	s := &Store[E]{
		id:    id,
		items: make([]E, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, e := range seed {
		if err := s.Insert(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of stored entities.
func (s *Store[E]) Len() int { return len(s.items) }

// All returns a copy of the stored entities.
func (s *Store[E]) All() []E { return slices.Clone(s.items) }

// Get returns the entity with the given id.
func (s *Store[E]) Get(id string) (E, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero E
		return zero, false
	}
	return s.items[i], true
}

// Has reports whether an entity with the given id exists.
func (s *Store[E]) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Insert appends a new entity.
func (s *Store[E]) Insert(e E) error {
	id := s.id(e)
	if id == "" {
		return errors.New("empty id")
	}
	if _, exists := s.index[id]; exists {
		return fmt.Errorf("duplicate id %q", id)
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, e)
	return nil
}

// Replace swaps in e for the stored entity with the same id. It reports false
// when no such entity exists.
func (s *Store[E]) Replace(e E) bool {
	i, ok := s.index[s.id(e)]
	if !ok {
		return false
	}
	s.items[i] = e
	return true
}

// Remove deletes the entity with the given id. It reports whether anything was removed.
func (s *Store[E]) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.id(s.items[j])] = j
	}
	return true
}

// Find returns the first entity matching pred.
func (s *Store[E]) Find(pred func(E) bool) (E, bool) {
	for _, e := range s.items {
		if pred(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

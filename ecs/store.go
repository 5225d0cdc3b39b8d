package ecs

import "github.com/kamstrup/intmap"

// erasedStore is the type-independent view the World keeps of each component store.
type erasedStore interface {
	remove(id entityID) bool
	len() int
}

// store is a sparse set of *T keyed by entity slot. Values are kept densely so
// iteration touches only entities that carry the component.
type store[T any] struct {
	index    *intmap.Map[entityID, int]
	entities []Entity
	values   []*T
}

func newStore[T any]() *store[T] {
	return &store[T]{index: intmap.New[entityID, int](64)}
}

func (s *store[T]) set(e Entity, v *T) {
	if i, ok := s.index.Get(e.id()); ok {
		s.entities[i] = e
		s.values[i] = v
		return
	}
	s.index.Put(e.id(), len(s.entities))
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

func (s *store[T]) get(e Entity) (*T, bool) {
	i, ok := s.index.Get(e.id())
	if !ok || s.entities[i] != e {
		return nil, false
	}
	return s.values[i], true
}

func (s *store[T]) remove(id entityID) bool {
	i, ok := s.index.Get(id)
	if !ok {
		return false
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.values[i] = s.values[last]
		s.index.Put(moved.id(), i)
	}
	s.entities[last] = 0
	s.values[last] = nil
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.index.Del(id)
	return true
}

func (s *store[T]) len() int {
	return len(s.entities)
}

// snapshot copies the dense entity list so callers may mutate the world while
// iterating.
func (s *store[T]) snapshot() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

package ecs

import "github.com/milk9111/flappy/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]erasedStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]erasedStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Count returns the number of entities carrying the given component.
func Count(w *World, kind component.Kind) int {
	if w == nil {
		return 0
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0
	}
	return s.len()
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *store[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*store[T])
		return typed
	}
	if !create {
		return nil
	}
	s := newStore[T]()
	w.stores[kind.ID()] = s
	return s
}

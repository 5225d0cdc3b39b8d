package ecs

import (
	"fmt"

	"github.com/milk9111/flappy/ecs/component"
)

// AddChild parents child under parent. The child's Transform becomes relative
// to the parent's global transform.
func AddChild(w *World, parent, child Entity) error {
	if !IsAlive(w, parent) || !IsAlive(w, child) {
		return component.ErrEntityNotAlive
	}
	if parent == child {
		return fmt.Errorf("ecs: entity %s cannot parent itself", parent)
	}
	if old, ok := Get(w, child, component.ParentComponent.Kind()); ok && old.Entity != uint64(parent) {
		detach(w, Entity(old.Entity), child)
	}
	if err := Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}); err != nil {
		return err
	}
	children, ok := Get(w, parent, component.ChildrenComponent.Kind())
	if !ok {
		children = &component.Children{}
	}
	for _, c := range children.Entities {
		if c == uint64(child) {
			return nil
		}
	}
	children.Entities = append(children.Entities, uint64(child))
	return Add(w, parent, component.ChildrenComponent.Kind(), children)
}

// ChildrenOf returns the live children of e.
func ChildrenOf(w *World, e Entity) []Entity {
	children, ok := Get(w, e, component.ChildrenComponent.Kind())
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(children.Entities))
	for _, c := range children.Entities {
		if IsAlive(w, Entity(c)) {
			out = append(out, Entity(c))
		}
	}
	return out
}

// DestroyRecursive destroys e and all of its descendants and returns how many
// entities were destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !IsAlive(w, e) {
		return 0
	}
	n := 0
	for _, c := range ChildrenOf(w, e) {
		n += DestroyRecursive(w, c)
	}
	if p, ok := Get(w, e, component.ParentComponent.Kind()); ok {
		detach(w, Entity(p.Entity), e)
	}
	if DestroyEntity(w, e) {
		n++
	}
	return n
}

func detach(w *World, parent, child Entity) {
	children, ok := Get(w, parent, component.ChildrenComponent.Kind())
	if !ok {
		return
	}
	kept := children.Entities[:0]
	for _, c := range children.Entities {
		if c != uint64(child) {
			kept = append(kept, c)
		}
	}
	children.Entities = kept
}

package ecs

import "github.com/milk9111/flappy/ecs/component"

// ForEach calls fn for every live entity carrying kind. Entities added during
// iteration are not visited; entities destroyed during iteration are skipped.
func ForEach[A any](w *World, kind component.ComponentKind[A], fn func(Entity, *A)) {
	s := storeFor(w, kind, false)
	if s == nil {
		return
	}
	for _, e := range s.snapshot() {
		a, ok := s.get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		fn(e, a)
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := storeFor(w, kb, false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := sb.get(e); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, kc, false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e); ok {
			fn(e, a, b, c)
		}
	})
}

// ForEach4 visits entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, kd, false)
	if sd == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := sd.get(e); ok {
			fn(e, a, b, c, d)
		}
	})
}

// First returns any live entity carrying kind.
func First[A any](w *World, kind component.ComponentKind[A]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0, false
	}
	for _, e := range s.entities {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

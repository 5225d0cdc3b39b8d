package system

import (
	"math"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// maxHierarchyDepth bounds parent walks so a corrupted Parent cycle cannot hang a frame.
const maxHierarchyDepth = 32

// TransformPropagateSystem writes GlobalTransform for every entity with a
// Transform by composing it with its ancestors.
type TransformPropagateSystem struct{}

func NewTransformPropagateSystem() *TransformPropagateSystem {
	return &TransformPropagateSystem{}
}

func (s *TransformPropagateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	resolved := make(map[ecs.Entity]component.GlobalTransform)
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Transform) {
		g := resolveGlobal(w, e, resolved, 0)
		if existing, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
			*existing = g
			return
		}
		if err := ecs.Add(w, e, component.GlobalTransformComponent.Kind(), &g); err != nil {
			panic("transform propagate system: add global transform: " + err.Error())
		}
	})
}

func resolveGlobal(w *ecs.World, e ecs.Entity, resolved map[ecs.Entity]component.GlobalTransform, depth int) component.GlobalTransform {
	if g, ok := resolved[e]; ok {
		return g
	}

	local := component.Transform{ScaleX: 1, ScaleY: 1}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		local = *t
	}
	g := component.GlobalTransform{X: local.X, Y: local.Y, ScaleX: scaleOr1(local.ScaleX), ScaleY: scaleOr1(local.ScaleY), Rotation: local.Rotation}

	if p, ok := ecs.Get(w, e, component.ParentComponent.Kind()); ok && depth < maxHierarchyDepth {
		parent := ecs.Entity(p.Entity)
		if ecs.IsAlive(w, parent) {
			pg := resolveGlobal(w, parent, resolved, depth+1)
			g = compose(pg, local)
		}
	}

	resolved[e] = g
	return g
}

func compose(parent component.GlobalTransform, local component.Transform) component.GlobalTransform {
	lx := local.X * parent.ScaleX
	ly := local.Y * parent.ScaleY
	sin, cos := math.Sincos(parent.Rotation)
	return component.GlobalTransform{
		X:        parent.X + lx*cos - ly*sin,
		Y:        parent.Y + lx*sin + ly*cos,
		ScaleX:   parent.ScaleX * scaleOr1(local.ScaleX),
		ScaleY:   parent.ScaleY * scaleOr1(local.ScaleY),
		Rotation: parent.Rotation + local.Rotation,
	}
}

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

// worldPosition prefers the propagated GlobalTransform and falls back to the
// local Transform for entities the propagation system has not seen yet.
func worldPosition(w *ecs.World, e ecs.Entity) (x, y, rotation float64, ok bool) {
	if g, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
		return g.X, g.Y, g.Rotation, true
	}
	if _, hasParent := ecs.Get(w, e, component.ParentComponent.Kind()); hasParent {
		g := resolveGlobal(w, e, map[ecs.Entity]component.GlobalTransform{}, 0)
		return g.X, g.Y, g.Rotation, true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.X, t.Y, t.Rotation, true
	}
	return 0, 0, 0, false
}

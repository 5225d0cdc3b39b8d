package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// PipeDespawnSystem destroys pipe anchors, bars included, once they have
// scrolled past despawnX.
type PipeDespawnSystem struct {
	despawnX  float64
	despawned int
}

func NewPipeDespawnSystem(despawnX float64) *PipeDespawnSystem {
	return &PipeDespawnSystem{despawnX: despawnX}
}

func (s *PipeDespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.PipeSpawnerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PipeSpawner, t *component.Transform) {
			if t.X >= s.despawnX {
				return
			}
			ecs.DestroyRecursive(w, e)
			s.despawned++
		})
}

// Despawned is the number of pipe pairs removed so far.
func (s *PipeDespawnSystem) Despawned() int {
	return s.despawned
}

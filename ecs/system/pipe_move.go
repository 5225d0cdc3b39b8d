package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/timing"
)

// PipeMoveSystem scrolls pipe anchors left at a constant speed in units per
// second. Bars follow through their Parent.
type PipeMoveSystem struct {
	clock *timing.Clock
	speed float64
}

func NewPipeMoveSystem(clock *timing.Clock, speed float64) *PipeMoveSystem {
	return &PipeMoveSystem{clock: clock, speed: speed}
}

func (s *PipeMoveSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.clock == nil {
		return
	}

	dx := s.clock.Scale(s.speed)
	if dx == 0 {
		return
	}
	ecs.ForEach2(w, component.PipeSpawnerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PipeSpawner, t *component.Transform) {
			t.X -= dx
		})
}

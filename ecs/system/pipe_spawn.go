package system

import (
	"log"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
)

// PipeSpawnSystem spawns one pipe pair each time the spawn timer completes.
type PipeSpawnSystem struct {
	clock *timing.Clock
	timer *timing.Timer
	rng   *rng.Source
	spec  *prefabs.PipeSpawnerSpec

	Verbose bool
	spawned int
}

func NewPipeSpawnSystem(clock *timing.Clock, timer *timing.Timer, src *rng.Source, spec *prefabs.PipeSpawnerSpec) *PipeSpawnSystem {
	return &PipeSpawnSystem{clock: clock, timer: timer, rng: src, spec: spec}
}

func (s *PipeSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.timer == nil || s.clock == nil {
		return
	}

	s.timer.Tick(s.clock.Delta())
	for i := 0; i < s.timer.TimesFinishedThisTick(); i++ {
		pair, err := entity.SpawnPipePair(w, s.rng, s.spec)
		if err != nil {
			// prefabs can be edited on disk while running; skip the spawn
			log.Printf("pipe spawn system: %v", err)
			continue
		}
		s.spawned++
		if s.Verbose {
			log.Printf("pipe spawn system: spawned pair %d anchor=%s y=%d", s.spawned, pair.Anchor, pair.Y)
		}
	}
}

// Spawned is the number of pairs spawned since the system was created.
func (s *PipeSpawnSystem) Spawned() int {
	return s.spawned
}

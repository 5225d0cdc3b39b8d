package system

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
)

// Services are the shared handles systems read instead of globals.
type Services struct {
	Clock      *timing.Clock
	RNG        *rng.Source
	SpawnTimer *timing.Timer
	Pipes      *prefabs.PipeSpawnerSpec
	// Input defaults to PollDevices when nil.
	Input   InputPoller
	Verbose bool
}

// Gameplay is the per-frame schedule plus the systems callers inspect.
type Gameplay struct {
	Scheduler *ecs.Scheduler
	Physics   *PhysicsSystem
	Spawner   *PipeSpawnSystem
	Despawner *PipeDespawnSystem
}

// NewGameplay wires the frame in its fixed order: input, player, spawn,
// move, despawn, transform propagation, physics.
func NewGameplay(s Services) (*Gameplay, error) {
	if s.Clock == nil {
		return nil, fmt.Errorf("gameplay: clock is nil")
	}
	if s.RNG == nil {
		return nil, fmt.Errorf("gameplay: rng is nil")
	}
	if s.SpawnTimer == nil {
		return nil, fmt.Errorf("gameplay: spawn timer is nil")
	}
	if s.Pipes == nil {
		return nil, fmt.Errorf("gameplay: pipe spawner spec is nil")
	}

	g := &Gameplay{
		Physics:   NewPhysicsSystem(s.Clock),
		Spawner:   NewPipeSpawnSystem(s.Clock, s.SpawnTimer, s.RNG, s.Pipes),
		Despawner: NewPipeDespawnSystem(s.Pipes.DespawnX),
	}
	g.Spawner.Verbose = s.Verbose

	g.Scheduler = ecs.NewScheduler(
		NewInputSystem(s.Input),
		NewPlayerControllerSystem(),
		g.Spawner,
		NewPipeMoveSystem(s.Clock, s.Pipes.Speed),
		g.Despawner,
		NewTransformPropagateSystem(),
		g.Physics,
	)
	return g, nil
}

func (g *Gameplay) Update(w *ecs.World) {
	if g == nil || g.Scheduler == nil {
		return
	}
	g.Scheduler.Update(w)
}

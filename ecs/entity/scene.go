package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/timing"
)

// Scene holds what AddEntities created at startup.
type Scene struct {
	Camera     ecs.Entity
	Player     ecs.Entity
	SpawnTimer *timing.Timer
}

// AddEntities builds the camera and the player and creates the repeating
// timer that gates pipe spawning.
func AddEntities(w *ecs.World, pipes *prefabs.PipeSpawnerSpec) (Scene, error) {
	if pipes == nil {
		return Scene{}, fmt.Errorf("add entities: pipe spawner spec is nil")
	}

	interval := time.Duration(pipes.IntervalSeconds * float64(time.Second))
	scene := Scene{SpawnTimer: timing.NewTimer(interval, timing.Repeating)}

	camera, err := NewCamera(w)
	if err != nil {
		return Scene{}, fmt.Errorf("add entities: camera: %w", err)
	}
	scene.Camera = camera

	player, err := NewPlayer(w)
	if err != nil {
		return Scene{}, fmt.Errorf("add entities: player: %w", err)
	}
	scene.Player = player

	return scene, nil
}

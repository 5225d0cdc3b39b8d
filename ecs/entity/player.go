package entity

import "github.com/milk9111/flappy/ecs"

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

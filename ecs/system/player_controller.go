package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// DefaultJumpImpulse is used when the player prefab leaves jump_impulse unset.
const DefaultJumpImpulse = 800.0

// PlayerControllerSystem flaps the player when the jump input is released.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.ExternalImpulseComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, impulse *component.ExternalImpulse) {
			if !input.JumpReleased {
				return
			}
			strength := player.JumpImpulse
			if strength == 0 {
				strength = DefaultJumpImpulse
			}
			// overwrite: a flap replaces whatever impulse is pending
			*impulse = component.ExternalImpulse{X: 0, Y: strength, Torque: 0}
		})
}

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// InputPoller samples the devices once per frame.
type InputPoller func() component.Input

type InputSystem struct {
	poll InputPoller
}

// NewInputSystem reads the keyboard and first gamepad when poll is nil.
func NewInputSystem(poll InputPoller) *InputSystem {
	if poll == nil {
		poll = PollDevices
	}
	return &InputSystem{poll: poll}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := i.poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = state
	})
}

// PollDevices maps Space, Up and W (or the bottom face button) to jump.
func PollDevices() component.Input {
	var in component.Input
	for _, key := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		in.Jump = in.Jump || ebiten.IsKeyPressed(key)
		in.JumpPressed = in.JumpPressed || inpututil.IsKeyJustPressed(key)
		in.JumpReleased = in.JumpReleased || inpututil.IsKeyJustReleased(key)
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		button := ebiten.StandardGamepadButtonRightBottom
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, button)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, button)
		in.JumpReleased = in.JumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, button)
	}
	return in
}

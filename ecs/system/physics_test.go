package system

import (
	"math"
	"testing"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsCreatesPlayerBody(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w)
	require.NoError(t, err)

	clock := timing.NewClock(60)
	physics := NewPhysicsSystem(clock)
	clock.Advance()
	physics.Update(w)

	require.Equal(t, 1, physics.BodyCount())
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, body.Body)
	require.NotNil(t, body.Shape)

	// density 1 over a 0.5 m radius circle
	assert.InDelta(t, math.Pi*0.25, body.Body.Mass(), 1e-9)
}

func TestPhysicsAppliesImpulseOnce(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w)
	require.NoError(t, err)

	clock := timing.NewClock(60)
	physics := NewPhysicsSystem(clock)
	clock.Advance()
	physics.Update(w)

	impulse, _ := ecs.Get(w, player, component.ExternalImpulseComponent.Kind())
	assert.True(t, impulse.IsZero())

	v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	// 200 / (pi*0.25) up, minus one frame of scaled gravity
	want := 2 + 200/(math.Pi*0.25) - 981*9.81/60
	assert.InDelta(t, want, v.LinearY, 1)
	assert.Greater(t, v.Angular, 0.2)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.Greater(t, tr.Y, 0.0)
}

func TestPhysicsImpulseIsWorldFrame(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
	}{
		{name: "upright", angle: 0},
		{name: "quarter turn", angle: math.Pi / 2},
		{name: "upside down", angle: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player, err := entity.NewPlayer(w)
			require.NoError(t, err)

			clock := timing.NewClock(60)
			physics := NewPhysicsSystem(clock)
			clock.Advance()
			physics.Update(w)

			body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
			body.Body.SetAngle(tt.angle)
			body.Body.SetVelocity(0, 0)
			body.Body.SetAngularVelocity(0)

			impulse, _ := ecs.Get(w, player, component.ExternalImpulseComponent.Kind())
			*impulse = component.ExternalImpulse{Y: 800}
			physics.applyImpulses(w)

			v := body.Body.Velocity()
			assert.InDelta(t, 0.0, v.X, 1e-9)
			assert.InDelta(t, 800/body.Body.Mass(), v.Y, 1e-9)
			assert.Equal(t, 0.0, body.Body.AngularVelocity())
			assert.True(t, impulse.IsZero())
		})
	}
}

func TestPhysicsGravityPullsDown(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w)
	require.NoError(t, err)
	impulse, _ := ecs.Get(w, player, component.ExternalImpulseComponent.Kind())
	*impulse = component.ExternalImpulse{}

	clock := timing.NewClock(60)
	physics := NewPhysicsSystem(clock)

	prev := 0.0
	for i := 0; i < 30; i++ {
		clock.Advance()
		physics.Update(w)
		tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
		if i > 0 {
			assert.Less(t, tr.Y, prev)
		}
		prev = tr.Y
	}

	v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	assert.Less(t, v.LinearY, 0.0)
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.Equal(t, -250.0, tr.X)
}

func TestPhysicsZeroDeltaDoesNotStep(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w)
	require.NoError(t, err)

	physics := NewPhysicsSystem(timing.NewClock(60))
	physics.Update(w)

	assert.Equal(t, 1, physics.BodyCount())
	impulse, _ := ecs.Get(w, player, component.ExternalImpulseComponent.Kind())
	assert.Equal(t, 200.0, impulse.Y)
}

func TestPhysicsKinematicBarsFollowAnchor(t *testing.T) {
	w := ecs.NewWorld()
	spec := loadPipeSpec(t)
	pair, err := entity.SpawnPipePair(w, rng.New(rng.DefaultSeed), spec)
	require.NoError(t, err)

	clock := timing.NewClock(60)
	move := NewPipeMoveSystem(clock, spec.Speed)
	propagate := NewTransformPropagateSystem()
	physics := NewPhysicsSystem(clock)

	for i := 0; i < 20; i++ {
		clock.Advance()
		move.Update(w)
		propagate.Update(w)
		physics.Update(w)
	}

	assert.Equal(t, 2, physics.BodyCount())
	for _, bar := range []ecs.Entity{pair.Top, pair.Bottom} {
		body, ok := ecs.Get(w, bar, component.PhysicsBodyComponent.Kind())
		require.True(t, ok)
		require.NotNil(t, body.Body)
		g, _ := ecs.Get(w, bar, component.GlobalTransformComponent.Kind())
		pos := body.Body.Position()
		assert.InDelta(t, g.X, pos.X, 1e-6)
		assert.InDelta(t, g.Y, pos.Y, 1e-6)
	}

	// the bar's transform is still owned by its parent
	top, _ := ecs.Get(w, pair.Top, component.TransformComponent.Kind())
	assert.Equal(t, 0.0, top.X)
}

func TestPhysicsRemovesDespawnedBodies(t *testing.T) {
	w := ecs.NewWorld()
	spec := loadPipeSpec(t)
	pair, err := entity.SpawnPipePair(w, rng.New(rng.DefaultSeed), spec)
	require.NoError(t, err)

	clock := timing.NewClock(60)
	propagate := NewTransformPropagateSystem()
	physics := NewPhysicsSystem(clock)

	clock.Advance()
	propagate.Update(w)
	physics.Update(w)
	require.Equal(t, 2, physics.BodyCount())

	bar, _ := ecs.Get(w, pair.Top, component.PhysicsBodyComponent.Kind())
	space := physics.Space()
	require.True(t, space.ContainsBody(bar.Body))

	anchor, _ := ecs.Get(w, pair.Anchor, component.TransformComponent.Kind())
	anchor.X = spec.DespawnX - 10
	NewPipeDespawnSystem(spec.DespawnX).Update(w)

	clock.Advance()
	physics.Update(w)
	assert.Equal(t, 0, physics.BodyCount())
	assert.False(t, space.ContainsBody(bar.Body))
}

func TestPhysicsSubstepsFastCCDBodies(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w)
	require.NoError(t, err)

	clock := timing.NewClock(60)
	physics := NewPhysicsSystem(clock)
	clock.Advance()
	physics.Update(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	dt := clock.DeltaSeconds()

	body.Body.SetVelocity(0, 0)
	assert.Equal(t, 1, physics.substeps(dt))

	// 45 px per frame against 25 px per substep
	body.Body.SetVelocity(0, -45/dt)
	assert.Equal(t, 2, physics.substeps(dt))

	body.Body.SetVelocity(0, -1e6)
	assert.Equal(t, maxSubsteps, physics.substeps(dt))
}

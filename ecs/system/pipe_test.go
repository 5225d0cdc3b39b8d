package system

import (
	"fmt"
	"testing"
	"time"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPipeSpec(t *testing.T) *prefabs.PipeSpawnerSpec {
	t.Helper()
	spec, err := prefabs.LoadPipeSpawnerSpec()
	require.NoError(t, err)
	return spec
}

func TestPipeSpawnOncePerSecond(t *testing.T) {
	for _, tps := range []int{30, 60, 144, 7} {
		t.Run(fmt.Sprintf("%d tps", tps), func(t *testing.T) {
			w := ecs.NewWorld()
			clock := timing.NewClock(tps)
			timer := timing.NewTimer(time.Second, timing.Repeating)
			spawn := NewPipeSpawnSystem(clock, timer, rng.New(rng.DefaultSeed), loadPipeSpec(t))

			for i := 0; i < tps-1; i++ {
				clock.Advance()
				spawn.Update(w)
			}
			assert.Equal(t, 0, spawn.Spawned(), "spawned before a full second")

			clock.Advance()
			spawn.Update(w)
			assert.Equal(t, 1, spawn.Spawned())

			for i := 0; i < 2*tps; i++ {
				clock.Advance()
				spawn.Update(w)
			}
			assert.Equal(t, 3, spawn.Spawned())
			assert.Equal(t, 3, ecs.Count(w, component.PipeSpawnerComponent.Kind()))
			assert.Equal(t, 6, ecs.Count(w, component.PipeBarComponent.Kind()))
		})
	}
}

func TestPipeSpawnLongFrameCatchesUp(t *testing.T) {
	w := ecs.NewWorld()
	clock := timing.NewClock(60)
	timer := timing.NewTimer(time.Second, timing.Repeating)
	spawn := NewPipeSpawnSystem(clock, timer, rng.New(rng.DefaultSeed), loadPipeSpec(t))

	clock.AdvanceBy(2500 * time.Millisecond)
	spawn.Update(w)
	assert.Equal(t, 2, spawn.Spawned())
}

func TestPipeMove(t *testing.T) {
	w := ecs.NewWorld()
	clock := timing.NewClock(60)
	spec := loadPipeSpec(t)
	pair, err := entity.SpawnPipePair(w, rng.New(rng.DefaultSeed), spec)
	require.NoError(t, err)

	move := NewPipeMoveSystem(clock, spec.Speed)
	anchor, _ := ecs.Get(w, pair.Anchor, component.TransformComponent.Kind())

	const frames = 90
	prev := anchor.X
	for i := 0; i < frames; i++ {
		clock.Advance()
		move.Update(w)
		assert.Equal(t, prev-5, anchor.X, "frame %d", i)
		prev = anchor.X
	}
	assert.Equal(t, spec.SpawnX-5*frames, anchor.X)

	// bars are moved through their parent only
	top, _ := ecs.Get(w, pair.Top, component.TransformComponent.Kind())
	assert.Equal(t, 0.0, top.X)
	assert.Equal(t, spec.BarOffset, top.Y)
}

func TestPipeMoveIgnoresZeroDelta(t *testing.T) {
	w := ecs.NewWorld()
	pair, err := entity.SpawnPipePair(w, rng.New(rng.DefaultSeed), loadPipeSpec(t))
	require.NoError(t, err)

	NewPipeMoveSystem(timing.NewClock(60), 300).Update(w)

	anchor, _ := ecs.Get(w, pair.Anchor, component.TransformComponent.Kind())
	assert.Equal(t, 500.0, anchor.X)
}

func TestPipeDespawn(t *testing.T) {
	w := ecs.NewWorld()
	spec := loadPipeSpec(t)
	src := rng.New(rng.DefaultSeed)

	gone, err := entity.SpawnPipePair(w, src, spec)
	require.NoError(t, err)
	kept, err := entity.SpawnPipePair(w, src, spec)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, gone.Anchor, component.TransformComponent.Kind())
	tr.X = spec.DespawnX - 1
	tr, _ = ecs.Get(w, kept.Anchor, component.TransformComponent.Kind())
	tr.X = spec.DespawnX

	despawn := NewPipeDespawnSystem(spec.DespawnX)
	despawn.Update(w)

	assert.Equal(t, 1, despawn.Despawned())
	for _, e := range []ecs.Entity{gone.Anchor, gone.Top, gone.Bottom} {
		assert.False(t, ecs.IsAlive(w, e), "%s should be destroyed", e)
	}
	for _, e := range []ecs.Entity{kept.Anchor, kept.Top, kept.Bottom} {
		assert.True(t, ecs.IsAlive(w, e), "%s should survive", e)
	}
}

func TestTransformPropagatePlacesBars(t *testing.T) {
	w := ecs.NewWorld()
	spec := loadPipeSpec(t)
	pair, err := entity.SpawnPipePair(w, rng.New(rng.DefaultSeed), spec)
	require.NoError(t, err)

	NewTransformPropagateSystem().Update(w)

	anchor, ok := ecs.Get(w, pair.Anchor, component.GlobalTransformComponent.Kind())
	require.True(t, ok)
	top, ok := ecs.Get(w, pair.Top, component.GlobalTransformComponent.Kind())
	require.True(t, ok)
	bottom, ok := ecs.Get(w, pair.Bottom, component.GlobalTransformComponent.Kind())
	require.True(t, ok)

	assert.Equal(t, spec.SpawnX, anchor.X)
	assert.Equal(t, float64(pair.Y), anchor.Y)
	assert.Equal(t, anchor.X, top.X)
	assert.Equal(t, anchor.Y+spec.BarOffset, top.Y)
	assert.Equal(t, anchor.X, bottom.X)
	assert.Equal(t, anchor.Y-spec.BarOffset, bottom.Y)
}

func TestTransformPropagateComposesRotationAndScale(t *testing.T) {
	w := ecs.NewWorld()
	parent := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, parent, component.TransformComponent.Kind(), &component.Transform{X: 10, Y: 0, ScaleX: 2, ScaleY: 2, Rotation: 1.5707963267948966}))
	child := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, child, component.TransformComponent.Kind(), &component.Transform{X: 5, Y: 0}))
	require.NoError(t, ecs.AddChild(w, parent, child))

	NewTransformPropagateSystem().Update(w)

	g, ok := ecs.Get(w, child, component.GlobalTransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 10.0, g.X, 1e-9)
	assert.InDelta(t, 10.0, g.Y, 1e-9)
	assert.Equal(t, 2.0, g.ScaleX)
}

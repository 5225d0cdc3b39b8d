package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
)

// PipePair is the result of one spawn: the moving anchor and its two bars.
type PipePair struct {
	Anchor ecs.Entity
	Top    ecs.Entity
	Bottom ecs.Entity
	Y      int32
}

// SpawnPipePair draws a vertical offset from src and builds an anchor at
// (SpawnX, offset) with a top and bottom bar parented BarOffset above and below.
func SpawnPipePair(w *ecs.World, src *rng.Source, spec *prefabs.PipeSpawnerSpec) (PipePair, error) {
	if spec == nil || src == nil {
		return PipePair{}, fmt.Errorf("spawn pipes: spec and rng are required")
	}

	y := src.I32Range(spec.OffsetMin, spec.OffsetMax)

	anchor, err := BuildEntity(w, spec.AnchorPrefab)
	if err != nil {
		return PipePair{}, fmt.Errorf("spawn pipes: anchor: %w", err)
	}
	if err := SetEntityTransform(w, anchor, spec.SpawnX, float64(y), 0); err != nil {
		ecs.DestroyEntity(w, anchor)
		return PipePair{}, fmt.Errorf("spawn pipes: anchor transform: %w", err)
	}
	if err := ecs.Add(w, anchor, component.EntityRNGComponent.Kind(), &component.EntityRNG{Source: src.Fork()}); err != nil {
		ecs.DestroyEntity(w, anchor)
		return PipePair{}, fmt.Errorf("spawn pipes: anchor rng: %w", err)
	}

	pair := PipePair{Anchor: anchor, Y: y}
	for _, side := range []component.PipeSide{component.PipeTop, component.PipeBottom} {
		bar, err := newPipeBar(w, anchor, side, spec)
		if err != nil {
			ecs.DestroyRecursive(w, anchor)
			return PipePair{}, err
		}
		if side == component.PipeTop {
			pair.Top = bar
		} else {
			pair.Bottom = bar
		}
	}
	return pair, nil
}

func newPipeBar(w *ecs.World, anchor ecs.Entity, side component.PipeSide, spec *prefabs.PipeSpawnerSpec) (ecs.Entity, error) {
	bar, err := BuildEntity(w, spec.BarPrefab)
	if err != nil {
		return 0, fmt.Errorf("spawn pipes: %s bar: %w", side, err)
	}

	if err := attachPipeBar(w, anchor, bar, side, spec.BarOffset); err != nil {
		ecs.DestroyEntity(w, bar)
		return 0, fmt.Errorf("spawn pipes: %s bar %w", side, err)
	}
	return bar, nil
}

// attachPipeBar places bar offset above (top) or below (bottom) the anchor
// and parents it there.
func attachPipeBar(w *ecs.World, anchor, bar ecs.Entity, side component.PipeSide, offset float64) error {
	if side == component.PipeBottom {
		offset = -offset
	}
	if err := SetEntityTransform(w, bar, 0, offset, 0); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if err := ecs.Add(w, bar, component.PipeBarComponent.Kind(), &component.PipeBar{Side: side}); err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	if err := ecs.AddChild(w, anchor, bar); err != nil {
		return fmt.Errorf("parent: %w", err)
	}
	return nil
}

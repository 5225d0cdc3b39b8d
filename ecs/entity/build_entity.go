package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"camera_tag":       addCameraTag,
	"pipe_spawner":     addPipeSpawner,
	"pipe_bar":         addPipeBar,
	"player":           addPlayer,
	"input":            addInput,
	"transform":        addTransform,
	"shape":            addShape,
	"render_layer":     addRenderLayer,
	"camera":           addCamera,
	"physics_body":     addPhysicsBody,
	"velocity":         addVelocity,
	"gravity_scale":    addGravityScale,
	"external_impulse": addExternalImpulse,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"pipe_spawner",
	"pipe_bar",
	"player",
	"input",
	"transform",
	"shape",
	"render_layer",
	"camera",
	"physics_body",
	"velocity",
	"gravity_scale",
	"external_impulse",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component(s) %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

// SetEntityTransform overrides the position and rotation a prefab was built with.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addPipeSpawner(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PipeSpawnerComponent.Kind(), &component.PipeSpawner{})
}

type pipeBarSpec = prefabs.PipeBarComponentSpec

func addPipeBar(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pipeBarSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pipe_bar spec: %w", err)
	}
	side, err := parsePipeSide(spec.Side)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PipeBarComponent.Kind(), &component.PipeBar{Side: side})
}

func parsePipeSide(s string) (component.PipeSide, error) {
	switch strings.ToLower(s) {
	case "", "top":
		return component.PipeTop, nil
	case "bottom":
		return component.PipeBottom, nil
	default:
		return 0, fmt.Errorf("unknown pipe side %q", s)
	}
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Name:        spec.Name,
		Health:      spec.Health,
		JumpImpulse: spec.JumpImpulse,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	scaleX := spec.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	scaleY := spec.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: spec.Rotation,
	})
}

type shapeSpec = prefabs.ShapeComponentSpec

func addShape(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[shapeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode shape spec: %w", err)
	}

	shape := &component.Shape{
		Radius: spec.Radius,
		Width:  spec.Width,
		Height: spec.Height,
		Color:  color.White,
	}
	switch strings.ToLower(spec.Kind) {
	case "circle":
		shape.Kind = component.ShapeCircle
		if shape.Radius <= 0 {
			return fmt.Errorf("circle shape needs a positive radius")
		}
	case "rect":
		shape.Kind = component.ShapeRect
		if shape.Width <= 0 || shape.Height <= 0 {
			return fmt.Errorf("rect shape needs positive width and height")
		}
	default:
		return fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
	if spec.Color != nil && spec.Color.Color != nil {
		shape.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.ShapeComponent.Kind(), shape)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	cam := &component.Camera{ClearColor: color.Black, Zoom: spec.Zoom}
	if spec.ClearColor != nil && spec.ClearColor.Color != nil {
		cam.ClearColor = spec.ClearColor.Color
	}
	if cam.Zoom <= 0 {
		cam.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), cam)
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}

	body := &component.PhysicsBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Density:    spec.Density,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		CCD:        spec.CCD,
		CanSleep:   true,
	}
	if spec.CanSleep != nil {
		body.CanSleep = *spec.CanSleep
	}
	switch strings.ToLower(spec.Type) {
	case "", "dynamic":
		body.Type = component.BodyDynamic
	case "kinematic":
		body.Type = component.BodyKinematic
	case "static":
		body.Type = component.BodyStatic
	default:
		return fmt.Errorf("unknown body type %q", spec.Type)
	}
	if body.Radius <= 0 && (body.Width <= 0 || body.Height <= 0) {
		return fmt.Errorf("physics_body needs a radius or a width and height")
	}
	if body.Density <= 0 {
		body.Density = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body)
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		LinearX: spec.LinearX,
		LinearY: spec.LinearY,
		Angular: spec.Angular,
	})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity_scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type externalImpulseSpec = prefabs.ExternalImpulseComponentSpec

func addExternalImpulse(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[externalImpulseSpec](raw)
	if err != nil {
		return fmt.Errorf("decode external_impulse spec: %w", err)
	}
	return ecs.Add(w, e, component.ExternalImpulseComponent.Kind(), &component.ExternalImpulse{
		X:      spec.X,
		Y:      spec.Y,
		Torque: spec.Torque,
	})
}

package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

const debugDotSize = 4

func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := cameraTransform(w)
	drawer := &physicsDebugDrawer{
		screen: screen,
		camX:   camX,
		camY:   camY,
		zoom:   zoom,
	}
	cp.DrawSpace(space, drawer)
}

// DrawPlayerDebug prints the bird's physics state in the top left corner.
func DrawPlayerDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vx, vy, av := 0.0, 0.0, 0.0
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		vx, vy, av = v.LinearX, v.LinearY, v.Angular
	}
	pipes := ecs.Count(w, component.PipeSpawnerComponent.Kind())
	text := fmt.Sprintf("Player: (%.1f, %.1f) rot %.2f\nVelocity: (%.1f, %.1f) ang %.2f\nPipes: %d", t.X, t.Y, t.Rotation, vx, vy, av, pipes)
	ebitenutil.DebugPrintAt(screen, text, 10, 30)
}

// physicsDebugDrawer outlines cp shapes in screen space. Kinematic pipe bars
// and the dynamic bird get different outline colors.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

var (
	debugDynamicColor   = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugKinematicColor = cp.FColor{R: 1, G: 0.8, B: 0.2, A: 0.9}
	debugContactColor   = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
)

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	cx, cy := d.toScreen(pos)
	vector.StrokeCircle(d.screen, float32(cx), float32(cy), float32(radius*d.zoom), 1, debugColor(outline), true)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.toScreen(pos)
	vector.DrawFilledCircle(d.screen, float32(x), float32(y), float32(size/2), debugColor(fill), true)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return debugDynamicColor
}

// ShapeColor is handed back to DrawCircle/DrawPolygon as the outline.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Body() != nil && shape.Body().GetType() == cp.BODY_KINEMATIC {
		return debugKinematicColor
	}
	return debugDynamicColor
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return debugDynamicColor
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return debugContactColor
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, debugColor(c), true)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return common.WorldToScreen(v.X, v.Y, d.camX, d.camY, d.zoom)
}

func debugColor(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// cameraTransform returns the first camera's position and zoom, or the
// origin at zoom 1 when there is none.
func cameraTransform(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}
	return camX, camY, zoom
}

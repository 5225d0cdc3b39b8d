package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const labelGap = 8

var defaultClearColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

type RenderSystem struct {
	camEntity ecs.Entity
	face      text.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

type drawItem struct {
	entity ecs.Entity
	layer  int
	x, y   float64
	rot    float64
	scaleX float64
	scaleY float64
	shape  *component.Shape
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	var clear color.Color = defaultClearColor
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && camComp.ClearColor != nil {
		clear = camComp.ClearColor
	}
	screen.Fill(clear)

	camX, camY, zoom := cameraTransform(w)

	var items []drawItem
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, s *component.Shape) {
		if e == r.camEntity {
			return
		}
		item := drawItem{entity: e, shape: s, scaleX: 1, scaleY: 1}
		if g, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
			item.x, item.y, item.rot = g.X, g.Y, g.Rotation
			item.scaleX, item.scaleY = scaleOr1(g.ScaleX), scaleOr1(g.ScaleY)
		} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			item.x, item.y, item.rot = t.X, t.Y, t.Rotation
			item.scaleX, item.scaleY = scaleOr1(t.ScaleX), scaleOr1(t.ScaleY)
		} else {
			return
		}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			item.layer = layer.Index
		}
		items = append(items, item)
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].entity) < uint64(items[j].entity)
	})

	for _, item := range items {
		sx, sy := common.WorldToScreen(item.x, item.y, camX, camY, zoom)
		c := item.shape.Color
		if c == nil {
			c = color.White
		}

		switch item.shape.Kind {
		case component.ShapeCircle:
			radius := item.shape.Radius * math.Max(item.scaleX, item.scaleY) * zoom
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), c, true)
			// marker so rotation is visible on a flat circle
			ex := sx + math.Cos(item.rot)*radius
			ey := sy - math.Sin(item.rot)*radius
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, color.Black, true)
		case component.ShapeRect:
			width := item.shape.Width * item.scaleX * zoom
			height := item.shape.Height * item.scaleY * zoom
			vector.DrawFilledRect(screen, float32(sx-width/2), float32(sy-height/2), float32(width), float32(height), c, false)
		}
	}

	r.drawPlayerLabels(w, screen, camX, camY, zoom)
}

func (r *RenderSystem) drawPlayerLabels(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		if p.Name == "" {
			return
		}
		top := t.Y
		if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
			top += s.Radius
		}
		sx, sy := common.WorldToScreen(t.X, top, camX, camY, zoom)
		width, height := text.Measure(p.Name, r.face, 0)

		op := &text.DrawOptions{}
		op.GeoM.Translate(sx-width/2, sy-height-labelGap)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, p.Name, r.face, op)
	})
}

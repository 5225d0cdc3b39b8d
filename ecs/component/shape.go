package component

import "image/color"

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a flat-colored primitive drawn centered on the entity.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
	Color  color.Color
}

var ShapeComponent = NewComponent[Shape]()

// RenderLayer orders drawing; lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

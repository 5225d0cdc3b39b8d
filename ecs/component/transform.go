package component

// Transform is an entity's position in its parent's space (world space when it
// has no Parent). Y grows upward.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// GlobalTransform is the world-space result of walking the Parent chain.
// Written by the transform propagation system; read by physics and rendering.
type GlobalTransform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var GlobalTransformComponent = NewComponent[GlobalTransform]()

package component

import "image/color"

type Camera struct {
	ClearColor color.Color
	Zoom       float64
}

var CameraComponent = NewComponent[Camera]()

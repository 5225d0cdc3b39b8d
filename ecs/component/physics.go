package component

import "github.com/jakecoffman/cp"

type BodyType int

const (
	BodyDynamic BodyType = iota
	// BodyKinematic bodies are moved by assigning their transform; forces and
	// impulses do not affect them.
	BodyKinematic
	BodyStatic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A positive Radius makes a circle collider, otherwise Width x Height box.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Type       BodyType
	Width      float64
	Height     float64
	Radius     float64
	Density    float64
	Friction   float64
	Elasticity float64
	CCD        bool
	CanSleep   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity seeds a body's initial velocity and mirrors it after each step.
type Velocity struct {
	LinearX float64
	LinearY float64
	Angular float64
}

var VelocityComponent = NewComponent[Velocity]()

// ExternalImpulse is applied to the body on the next physics step and then
// reset to zero.
type ExternalImpulse struct {
	X      float64
	Y      float64
	Torque float64
}

var ExternalImpulseComponent = NewComponent[ExternalImpulse]()

func (i ExternalImpulse) IsZero() bool {
	return i.X == 0 && i.Y == 0 && i.Torque == 0
}

// GravityScale multiplies world gravity for one dynamic body. The bird uses
// 9.81 so it falls at a meter-per-second-squared feel in pixel units.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()

package component

// Player holds the bird's display data and flap strength. Health is carried
// for a future damage model and is not read by any system yet.
type Player struct {
	Name        string
	Health      float64
	JumpImpulse float64
}

var PlayerComponent = NewComponent[Player]()

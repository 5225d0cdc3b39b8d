package component

// Parent points at the owning entity (ecs.Entity is uint64).
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

type Children struct {
	Entities []uint64
}

var ChildrenComponent = NewComponent[Children]()

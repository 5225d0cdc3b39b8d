package component

type PipeSide int

const (
	PipeTop PipeSide = iota
	PipeBottom
)

func (s PipeSide) String() string {
	if s == PipeTop {
		return "top"
	}
	return "bottom"
}

// PipeBar is one of the two obstacle bars parented to a pipe anchor.
type PipeBar struct {
	Side PipeSide
}

var PipeBarComponent = NewComponent[PipeBar]()

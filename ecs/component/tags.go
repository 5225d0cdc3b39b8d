package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// PipeSpawner marks the moving anchor of a pipe pair.
type PipeSpawner struct{}

var PipeSpawnerComponent = NewComponent[PipeSpawner]()

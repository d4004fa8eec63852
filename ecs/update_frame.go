package ecs

// UpdateFrame is handed to every system of a stage. For stages gated by a
// FixedTimestep, DeltaTime is the fixed step rather than the frame time.
type UpdateFrame[W any] struct {
	DeltaTime float64
	Stage     string
	Commands  *Commands
	World     *W
}

func newUpdateFrame[W any](dt float64, stage string, world *W, commands *Commands) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		DeltaTime: dt,
		Stage:     stage,
		Commands:  commands,
		World:     world,
	}
}

package ecs

// System represents a behavior that runs once per stage execution.
// Systems reach shared simulation state through frame.World and may keep
// their own scratch fields that persist between frames.
type System[W any] interface {
	Execute(frame *UpdateFrame[W])
}

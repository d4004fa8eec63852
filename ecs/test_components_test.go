package ecs_test

import "github.com/plus3/snake/ecs"

// Common test record types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

const (
	kindActor ecs.Kind = iota + 1
	kindProp
)

// testWorld is a minimal world used to drive the scheduler in tests.
type testWorld struct {
	Actors *ecs.Arena[Position]
	Props  *ecs.Arena[Health]
	Hits   ecs.Signals[int]
	Log    []string
}

func newTestWorld() *testWorld {
	return &testWorld{
		Actors: ecs.NewArena[Position](kindActor),
		Props:  ecs.NewArena[Health](kindProp),
	}
}

func (w *testWorld) Despawn(id ecs.EntityId) {
	switch id.Kind() {
	case kindActor:
		w.Actors.Delete(id)
	case kindProp:
		w.Props.Delete(id)
	default:
		panic("unknown kind")
	}
}

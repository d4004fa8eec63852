package snake

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/plus3/snake/ecs"
)

type recordingAssets struct {
	requests []Role
	colors   []color.RGBA
}

func (a *recordingAssets) Material(role Role, c color.RGBA) Material {
	a.requests = append(a.requests, role)
	a.colors = append(a.colors, c)
	return Material(len(a.requests))
}

func newTestWorld() *World {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return NewWorld(cfg, &recordingAssets{})
}

// run executes systems in order as one stage and flushes their commands.
func run(w *World, systems ...ecs.System[World]) {
	frame := &ecs.UpdateFrame[World]{
		DeltaTime: w.Config.TickPeriod,
		Commands:  &ecs.Commands{},
		World:     w,
	}
	for _, s := range systems {
		s.Execute(frame)
	}
	frame.Commands.Flush(w)
}

// tick runs one movement tick the way the FixedUpdate stage does.
func tick(w *World) {
	run(w, &MovementSystem{}, &EatingSystem{}, &GrowthSystem{}, &GameOverSystem{})
}

// dumpWorld renders the board top row first, for failure messages.
func dumpWorld(w *World) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Heading=%s Segments=%v Food=%v\n", w.Heading, w.SegmentPositions(), w.FoodPositions())

	cells := make(map[Position]byte)
	for _, p := range w.FoodPositions() {
		cells[p] = '*'
	}
	for i, p := range w.SegmentPositions() {
		if i == 0 {
			cells[p] = 'H'
		} else {
			cells[p] = 'o'
		}
	}

	for y := w.Grid.Height - 1; y >= 0; y-- {
		for x := 0; x < w.Grid.Width; x++ {
			if c, ok := cells[Position{X: x, Y: y}]; ok {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package snake

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/snake/ecs"
)

// InputSystem turns held keys into a pending heading. Keys are checked in
// Directions order and a key is ignored when it would reverse the heading
// set so far, so the last acceptable key wins.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	if len(w.Segments) == 0 {
		return
	}

	for _, d := range Directions {
		if w.Keys.Pressed(d) && w.Heading != d.Opposite() {
			w.Heading = d
		}
	}
}

// MovementSystem advances the snake one cell along its heading.
type MovementSystem struct {
	snapshot []Position
	occupied *intmap.Map[uint64, struct{}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	if len(w.Segments) == 0 {
		panic("movement: snake has no segments")
	}

	if s.occupied == nil {
		s.occupied = intmap.New[uint64, struct{}](16)
	}
	s.occupied.Clear()

	s.snapshot = s.snapshot[:0]
	for _, id := range w.Segments {
		pos := w.Segment(id).Position
		s.snapshot = append(s.snapshot, pos)
		s.occupied.Put(cellKey(pos), struct{}{})
	}

	head := w.Segment(w.Segments[0])
	head.Position = w.Grid.Step(s.snapshot[0], w.Heading)

	if _, hit := s.occupied.Get(cellKey(head.Position)); hit {
		w.GameOver.Send(GameOverEvent{At: head.Position, Length: len(w.Segments)})
	}

	for i, id := range w.Segments[1:] {
		w.Segment(id).Position = s.snapshot[i]
	}

	tail := s.snapshot[len(s.snapshot)-1]
	w.LastTail = &tail
	w.stats.Ticks++
}

// EatingSystem consumes every food item under the head. Each item eaten
// raises its own growth event.
type EatingSystem struct{}

func (s *EatingSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	head := w.Head().Position

	for id, food := range w.FoodItems() {
		if food.Position == head {
			frame.Commands.Despawn(id)
			w.Growth.Send(GrowthEvent{Food: id, At: head})
			w.stats.FoodEaten++
		}
	}
}

// GrowthSystem appends one body segment at the vacated tail cell when at
// least one growth event is pending. Several events in the same tick still
// grow the snake by a single segment.
type GrowthSystem struct{}

func (s *GrowthSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	if len(w.Growth.Drain()) == 0 {
		return
	}

	if w.LastTail == nil {
		panic("growth: no vacated tail position recorded")
	}
	w.Grow(*w.LastTail)
}

// GameOverSystem resets the world when the head ran into the snake.
type GameOverSystem struct{}

func (s *GameOverSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	events := w.GameOver.Drain()
	if len(events) == 0 {
		return
	}

	w.stats.LastDeathLength = events[0].Length
	w.Reset()
}

// FoodSpawnerSystem drops one food item on a random cell per run. Existing
// food is left in place, occupied cells included.
type FoodSpawnerSystem struct{}

func (s *FoodSpawnerSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	w.SpawnFood(w.RandomCell())
}

// PositionTranslationSystem projects every renderable's cell onto the window.
type PositionTranslationSystem struct{}

func (s *PositionTranslationSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	for _, r := range w.Renderables() {
		r.Transform = Translate(r.Position, w.Grid, w.Window)
	}
}

// SizeScalingSystem sizes every renderable's sprite for the current window.
type SizeScalingSystem struct{}

func (s *SizeScalingSystem) Execute(frame *ecs.UpdateFrame[World]) {
	w := frame.World
	for _, r := range w.Renderables() {
		r.Sprite = Scale(r.Size, w.Grid, w.Window)
	}
}

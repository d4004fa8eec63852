package snake

import (
	"fmt"
	"image/color"
	"iter"
	"math/rand/v2"

	"github.com/plus3/snake/ecs"
)

var (
	ClearColor = color.RGBA{40, 40, 40, 255}
	HeadColor  = color.RGBA{184, 187, 38, 255}
	FoodColor  = color.RGBA{251, 73, 52, 255}
	BodyColor  = color.RGBA{152, 151, 26, 255}
)

// Renderable sizes, as fractions of a cell.
var (
	HeadSize = Square(0.8)
	BodySize = Square(0.65)
	FoodSize = Square(0.5)
)

// Config holds the fixed parameters of a game.
type Config struct {
	Grid Grid

	// Window is the initial window size; hosts overwrite World.Window every frame.
	Window WindowSize

	// TickPeriod is the movement step in seconds.
	TickPeriod float64

	// FoodPeriod is the food spawn interval in seconds.
	FoodPeriod float64

	// Start is the head cell of a fresh snake.
	Start        Position
	StartHeading Direction

	// Seed drives food placement. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the standard 10x10 game in a 500x500 window.
func DefaultConfig() Config {
	return Config{
		Grid:         Grid{Width: 10, Height: 10},
		Window:       WindowSize{Width: 500, Height: 500},
		TickPeriod:   0.15,
		FoodPeriod:   3.0,
		Start:        Position{X: 3, Y: 3},
		StartHeading: Up,
	}
}

// Stats are running counters for a world.
type Stats struct {
	Ticks       int64
	Resets      int
	FoodSpawned int
	FoodEaten   int
	FoodActive  int
	Length      int
	BestLength  int

	// LastDeathLength is the snake's length at the most recent game over.
	LastDeathLength int
}

// World is the whole simulation state. Systems receive it through
// ecs.UpdateFrame.World; hosts write Keys and Window before each frame and
// read renderables after it.
type World struct {
	Config    Config
	Grid      Grid
	Materials Materials

	// Keys and Window are written by the host and only read by systems.
	Keys   KeySet
	Window WindowSize

	// Segments lists the snake head first.
	Segments []ecs.EntityId
	Heading  Direction

	// LastTail is the cell the tail left on the most recent movement tick.
	LastTail *Position

	Growth   ecs.Signals[GrowthEvent]
	GameOver ecs.Signals[GameOverEvent]

	segments *ecs.Arena[Renderable]
	food     *ecs.Arena[Renderable]
	rng      *rand.Rand
	stats    Stats
}

// NewWorld builds a world, requests its materials from assets and spawns
// the starting snake.
func NewWorld(cfg Config, assets Assets) *World {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		panic(fmt.Sprintf("invalid grid %dx%d", cfg.Grid.Width, cfg.Grid.Height))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	w := &World{
		Config: cfg,
		Grid:   cfg.Grid,
		Window: cfg.Window,
		Materials: Materials{
			Head: assets.Material(RoleHead, HeadColor),
			Food: assets.Material(RoleFood, FoodColor),
			Body: assets.Material(RoleBody, BodyColor),
		},
		segments: ecs.NewArena[Renderable](KindSegment),
		food:     ecs.NewArena[Renderable](KindFood),
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	w.spawnSnake()
	return w
}

func (w *World) spawnSnake() {
	head := w.Config.Start
	w.PlaceSnake(w.Config.StartHeading, head, w.Grid.Step(head, w.Config.StartHeading.Opposite()))
}

// PlaceSnake replaces the snake with one occupying cells, head first.
func (w *World) PlaceSnake(heading Direction, cells ...Position) {
	if len(cells) == 0 {
		panic("snake needs at least one segment")
	}

	for _, id := range w.Segments {
		w.segments.Delete(id)
	}

	w.Segments = w.Segments[:0]
	w.Heading = heading
	w.LastTail = nil

	w.Segments = append(w.Segments, w.segments.Spawn(Renderable{
		Role:     RoleHead,
		Position: cells[0],
		Size:     HeadSize,
		Material: w.Materials.Head,
	}))
	for _, cell := range cells[1:] {
		w.spawnSegment(cell)
	}
	w.trackLength()
}

func (w *World) spawnSegment(p Position) ecs.EntityId {
	id := w.segments.Spawn(Renderable{
		Role:     RoleBody,
		Position: p,
		Size:     BodySize,
		Material: w.Materials.Body,
	})
	w.Segments = append(w.Segments, id)
	return id
}

// Grow appends a body segment at p.
func (w *World) Grow(p Position) ecs.EntityId {
	id := w.spawnSegment(p)
	w.trackLength()
	return id
}

// SpawnFood places a food item at p.
func (w *World) SpawnFood(p Position) ecs.EntityId {
	w.stats.FoodSpawned++
	return w.food.Spawn(Renderable{
		Role:     RoleFood,
		Position: p,
		Size:     FoodSize,
		Material: w.Materials.Food,
	})
}

// RandomCell picks a uniformly random cell.
func (w *World) RandomCell() Position {
	return Position{
		X: int(w.rng.Float64() * float64(w.Grid.Width)),
		Y: int(w.rng.Float64() * float64(w.Grid.Height)),
	}
}

// Despawn removes a food item or snake segment. Removing a segment also
// drops it from Segments.
func (w *World) Despawn(id ecs.EntityId) {
	switch id.Kind() {
	case KindFood:
		w.food.Delete(id)
	case KindSegment:
		if !w.segments.Delete(id) {
			return
		}
		for i, seg := range w.Segments {
			if seg == id {
				w.Segments = append(w.Segments[:i], w.Segments[i+1:]...)
				break
			}
		}
	default:
		panic(fmt.Sprintf("despawn of unknown entity kind %d", id.Kind()))
	}
}

// Reset despawns every food item and segment and spawns a fresh snake.
func (w *World) Reset() {
	w.food.Clear()
	w.segments.Clear()
	w.Segments = w.Segments[:0]
	w.stats.Resets++
	w.spawnSnake()
}

// Segment returns the record for a snake segment. It panics if id is not a
// live segment.
func (w *World) Segment(id ecs.EntityId) *Renderable {
	r := w.segments.Get(id)
	if r == nil {
		panic(fmt.Sprintf("segment %#x is not live", uint64(id)))
	}
	return r
}

// Food returns the record for a food item, or nil.
func (w *World) Food(id ecs.EntityId) *Renderable {
	return w.food.Get(id)
}

// Head returns the head record.
func (w *World) Head() *Renderable {
	if len(w.Segments) == 0 {
		panic("snake has no segments")
	}
	return w.Segment(w.Segments[0])
}

// SegmentPositions returns the snake's cells, head first.
func (w *World) SegmentPositions() []Position {
	positions := make([]Position, 0, len(w.Segments))
	for _, id := range w.Segments {
		positions = append(positions, w.Segment(id).Position)
	}
	return positions
}

// FoodItems yields every active food item.
func (w *World) FoodItems() iter.Seq2[ecs.EntityId, *Renderable] {
	return w.food.Iter()
}

// FoodPositions returns the cells of every active food item.
func (w *World) FoodPositions() []Position {
	positions := make([]Position, 0, w.food.Len())
	for _, f := range w.food.Iter() {
		positions = append(positions, f.Position)
	}
	return positions
}

// Renderables yields every segment followed by every food item.
func (w *World) Renderables() iter.Seq2[ecs.EntityId, *Renderable] {
	return func(yield func(ecs.EntityId, *Renderable) bool) {
		for id, r := range w.segments.Iter() {
			if !yield(id, r) {
				return
			}
		}
		for id, r := range w.food.Iter() {
			if !yield(id, r) {
				return
			}
		}
	}
}

func (w *World) trackLength() {
	w.stats.Length = len(w.Segments)
	if w.stats.Length > w.stats.BestLength {
		w.stats.BestLength = w.stats.Length
	}
}

// Stats returns a snapshot of the world's counters.
func (w *World) Stats() Stats {
	s := w.stats
	s.FoodActive = w.food.Len()
	s.Length = len(w.Segments)
	return s
}

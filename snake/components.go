package snake

import (
	"image/color"

	"github.com/plus3/snake/ecs"
)

// Entity kinds handed out by the world's arenas.
const (
	KindSegment ecs.Kind = iota + 1
	KindFood
)

// Direction is the heading applied to the head on the next movement tick.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every heading in the order input keys are checked.
var Directions = [...]Direction{Left, Right, Up, Down}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic("invalid direction")
}

// Offset returns the unit step for the heading. Up is +Y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	}
	panic("invalid direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	}
	return "Direction(?)"
}

// KeySet is the set of directional keys currently held.
type KeySet uint8

// Keys builds a KeySet from held directions.
func Keys(held ...Direction) KeySet {
	var k KeySet
	for _, d := range held {
		k = k.With(d)
	}
	return k
}

// With returns the set with d added.
func (k KeySet) With(d Direction) KeySet {
	return k | 1<<d
}

// Pressed reports whether d is held.
func (k KeySet) Pressed(d Direction) bool {
	return k&(1<<d) != 0
}

type Position struct {
	X, Y int
}

// Size is a renderable's extent as a fraction of one grid cell.
type Size struct {
	Width, Height float64
}

// Square returns a Size with equal sides.
func Square(x float64) Size {
	return Size{Width: x, Height: x}
}

// Role is the logical visual style of a renderable.
type Role uint8

const (
	RoleHead Role = iota
	RoleBody
	RoleFood
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleBody:
		return "body"
	case RoleFood:
		return "food"
	}
	return "role(?)"
}

// Material is an opaque handle issued by the host's Assets.
type Material uint32

// Assets is the host-side material collaborator. The world asks for each
// role's material once, at construction.
type Assets interface {
	Material(role Role, c color.RGBA) Material
}

// Materials holds the handles for each role.
type Materials struct {
	Head Material
	Body Material
	Food Material
}

// Transform is the centered, y-up screen translation of a renderable.
type Transform struct {
	X, Y float64
}

// Sprite is a renderable's on-screen size in pixels.
type Sprite struct {
	Width, Height float64
}

// Renderable is the record stored for every segment and food item.
type Renderable struct {
	Role      Role
	Position  Position
	Size      Size
	Material  Material
	Transform Transform
	Sprite    Sprite
}

// GrowthEvent is raised for every food item eaten.
type GrowthEvent struct {
	Food ecs.EntityId
	At   Position
}

// GameOverEvent is raised when the head moves onto an occupied cell.
type GameOverEvent struct {
	At     Position
	Length int
}

package snake

// Grid is the arena size in cells.
type Grid struct {
	Width  int
	Height int
}

// WindowSize is the host window's size in pixels.
type WindowSize struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the grid, each axis independently.
func (g Grid) Wrap(p Position) Position {
	return Position{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p one cell in direction d, wrapping at the edges.
func (g Grid) Step(p Position, d Direction) Position {
	dx, dy := d.Offset()
	return g.Wrap(Position{X: p.X + dx, Y: p.Y + dy})
}

// mod is the mathematical modulo; the result has the sign of n.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

// cellKey packs a position into an integer map key.
func cellKey(p Position) uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

// Translate projects a cell onto the window. The result is relative to the
// window centre with y pointing up, and lands on the centre of the cell.
func Translate(p Position, g Grid, w WindowSize) Transform {
	return Transform{
		X: project(float64(p.X), w.Width, float64(g.Width)),
		Y: project(float64(p.Y), w.Height, float64(g.Height)),
	}
}

func project(pos, boundWindow, boundGame float64) float64 {
	tileSize := boundWindow / boundGame
	return pos/boundGame*boundWindow - boundWindow/2 + tileSize/2
}

// Scale converts a cell-fraction size to pixels for the current window.
func Scale(s Size, g Grid, w WindowSize) Sprite {
	return Sprite{
		Width:  s.Width / float64(g.Width) * w.Width,
		Height: s.Height / float64(g.Height) * w.Height,
	}
}

// ScreenRect converts a centered y-up transform and sprite to the top-left
// pixel corner of a y-down screen of the given size.
func ScreenRect(t Transform, s Sprite, w WindowSize) (x, y, width, height float64) {
	cx := w.Width/2 + t.X
	cy := w.Height/2 - t.Y
	return cx - s.Width/2, cy - s.Height/2, s.Width, s.Height
}

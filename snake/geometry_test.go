package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())

		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, 0, dx+ox, d.String())
		assert.Equal(t, 0, dy+oy, d.String())
	}
}

func TestKeySet(t *testing.T) {
	k := Keys(Left, Down)

	assert.True(t, k.Pressed(Left))
	assert.True(t, k.Pressed(Down))
	assert.False(t, k.Pressed(Up))
	assert.False(t, k.Pressed(Right))
	assert.True(t, k.With(Up).Pressed(Up))
	assert.False(t, KeySet(0).Pressed(Left))
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 10, Height: 5}

	tests := []struct {
		in, want Position
	}{
		{Position{0, 0}, Position{0, 0}},
		{Position{-1, 0}, Position{9, 0}},
		{Position{10, 0}, Position{0, 0}},
		{Position{0, -1}, Position{0, 4}},
		{Position{0, 5}, Position{0, 0}},
		{Position{-11, 12}, Position{9, 2}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Wrap(tt.in), "wrap %v", tt.in)
	}
}

func TestGridStep(t *testing.T) {
	g := Grid{Width: 10, Height: 10}

	assert.Equal(t, Position{9, 4}, g.Step(Position{0, 4}, Left))
	assert.Equal(t, Position{0, 4}, g.Step(Position{9, 4}, Right))
	assert.Equal(t, Position{4, 0}, g.Step(Position{4, 9}, Up))
	assert.Equal(t, Position{4, 9}, g.Step(Position{4, 0}, Down))
	assert.Equal(t, Position{3, 4}, g.Step(Position{3, 3}, Up))
}

func TestCellKeyDistinct(t *testing.T) {
	seen := make(map[uint64]Position)
	for x := -3; x < 12; x++ {
		for y := -3; y < 12; y++ {
			p := Position{x, y}
			key := cellKey(p)
			if prev, dup := seen[key]; dup {
				t.Fatalf("cellKey(%v) collides with %v", p, prev)
			}
			seen[key] = p
		}
	}
}

func TestScreenRect(t *testing.T) {
	window := WindowSize{Width: 500, Height: 500}
	grid := Grid{Width: 10, Height: 10}

	tr := Translate(Position{0, 0}, grid, window)
	sp := Scale(HeadSize, grid, window)
	x, y, w, h := ScreenRect(tr, sp, window)

	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 455, y, 1e-9)
	assert.InDelta(t, 40, w, 1e-9)
	assert.InDelta(t, 40, h, 1e-9)

	// the top row sits at the top of the screen
	tr = Translate(Position{0, 9}, grid, window)
	_, y, _, _ = ScreenRect(tr, sp, window)
	assert.InDelta(t, 5, y, 1e-9)
}

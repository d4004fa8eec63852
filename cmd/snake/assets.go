package main

import (
	"image/color"

	"github.com/plus3/snake/snake"
)

// palette is the asset collaborator. Materials index the colors it was
// asked for.
type palette struct {
	colors []color.RGBA
	roles  []snake.Role
}

func (p *palette) Material(role snake.Role, c color.RGBA) snake.Material {
	p.colors = append(p.colors, c)
	p.roles = append(p.roles, role)
	return snake.Material(len(p.colors) - 1)
}

// Color returns the color behind m, or magenta for an unknown handle.
func (p *palette) Color(m snake.Material) color.RGBA {
	if int(m) >= len(p.colors) {
		return color.RGBA{255, 0, 255, 255}
	}
	return p.colors[m]
}

// Role returns the role m was issued for.
func (p *palette) Role(m snake.Material) (snake.Role, bool) {
	if int(m) >= len(p.roles) {
		return 0, false
	}
	return p.roles[m], true
}

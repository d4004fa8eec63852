package main

import (
	"image/color"

	"github.com/plus3/snake/snake"
)

// headlessAssets hands out the role as the material; nothing is drawn.
type headlessAssets struct{}

func (headlessAssets) Material(role snake.Role, _ color.RGBA) snake.Material {
	return snake.Material(role)
}

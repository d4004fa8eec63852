package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/snake/ecs"
	"github.com/plus3/snake/snake"
)

var directionKeys = map[snake.Direction]ebiten.Key{
	snake.Left:  ebiten.KeyArrowLeft,
	snake.Right: ebiten.KeyArrowRight,
	snake.Up:    ebiten.KeyArrowUp,
	snake.Down:  ebiten.KeyArrowDown,
}

// Game implements ebiten.Game. It feeds held keys and the window size into
// the world, drives the scheduler and draws every renderable as a rectangle.
type Game struct {
	world     *snake.World
	scheduler *ecs.Scheduler[snake.World]
	assets    *palette
	debug     *debugOverlay

	width, height int
}

func pollKeys() snake.KeySet {
	var keys snake.KeySet
	for d, key := range directionKeys {
		if ebiten.IsKeyPressed(key) {
			keys = keys.With(d)
		}
	}
	return keys
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.debug != nil {
		g.debug.backend.BeginFrame()
		defer g.debug.backend.EndFrame()
	}

	w := g.world
	w.Keys = 0
	if g.debug == nil || !g.debug.panels.Input.WantCaptureKeyboard {
		w.Keys = pollKeys()
	}
	w.Window = snake.WindowSize{Width: float64(g.width), Height: float64(g.height)}

	resets := w.Stats().Resets
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if stats := w.Stats(); stats.Resets != resets {
		log.Printf("World reset, last death at length %d (best %d)", stats.LastDeathLength, stats.BestLength)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(snake.ClearColor)

	w := g.world
	for _, r := range w.Renderables() {
		x, y, width, height := snake.ScreenRect(r.Transform, r.Sprite, w.Window)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), g.assets.Color(r.Material), false)
	}

	if g.debug != nil {
		g.debug.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if g.debug != nil {
		g.debug.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

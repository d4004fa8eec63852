package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/snake/snake"
)

const windowTitle = "Snake!"

func main() {
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Seed for food placement. Zero picks a random seed.")
	flag.Parse()

	cfg := snake.DefaultConfig()
	cfg.Seed = *seed

	assets := &palette{}
	world := snake.NewWorld(cfg, assets)
	scheduler := snake.NewScheduler(world)

	width, height := int(cfg.Window.Width), int(cfg.Window.Height)

	game := &Game{
		world:     world,
		scheduler: scheduler,
		assets:    assets,
		width:     width,
		height:    height,
	}
	if *debug {
		game.debug = newDebugOverlay(windowTitle, world, scheduler, assets)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	log.Printf("Starting %dx%d game (tick %.2fs, food every %.1fs)", cfg.Grid.Width, cfg.Grid.Height, cfg.TickPeriod, cfg.FoodPeriod)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	stats := world.Stats()
	log.Printf("Exited after %d ticks, %d resets, best length %d", stats.Ticks, stats.Resets, stats.BestLength)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/snake/snake"
)

type options struct {
	Duration   time.Duration
	Seed       uint64
	TurnChance float64
	Frame      time.Duration
}

func main() {
	opts := options{}
	flag.DurationVar(&opts.Duration, "duration", 10*time.Second, "The total duration the soak should run for.")
	flag.Uint64Var(&opts.Seed, "seed", 1, "Seed for food placement and scripted input.")
	flag.Float64Var(&opts.TurnChance, "turn-chance", 0.2, "Probability of pressing a random direction key each frame.")
	flag.DurationVar(&opts.Frame, "frame", time.Second/60, "Simulated frame time handed to the scheduler.")
	flag.Parse()

	if opts.Frame <= 0 {
		log.Fatalf("frame must be positive, got %s", opts.Frame)
	}

	log.Printf("Running snake soak for %s (seed %d)...\n", opts.Duration, opts.Seed)
	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	report := soak(ctx, opts)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Snake Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// soak drives a headless world with random key presses as fast as it can
// until ctx is done.
func soak(ctx context.Context, opts options) *Report {
	cfg := snake.DefaultConfig()
	cfg.Seed = opts.Seed

	world := snake.NewWorld(cfg, headlessAssets{})
	scheduler := snake.NewScheduler(world)
	input := rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))

	report := &Report{
		Options: opts,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, 1024),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	frame := opts.Frame.Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			world.Keys = 0
			if input.Float64() < opts.TurnChance {
				world.Keys = snake.Keys(snake.Directions[input.IntN(len(snake.Directions))])
			}

			updateStart := time.Now()
			scheduler.Once(frame)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			report.TotalUpdates++
			report.MaxFoodActive = max(report.MaxFoodActive, world.Stats().FoodActive)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.TotalUpdates) * opts.Frame
	report.UpdateTime.Finalize()
	report.World = world.Stats()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}

package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/snake/ecs"
	"github.com/plus3/snake/snake"
)

type Report struct {
	Options options

	// Results
	TotalUpdates  int64
	TotalTime     time.Duration
	SimulatedTime time.Duration
	UpdateTime    Stats
	World         snake.Stats
	MaxFoodActive int
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Snake Soak Report

## Configuration
- **Run Duration:** {{.Options.Duration}}
- **Seed:** {{.Options.Seed}}
- **Turn Chance:** {{printf "%.2f" .Options.TurnChance}}
- **Frame Time:** {{.Options.Frame}}

## Game
- **Simulated Time:** {{.SimulatedTime}}
- **Movement Ticks:** {{.World.Ticks}}
- **Resets:** {{.World.Resets}}
- **Food:** {{.World.FoodSpawned}} spawned, {{.World.FoodEaten}} eaten, {{.World.FoodActive}} active (max {{.MaxFoodActive}})
- **Length:** {{.World.Length}} now, {{.World.BestLength}} best, {{.World.LastDeathLength}} at last death

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Stage | Runs | Avg | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.Stage}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- GC Pause:       {{.MemStatsEnd.PauseTotalNs | ns}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

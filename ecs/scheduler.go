package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	StageCount      int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type stage[W any] struct {
	name     string
	timestep *FixedTimestep
	systems  []System[W]
	stats    []*systemStatsInternal
}

// Scheduler runs systems in declared stage order against a single world.
// Stages run in the order they were added, systems within a stage in the
// order they were registered, and each stage's commands are flushed before
// the next stage starts.
type Scheduler[W any] struct {
	world    *W
	target   Despawner
	commands *Commands
	stages   []*stage[W]
}

// NewScheduler creates a new scheduler for the given world. If the world
// implements Despawner, queued despawn commands are applied to it.
func NewScheduler[W any](world *W) *Scheduler[W] {
	target, _ := any(world).(Despawner)
	return &Scheduler[W]{
		world:    world,
		target:   target,
		commands: newCommands(),
	}
}

// World returns the world the scheduler drives.
func (s *Scheduler[W]) World() *W {
	return s.world
}

// AddStage appends a stage. A nil timestep runs the stage once per frame;
// otherwise the stage runs once for every step that comes due.
func (s *Scheduler[W]) AddStage(name string, timestep *FixedTimestep) {
	if s.stage(name) != nil {
		panic("stage already exists: " + name)
	}
	s.stages = append(s.stages, &stage[W]{name: name, timestep: timestep})
}

func (s *Scheduler[W]) stage(name string) *stage[W] {
	for _, st := range s.stages {
		if st.name == name {
			return st
		}
	}
	return nil
}

// Register adds a system to the end of the named stage.
func (s *Scheduler[W]) Register(stageName string, system System[W]) {
	st := s.stage(stageName)
	if st == nil {
		panic("unknown stage: " + stageName)
	}

	st.systems = append(st.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	st.stats = append(st.stats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once advances every stage by dt seconds of frame time.
func (s *Scheduler[W]) Once(dt float64) {
	for _, st := range s.stages {
		runs, stepDt := 1, dt
		if st.timestep != nil {
			runs = st.timestep.Advance(dt)
			stepDt = st.timestep.Step
		}

		for range runs {
			s.runStage(st, stepDt)
		}
	}
}

func (s *Scheduler[W]) runStage(st *stage[W], dt float64) {
	frame := newUpdateFrame(dt, st.name, s.world, s.commands)

	for i, system := range st.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := st.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush(s.target)
}

// Run executes all stages repeatedly at the given interval until the context is cancelled.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler[W]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.stages),
	}

	var totalExecs int64
	for _, st := range s.stages {
		for _, internal := range st.stats {
			avgDuration := time.Duration(0)
			if internal.executionCount > 0 {
				avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			}

			minDuration := internal.minDuration
			if internal.executionCount == 0 {
				minDuration = 0
			}

			stats.Systems = append(stats.Systems, SystemStats{
				Name:           internal.name,
				Stage:          st.name,
				ExecutionCount: internal.executionCount,
				MinDuration:    minDuration,
				MaxDuration:    internal.maxDuration,
				AvgDuration:    avgDuration,
				LastDuration:   internal.lastDuration,
				TotalDuration:  internal.totalDuration,
			})
			totalExecs += internal.executionCount
		}
	}

	stats.SystemCount = len(stats.Systems)
	stats.TotalExecutions = totalExecs
	return stats
}

package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/snake/ecs"
)

type TestSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Execute(frame *ecs.UpdateFrame[testWorld]) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	scheduler := ecs.NewScheduler(newTestWorld())
	scheduler.AddStage("update", nil)
	scheduler.AddStage("fixed", ecs.NewFixedTimestep(1.0))

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.StageCount != 2 {
		t.Errorf("expected 2 stages, got %d", stats.StageCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &TestSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{sleepDur: 2 * time.Millisecond}
	idle := &TestSystem{}
	scheduler.Register("update", sys1)
	scheduler.Register("update", sys2)
	scheduler.Register("fixed", idle)

	stats = scheduler.GetStats()
	if stats.SystemCount != 3 {
		t.Errorf("expected 3 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[2].MinDuration != 0 {
		t.Errorf("expected zero min duration before first run, got %v", stats.Systems[2].MinDuration)
	}

	scheduler.Once(0.25)
	scheduler.Once(0.25)
	scheduler.Once(0.25)

	stats = scheduler.GetStats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	for _, sysStats := range stats.Systems[:2] {
		if sysStats.Name != "TestSystem" {
			t.Errorf("expected system name 'TestSystem', got '%s'", sysStats.Name)
		}

		if sysStats.Stage != "update" {
			t.Errorf("expected stage 'update', got '%s'", sysStats.Stage)
		}

		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}

		if sysStats.MinDuration == 0 || sysStats.MaxDuration == 0 || sysStats.AvgDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", sysStats)
		}

		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}

		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if stats.Systems[2].ExecutionCount != 0 {
		t.Errorf("fixed system should not have run yet, ran %d times", stats.Systems[2].ExecutionCount)
	}

	if sys1.executeCount != 3 || sys2.executeCount != 3 {
		t.Errorf("expected both systems to execute 3 times, got %d and %d", sys1.executeCount, sys2.executeCount)
	}
}

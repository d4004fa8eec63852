package ecs

// FixedTimestep gates a stage so it runs once per elapsed Step seconds,
// independent of the frame rate. Frame time accumulates; every whole step
// in the accumulator is one run, and the remainder carries to the next frame.
type FixedTimestep struct {
	Step        float64
	accumulator float64
}

// NewFixedTimestep creates a gate that fires every step seconds.
func NewFixedTimestep(step float64) *FixedTimestep {
	if step <= 0 {
		panic("fixed timestep must be positive")
	}
	return &FixedTimestep{Step: step}
}

// Advance adds dt to the accumulator and returns how many steps are due.
// When the host falls behind, several steps come due at once.
func (t *FixedTimestep) Advance(dt float64) int {
	if dt > 0 {
		t.accumulator += dt
	}

	runs := 0
	for t.accumulator >= t.Step {
		t.accumulator -= t.Step
		runs++
	}
	return runs
}

// Overstep returns the fraction of a step accumulated but not yet run.
func (t *FixedTimestep) Overstep() float64 {
	return t.accumulator / t.Step
}

// Reset discards accumulated time.
func (t *FixedTimestep) Reset() {
	t.accumulator = 0
}

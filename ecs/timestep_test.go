package ecs_test

import (
	"testing"

	"github.com/plus3/snake/ecs"
	"github.com/stretchr/testify/assert"
)

func TestFixedTimestep(t *testing.T) {
	t.Run("accumulates partial frames", func(t *testing.T) {
		ts := ecs.NewFixedTimestep(0.5)

		assert.Equal(t, 0, ts.Advance(0.25))
		assert.Equal(t, 0.5, ts.Overstep())
		assert.Equal(t, 1, ts.Advance(0.25))
		assert.Equal(t, 0.0, ts.Overstep())
	})

	t.Run("catches up when behind", func(t *testing.T) {
		ts := ecs.NewFixedTimestep(0.25)

		assert.Equal(t, 3, ts.Advance(0.875))
		assert.Equal(t, 0.5, ts.Overstep())
		assert.Equal(t, 1, ts.Advance(0.125))
	})

	t.Run("ignores negative dt", func(t *testing.T) {
		ts := ecs.NewFixedTimestep(0.5)

		assert.Equal(t, 0, ts.Advance(-1))
		assert.Equal(t, 0.0, ts.Overstep())
	})

	t.Run("reset drops remainder", func(t *testing.T) {
		ts := ecs.NewFixedTimestep(0.5)
		ts.Advance(0.25)
		ts.Reset()
		assert.Equal(t, 0, ts.Advance(0.25))
	})

	t.Run("rejects non-positive step", func(t *testing.T) {
		assert.Panics(t, func() { ecs.NewFixedTimestep(0) })
	})
}

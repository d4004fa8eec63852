package ecs

import "github.com/kamstrup/intmap"

// Despawner removes entities by id. The world handed to a Scheduler must
// implement it for Commands.Despawn to be usable.
type Despawner interface {
	Despawn(id EntityId)
}

// Commands provides a buffer for deferred operations that are applied at the end of a stage.
// This prevents structural changes to storage while systems are iterating it.
type Commands struct {
	despawns []EntityId
	defers   []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Despawn queues an entity removal.
func (c *Commands) Despawn(entity EntityId) {
	c.despawns = append(c.despawns, entity)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.despawns) + len(c.defers)
}

// Flush applies all queued operations to target, resetting the buffer state.
// Despawns run first, each id at most once, followed by deferred functions in
// the order they were queued.
func (c *Commands) Flush(target Despawner) {
	if len(c.despawns) > 0 {
		if target == nil {
			panic("commands: despawn queued without a despawn target")
		}

		seen := intmap.New[EntityId, struct{}](len(c.despawns))
		for _, id := range c.despawns {
			if _, dup := seen.Get(id); dup {
				continue
			}
			seen.Put(id, struct{}{})
			target.Despawn(id)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
}

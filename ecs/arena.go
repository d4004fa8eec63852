package ecs

import (
	"iter"
)

const (
	arenaBlockSize = 64
)

// Arena stores records of a single type in fixed-size blocks. Slots keep
// their index for the lifetime of the record, and freed slots are reused by
// later spawns, so an EntityId stays valid until its record is deleted.
type Arena[T any] struct {
	kind      Kind
	blocks    [][arenaBlockSize]T
	filled    [][arenaBlockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

// NewArena creates an empty arena whose ids carry the given kind.
func NewArena[T any](kind Kind) *Arena[T] {
	if kind == 0 {
		panic("arena kind 0 is reserved")
	}
	return &Arena[T]{kind: kind}
}

// Kind returns the kind encoded in every id this arena hands out.
func (a *Arena[T]) Kind() Kind {
	return a.kind
}

// Spawn stores item and returns its id.
func (a *Arena[T]) Spawn(item T) EntityId {
	var index int
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextIndex
		a.nextIndex++

		if index/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]T{})
			a.filled = append(a.filled, [arenaBlockSize]bool{})
		}
	}

	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize

	a.blocks[blockIdx][slotIdx] = item
	a.filled[blockIdx][slotIdx] = true
	a.count++
	return NewEntityId(a.kind, uint32(index))
}

func (a *Arena[T]) slot(id EntityId) (int, int, bool) {
	if id.Kind() != a.kind {
		return 0, 0, false
	}
	index := int(id.Index())
	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize
	if blockIdx >= len(a.blocks) {
		return 0, 0, false
	}
	return blockIdx, slotIdx, a.filled[blockIdx][slotIdx]
}

// Get returns a pointer to the record, or nil if the id is not live.
// The pointer stays valid until the record is deleted or the arena cleared.
func (a *Arena[T]) Get(id EntityId) *T {
	blockIdx, slotIdx, ok := a.slot(id)
	if !ok {
		return nil
	}
	return &a.blocks[blockIdx][slotIdx]
}

// Has reports whether id names a live record in this arena.
func (a *Arena[T]) Has(id EntityId) bool {
	_, _, ok := a.slot(id)
	return ok
}

// Delete frees the record's slot. Deleting a dead or foreign id is a no-op.
func (a *Arena[T]) Delete(id EntityId) bool {
	blockIdx, slotIdx, ok := a.slot(id)
	if !ok {
		return false
	}

	a.filled[blockIdx][slotIdx] = false
	var zero T
	a.blocks[blockIdx][slotIdx] = zero
	a.freeSlots = append(a.freeSlots, int(id.Index()))
	a.count--
	return true
}

// Len returns the number of live records.
func (a *Arena[T]) Len() int {
	return a.count
}

// Clear drops every record. Ids handed out before Clear are no longer live.
func (a *Arena[T]) Clear() {
	a.blocks = nil
	a.filled = nil
	a.freeSlots = nil
	a.nextIndex = 0
	a.count = 0
}

// Iter yields live records in slot order.
func (a *Arena[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < a.nextIndex; i++ {
			blockIdx := i / arenaBlockSize
			slotIdx := i % arenaBlockSize

			if blockIdx >= len(a.filled) {
				return
			}

			if a.filled[blockIdx][slotIdx] {
				if !yield(NewEntityId(a.kind, uint32(i)), &a.blocks[blockIdx][slotIdx]) {
					return
				}
			}
		}
	}
}

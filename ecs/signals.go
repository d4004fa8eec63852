package ecs

// Signals is a queue of events raised by one system and consumed by a later
// system in the same stage. Consumers drain it; nothing is carried across
// frames unless the consumer leaves it pending.
type Signals[T any] struct {
	pending []T
}

// Send queues an event.
func (s *Signals[T]) Send(event T) {
	s.pending = append(s.pending, event)
}

// Len returns the number of pending events.
func (s *Signals[T]) Len() int {
	return len(s.pending)
}

// Any reports whether at least one event is pending.
func (s *Signals[T]) Any() bool {
	return len(s.pending) > 0
}

// Drain returns the pending events and empties the queue. The returned slice
// is only valid until the next Send.
func (s *Signals[T]) Drain() []T {
	events := s.pending
	s.pending = s.pending[:0]
	return events
}

// Clear discards pending events.
func (s *Signals[T]) Clear() {
	clear(s.pending)
	s.pending = s.pending[:0]
}

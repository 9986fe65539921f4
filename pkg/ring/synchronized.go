package ring

import (
	"sync"
)

// synchronizedRing wraps a Ring with an exclusive lock held for the duration
// of each operation. This is the recommended way to share a ring between
// concurrent producers and consumers: it trades throughput for simplicity and
// keeps the full operation set available, including PushFront and SetLast.
type synchronizedRing[T any] struct {
	mu    sync.Mutex
	inner Ring[T]
}

// NewSynchronized wraps an existing ring for concurrent use. The wrapped ring
// must not be used directly afterwards.
func NewSynchronized[T any](inner Ring[T]) Ring[T] {
	return &synchronizedRing[T]{inner: inner}
}

func (s *synchronizedRing[T]) Push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Push(v)
}

func (s *synchronizedRing[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pop()
}

func (s *synchronizedRing[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Peek()
}

func (s *synchronizedRing[T]) PushFront(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.PushFront(v)
}

func (s *synchronizedRing[T]) SetLast(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetLast(v)
}

func (s *synchronizedRing[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

func (s *synchronizedRing[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

func (s *synchronizedRing[T]) Capacity() int {
	// Capacity is immutable, but the inner ring is never exposed, so take
	// the lock for uniformity.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Capacity()
}

func (s *synchronizedRing[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsEmpty()
}

func (s *synchronizedRing[T]) IsFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsFull()
}

func (s *synchronizedRing[T]) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Mode()
}

func (s *synchronizedRing[T]) Stats() *Statistics {
	// Statistics use atomics internally and are safe to hand out.
	return s.inner.Stats()
}

func (s *synchronizedRing[T]) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Dump()
}

package ring

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c360/ringkit/errors"
)

// ringBuffer is the single-owner circular buffer behind the Ring interface.
//
// head indexes the next slot a Push writes; tail indexes the next slot a Pop
// reads. head == tail means empty, so of the N allocated slots at most N-1
// hold live elements. Occupancy is derived from the indexes; no operation
// ever inspects slot values to decide emptiness.
type ringBuffer[T any] struct {
	id    string
	slots []T
	head  int
	tail  int
	mode  Mode
	stats *Statistics // ALWAYS initialized for observability
	mx    *ringMetrics
	opts  *ringOptions[T]
}

// newRingBuffer creates a new ring instance.
// Returns an error if construction options are invalid or metrics
// registration fails when requested.
func newRingBuffer[T any](capacity int, opts *ringOptions[T]) (*ringBuffer[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Ring", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	mode := Value
	if opts.objectMode {
		if opts.factory == nil {
			return nil, errors.WrapInvalid(errors.ErrNilFactory, "Ring", "New", "validate factory")
		}
		mode = Object
	}

	var mx *ringMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		mx, err = newRingMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "ring", "newRingBuffer", "metrics registration")
		}
	}

	r := &ringBuffer[T]{
		id:    uuid.NewString(),
		slots: make([]T, capacity),
		mode:  mode,
		stats: NewStatistics(),
		mx:    mx,
		opts:  opts,
	}

	if mode == Object {
		for i := range r.slots {
			inst := opts.factory()
			if _, ok := any(inst).(Resettable); !ok {
				return nil, errors.WrapInvalid(errors.ErrNotResettable, "Ring", "New",
					fmt.Sprintf("factory produced %T", inst))
			}
			r.slots[i] = inst
		}
	}

	return r, nil
}

// advance returns the slot index after i, wrapping to 0 past the last slot.
func (r *ringBuffer[T]) advance(i int) int {
	i++
	if i == len(r.slots) {
		return 0
	}
	return i
}

// retreat returns the slot index before i, wrapping to the last slot below 0.
func (r *ringBuffer[T]) retreat(i int) int {
	if i == 0 {
		return len(r.slots) - 1
	}
	return i - 1
}

// Push inserts an element at the head, evicting the oldest element first when
// the ring is at usable capacity. It never fails.
func (r *ringBuffer[T]) Push(v T) {
	next := r.advance(r.head)

	if r.Len() == len(r.slots)-1 {
		// One free slot left: writing it without evicting would make
		// head == tail, which reads as empty. Advance the tail first.
		evicted := r.slots[r.tail]
		r.tail = r.advance(r.tail)

		r.stats.Eviction()
		if r.mx != nil {
			r.mx.recordEviction()
		}
		if r.opts.logger != nil {
			r.opts.logger.Debug("ring evicted oldest element",
				"ring_id", r.id, "capacity", len(r.slots), "head", r.head, "tail", r.tail)
		}
		if r.opts.evictCallback != nil {
			r.opts.evictCallback(evicted)
		}
	}

	r.slots[r.head] = v
	r.head = next

	r.stats.Push()
	r.stats.UpdateOccupancy(int64(r.Len()))
	if r.mx != nil {
		r.mx.recordPush(r.Len(), r.usable())
	}
}

// Pop removes and returns the oldest element. Returns the zero value and
// false when empty, without mutating state.
func (r *ringBuffer[T]) Pop() (T, bool) {
	var zero T

	if r.head == r.tail {
		return zero, false
	}

	v := r.slots[r.tail]
	if r.mode == Value {
		// Defensive clear: keeps Dump honest and releases references.
		// Correctness never depends on it.
		r.slots[r.tail] = zero
	}
	r.tail = r.advance(r.tail)

	r.stats.Pop()
	r.stats.UpdateOccupancy(int64(r.Len()))
	if r.mx != nil {
		r.mx.recordPop(r.Len(), r.usable())
	}

	return v, true
}

// Peek returns the oldest element without removing it.
func (r *ringBuffer[T]) Peek() (T, bool) {
	var zero T

	if r.head == r.tail {
		return zero, false
	}

	r.stats.Peek()
	if r.mx != nil {
		r.mx.recordPeek()
	}

	return r.slots[r.tail], true
}

// PushFront reinserts an element in front of the oldest one. Intended for
// returning a just-popped element that could not be processed, preserving
// FIFO order. Returns false when the ring has no room.
func (r *ringBuffer[T]) PushFront(v T) bool {
	candidate := r.retreat(r.tail)

	if candidate == r.head {
		// The slot before the tail is the write position: occupying it
		// would read as empty on the next Push cycle.
		r.stats.Rejection()
		if r.mx != nil {
			r.mx.recordRejection()
		}
		if r.opts.logger != nil {
			r.opts.logger.Debug("ring rejected front reinsertion",
				"ring_id", r.id, "capacity", len(r.slots), "head", r.head, "tail", r.tail)
		}
		return false
	}

	r.slots[candidate] = v
	r.tail = candidate

	r.stats.Reinsert()
	r.stats.UpdateOccupancy(int64(r.Len()))
	if r.mx != nil {
		r.mx.recordReinsert(r.Len(), r.usable())
	}

	return true
}

// SetLast overwrites the most recently pushed element in place. Occupancy and
// indexes are unchanged. Returns false when the ring is empty.
func (r *ringBuffer[T]) SetLast(v T) bool {
	if r.head == r.tail {
		return false
	}

	r.slots[r.retreat(r.head)] = v

	r.stats.Mutation()
	if r.mx != nil {
		r.mx.recordMutation()
	}

	return true
}

// Clear resets the ring to empty without reallocation.
func (r *ringBuffer[T]) Clear() {
	if r.mode == Object {
		for i := range r.slots {
			if inst, ok := any(r.slots[i]).(Resettable); ok {
				inst.Reset()
			}
		}
	} else {
		var zero T
		for i := range r.slots {
			r.slots[i] = zero
		}
	}

	r.head = 0
	r.tail = 0

	r.stats.Clear()
	r.stats.UpdateOccupancy(0)
	if r.mx != nil {
		r.mx.updateOccupancy(0, r.usable())
	}
}

// Len returns the current number of live elements.
func (r *ringBuffer[T]) Len() int {
	n := len(r.slots)
	return (r.head - r.tail + n) % n
}

// Capacity returns the total slot count.
func (r *ringBuffer[T]) Capacity() int {
	return len(r.slots)
}

// usable returns the maximum number of live elements the ring can hold.
func (r *ringBuffer[T]) usable() int {
	return len(r.slots) - 1
}

// IsEmpty returns true if the ring holds no elements.
func (r *ringBuffer[T]) IsEmpty() bool {
	return r.head == r.tail
}

// IsFull returns true if the next Push will evict.
func (r *ringBuffer[T]) IsFull() bool {
	return r.Len() == r.usable()
}

// Mode returns the storage mode.
func (r *ringBuffer[T]) Mode() Mode {
	return r.mode
}

// Stats returns ring statistics (always available for observability).
func (r *ringBuffer[T]) Stats() *Statistics {
	return r.stats
}

// Dump returns a human-readable snapshot for diagnostics.
func (r *ringBuffer[T]) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ring id=%s mode=%s capacity=%d occupancy=%d head=%d tail=%d\n",
		r.id, r.mode, len(r.slots), r.Len(), r.head, r.tail)
	for i := range r.slots {
		marker := " "
		switch {
		case i == r.head && i == r.tail:
			marker = "*" // head and tail coincide: ring is empty
		case i == r.head:
			marker = "h"
		case i == r.tail:
			marker = "t"
		}
		fmt.Fprintf(&b, "%s[%d] %v\n", marker, i, r.slots[i])
	}
	return b.String()
}

// Package ring provides a generic, fixed-capacity circular buffer with
// drop-oldest eviction, undo-style front reinsertion, and in-place mutation
// of the newest element.
//
// The core ring is single-owner and unsynchronized; wrap it with
// NewSynchronized for concurrent use. Statistics are always collected for
// observability, and Prometheus metrics can be enabled via WithMetrics().
package ring

// Ring represents a fixed-capacity circular buffer holding up to Capacity()-1
// live elements. One slot is always kept open so that an empty ring
// (head == tail) is distinguishable from a full one.
type Ring[T any] interface {
	// Push inserts an element at the head. It never fails: when the ring is
	// at usable capacity the oldest element is silently evicted first.
	Push(v T)

	// Pop removes and returns the oldest element.
	// Returns the zero value and false if the ring is empty.
	Pop() (T, bool)

	// Peek returns the oldest element without removing it.
	// Returns the zero value and false if the ring is empty.
	Peek() (T, bool)

	// PushFront reinserts an element in front of the oldest one, undoing a
	// Pop. Returns false and discards the value when the slot before the
	// tail would collide with the write position.
	PushFront(v T) bool

	// SetLast overwrites the most recently pushed element in place without
	// changing occupancy. Returns false if the ring is empty.
	SetLast(v T) bool

	// Clear resets the ring to empty without reallocation. Value-mode slots
	// are zeroed; object-mode slot instances have Reset called on them.
	Clear()

	// Len returns the current number of live elements, in [0, Capacity()-1].
	Len() int

	// Capacity returns the total slot count N. At most N-1 elements are live
	// at any time.
	Capacity() int

	// IsEmpty returns true if the ring holds no elements.
	IsEmpty() bool

	// IsFull returns true if the ring is at usable capacity (Capacity()-1),
	// meaning the next Push will evict the oldest element.
	IsFull() bool

	// Mode returns the storage mode the ring was constructed with.
	Mode() Mode

	// Stats returns ring statistics (always available for observability).
	Stats() *Statistics

	// Dump returns a human-readable snapshot of occupancy, head, tail, and
	// raw slot contents. Diagnostic only: slot values are shown as stored,
	// so a zero value is indistinguishable from a vacated slot.
	Dump() string
}

// Resettable is the capability object-mode element types must provide.
// Reset returns an instance to its empty/default state for reuse without
// reallocation.
type Resettable interface {
	Reset()
}

// Mode selects how slots are initialized and cleared.
type Mode int

const (
	// Value mode zero-initializes slots and suits plain data. The zero value
	// is only a fill; emptiness is always decided by index comparison.
	Value Mode = iota

	// Object mode pre-fills every slot with a caller-factory instance that
	// must implement Resettable. Clear resets instances instead of
	// discarding them.
	Object
)

// String returns a human-readable representation of the storage mode.
func (m Mode) String() string {
	switch m {
	case Value:
		return "Value"
	case Object:
		return "Object"
	default:
		return "Unknown"
	}
}

// EvictCallback is called with each element discarded by Push eviction.
type EvictCallback[T any] func(evicted T)

// New creates a ring with the specified capacity and options.
// Stats are always collected; metrics are optional via WithMetrics().
// Returns a classified invalid error if capacity is not positive, if object
// mode is selected with a nil factory, or if factory output does not
// implement Resettable.
func New[T any](capacity int, options ...Option[T]) (Ring[T], error) {
	opts := applyOptions(options...)
	return newRingBuffer(capacity, opts)
}

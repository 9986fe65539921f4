// Package ring provides generic, fixed-capacity circular buffers with
// drop-oldest eviction, built-in statistics tracking, and optional Prometheus
// metrics integration.
//
// # Overview
//
// A ring is a preallocated array of N slots addressed by two indexes: head,
// where the next Push writes, and tail, where the next Pop reads. Both wrap
// modulo N. The ring is empty exactly when head == tail, which means one slot
// is always kept open: a ring of capacity N holds at most N-1 live elements.
// In exchange, emptiness is decided purely by index comparison — slot values
// are never inspected, so a stored zero is a real element like any other.
//
// # Quick Start
//
// Basic ring creation:
//
//	r, err := ring.New[int](1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r.Push(42)            // never fails; evicts the oldest at capacity
//	v, ok := r.Pop()      // ok is false when empty
//	v, ok = r.Peek()      // non-mutating
//
// With eviction callback and metrics:
//
//	r, err := ring.New[[]byte](4096,
//	    ring.WithEvictCallback[[]byte](func(dropped []byte) {
//	        log.Printf("dropped %d bytes", len(dropped))
//	    }),
//	    ring.WithMetrics[[]byte](registry, "udp_input"),
//	)
//
// # Operation Set
//
//   - Push: insert at head. At usable capacity (N-1 elements) the oldest
//     element is evicted first — a drop-oldest overwrite policy, never an
//     error. Eviction is silent unless WithEvictCallback is set.
//   - Pop: remove the oldest element. Returns (zero, false) when empty.
//   - Peek: read the oldest element without removing it.
//   - PushFront: undo a Pop by reinserting in front of the oldest element.
//     Returns false when the slot before the tail would collide with the
//     write position.
//   - SetLast: overwrite the most recently pushed element in place, leaving
//     occupancy untouched. Returns false when empty.
//   - Clear: bulk reset to empty without reallocation. Idempotent.
//   - Len / Capacity / IsEmpty / IsFull: occupancy queries. IsFull means the
//     next Push will evict.
//   - Dump: diagnostic snapshot of indexes and raw slot contents.
//
// # Storage Modes
//
// Value mode (default) zero-initializes slots. Pop defensively zeroes the
// vacated slot; this keeps Dump output honest and releases references for
// the garbage collector, but correctness never depends on it.
//
// Object mode is selected with WithFactory: every slot is pre-filled with an
// instance from the caller's factory, and those instances must implement
// Resettable. Clear calls Reset on each slot instead of discarding it, so a
// long-lived ring reuses its element allocations indefinitely. The ring never
// constructs or destroys instances after New — it only resets and overwrites
// them.
//
// # Observability
//
// Statistics are always collected via atomic counters and available through
// Stats(): pushes, pops, peeks, evictions, rejections, reinserts, mutations,
// clears, plus occupancy extremes and derived rates. Prometheus metrics are
// optional via WithMetrics(registry, prefix) and registered under the
// ringkit_ring namespace with a component label. Debug-level logging of
// eviction and rejection events can be enabled with WithLogger.
//
// # Concurrency
//
// The core ring is single-owner: operations do not lock, block, retry, or
// time out, and every operation is O(1) with no allocation after New. For
// concurrent producers and consumers, wrap the ring:
//
//	shared := ring.NewSynchronized(r)
//
// The wrapper holds an exclusive lock per operation. Statistics remain safe
// to read from any goroutine in both arrangements.
//
// # Performance Characteristics
//
//   - Push, Pop, Peek, PushFront, SetLast: O(1)
//   - Clear: O(N)
//   - Memory: capacity * sizeof(T), allocated once at construction
package ring

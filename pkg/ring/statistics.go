package ring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks ring performance metrics.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes     int64
	pops       int64
	peeks      int64
	evictions  int64
	rejections int64
	reinserts  int64
	mutations  int64
	clears     int64

	// Protected by mutex
	mu           sync.RWMutex
	startTime    time.Time
	occupancy    int64
	maxOccupancy int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records an insertion at the head.
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Pop records a removal at the tail.
func (s *Statistics) Pop() {
	atomic.AddInt64(&s.pops, 1)
}

// Peek records a non-mutating tail read.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Eviction records an oldest-element drop caused by a Push at capacity.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// Rejection records a PushFront refused for lack of room.
func (s *Statistics) Rejection() {
	atomic.AddInt64(&s.rejections, 1)
}

// Reinsert records an accepted PushFront.
func (s *Statistics) Reinsert() {
	atomic.AddInt64(&s.reinserts, 1)
}

// Mutation records an applied SetLast.
func (s *Statistics) Mutation() {
	atomic.AddInt64(&s.mutations, 1)
}

// Clear records a bulk reset.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// UpdateOccupancy updates the current element count.
func (s *Statistics) UpdateOccupancy(occupancy int64) {
	s.mu.Lock()
	s.occupancy = occupancy
	if occupancy > s.maxOccupancy {
		s.maxOccupancy = occupancy
	}
	s.mu.Unlock()
}

// Pushes returns the total number of Push operations.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of successful Pop operations.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Peeks returns the total number of successful Peek operations.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Evictions returns the total number of elements dropped by Push at capacity.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Rejections returns the total number of refused PushFront operations.
func (s *Statistics) Rejections() int64 {
	return atomic.LoadInt64(&s.rejections)
}

// Reinserts returns the total number of accepted PushFront operations.
func (s *Statistics) Reinserts() int64 {
	return atomic.LoadInt64(&s.reinserts)
}

// Mutations returns the total number of applied SetLast operations.
func (s *Statistics) Mutations() int64 {
	return atomic.LoadInt64(&s.mutations)
}

// Clears returns the total number of Clear operations.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// Occupancy returns the current number of live elements.
func (s *Statistics) Occupancy() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.occupancy
}

// MaxOccupancy returns the highest element count the ring has held.
func (s *Statistics) MaxOccupancy() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxOccupancy
}

// Throughput returns the average number of pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// EvictionRate returns the fraction of pushes that evicted an element (0.0 to 1.0).
func (s *Statistics) EvictionRate() float64 {
	pushes := s.Pushes()
	if pushes == 0 {
		return 0.0
	}

	return float64(s.Evictions()) / float64(pushes)
}

// Utilization returns current occupancy relative to usable capacity (0.0 to 1.0).
func (s *Statistics) Utilization(usable int64) float64 {
	if usable == 0 {
		return 0.0
	}

	return float64(s.Occupancy()) / float64(usable)
}

// Uptime returns how long the ring has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.rejections, 0)
	atomic.StoreInt64(&s.reinserts, 0)
	atomic.StoreInt64(&s.mutations, 0)
	atomic.StoreInt64(&s.clears, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.occupancy = 0
	s.maxOccupancy = 0
	s.mu.Unlock()
}

// Summary is a snapshot of all statistics.
type Summary struct {
	Pushes       int64         `json:"pushes"`
	Pops         int64         `json:"pops"`
	Peeks        int64         `json:"peeks"`
	Evictions    int64         `json:"evictions"`
	Rejections   int64         `json:"rejections"`
	Reinserts    int64         `json:"reinserts"`
	Mutations    int64         `json:"mutations"`
	Clears       int64         `json:"clears"`
	Occupancy    int64         `json:"occupancy"`
	MaxOccupancy int64         `json:"max_occupancy"`
	Throughput   float64       `json:"throughput"`
	EvictionRate float64       `json:"eviction_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Snapshot returns a point-in-time view of all statistics.
func (s *Statistics) Snapshot() Summary {
	return Summary{
		Pushes:       s.Pushes(),
		Pops:         s.Pops(),
		Peeks:        s.Peeks(),
		Evictions:    s.Evictions(),
		Rejections:   s.Rejections(),
		Reinserts:    s.Reinserts(),
		Mutations:    s.Mutations(),
		Clears:       s.Clears(),
		Occupancy:    s.Occupancy(),
		MaxOccupancy: s.MaxOccupancy(),
		Throughput:   s.Throughput(),
		EvictionRate: s.EvictionRate(),
		Uptime:       s.Uptime(),
	}
}

package ring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/metric"
)

// ringMetrics holds Prometheus metrics for ring operations.
type ringMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes     prometheus.Counter
	pops       prometheus.Counter
	peeks      prometheus.Counter
	evictions  prometheus.Counter
	rejections prometheus.Counter
	reinserts  prometheus.Counter
	mutations  prometheus.Counter

	// Gauge metrics - updated on operations
	occupancy   prometheus.Gauge
	utilization prometheus.Gauge
}

func newRingCounter(prefix, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "ringkit",
		Subsystem:   "ring",
		Name:        name,
		ConstLabels: prometheus.Labels{"component": prefix},
		Help:        help,
	})
}

// newRingMetrics creates and registers ring metrics with the provided registry.
func newRingMetrics(registry *metric.Registry, prefix string) (*ringMetrics, error) {
	m := &ringMetrics{
		pushes:     newRingCounter(prefix, "pushes_total", "Total number of ring push operations"),
		pops:       newRingCounter(prefix, "pops_total", "Total number of ring pop operations"),
		peeks:      newRingCounter(prefix, "peeks_total", "Total number of ring peek operations"),
		evictions:  newRingCounter(prefix, "evictions_total", "Total number of oldest elements evicted by pushes at capacity"),
		rejections: newRingCounter(prefix, "rejections_total", "Total number of front reinsertions refused for lack of room"),
		reinserts:  newRingCounter(prefix, "reinserts_total", "Total number of accepted front reinsertions"),
		mutations:  newRingCounter(prefix, "mutations_total", "Total number of in-place overwrites of the newest element"),
		occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "occupancy",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of live elements in the ring",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Ring occupancy relative to usable capacity (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "ring_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_rejections", m.rejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_reinserts", m.reinserts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_mutations", m.mutations); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_occupancy", m.occupancy); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates occupancy/utilization.
func (m *ringMetrics) recordPush(occupancy, usable int) {
	m.pushes.Inc()
	m.updateOccupancy(occupancy, usable)
}

// recordPop increments the pop counter and updates occupancy/utilization.
func (m *ringMetrics) recordPop(occupancy, usable int) {
	m.pops.Inc()
	m.updateOccupancy(occupancy, usable)
}

// recordPeek increments the peek counter.
func (m *ringMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordEviction increments the eviction counter.
func (m *ringMetrics) recordEviction() {
	m.evictions.Inc()
}

// recordRejection increments the rejection counter.
func (m *ringMetrics) recordRejection() {
	m.rejections.Inc()
}

// recordReinsert increments the reinsert counter and updates occupancy/utilization.
func (m *ringMetrics) recordReinsert(occupancy, usable int) {
	m.reinserts.Inc()
	m.updateOccupancy(occupancy, usable)
}

// recordMutation increments the mutation counter.
func (m *ringMetrics) recordMutation() {
	m.mutations.Inc()
}

// updateOccupancy sets the current occupancy and utilization.
func (m *ringMetrics) updateOccupancy(occupancy, usable int) {
	m.occupancy.Set(float64(occupancy))
	if usable > 0 {
		m.utilization.Set(float64(occupancy) / float64(usable))
	}
}

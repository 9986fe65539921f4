package ring

import (
	"log/slog"

	"github.com/c360/ringkit/metric"
)

// Option configures ring behavior using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// ringOptions holds internal configuration for ring instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type ringOptions[T any] struct {
	// objectMode is set by WithFactory; the factory pre-fills every slot
	objectMode bool
	factory    func() T

	evictCallback EvictCallback[T]

	// metricsReg is optional - if provided, ring stats are also exposed as Prometheus metrics
	metricsReg *metric.Registry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string

	// logger is optional - eviction and rejection events at debug level
	logger *slog.Logger
}

// WithFactory selects object mode: every slot is pre-filled with a fresh
// instance from the factory at construction, and Clear resets instances
// instead of discarding them. Factory output must implement Resettable.
func WithFactory[T any](factory func() T) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.objectMode = true
		opts.factory = factory
	}
}

// WithEvictCallback sets a callback invoked with each element discarded by
// Push eviction. Without it, eviction stays silent. Under a synchronized
// wrapper the callback runs while the ring lock is held and must not call
// back into the same ring.
func WithEvictCallback[T any](callback EvictCallback[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.evictCallback = callback
	}
}

// WithMetrics enables Prometheus metrics export for ring statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, prefix string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithLogger enables debug logging of eviction and rejection events.
// If logger is nil, this option is ignored.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.logger = logger
	}
}

// applyOptions applies functional options to create final ring configuration.
// This is an internal helper used by ring constructors.
func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}

// Package metric provides Prometheus-based metrics collection and HTTP
// exposition for RingKit.
//
// # Overview
//
// The package wraps a private prometheus.Registry with duplicate-registration
// detection keyed by component and metric name, so independent ring instances
// can register their own metrics without colliding or panicking. Go runtime
// and process collectors are registered automatically.
//
// # Quick Start
//
//	registry := metric.NewRegistry()
//
//	buf, err := ring.New[int](1024,
//	    ring.WithMetrics[int](registry, "ingest"),
//	)
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	go server.Start()
//	defer server.Stop()
//
// # Registration
//
// Metrics are registered under a "component.metric" key. Registering the same
// key twice returns a classified Invalid error wrapping ErrAlreadyRegistered
// rather than panicking, which lets callers treat duplicate wiring as a
// configuration mistake.
//
// # Thread Safety
//
// Registry and Server are safe for concurrent use.
package metric

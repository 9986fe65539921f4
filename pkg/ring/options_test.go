package ring

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rkerrors "github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
)

// frame is a reusable object-mode element.
type frame struct {
	Seq     int
	Payload []byte
}

func (f *frame) Reset() {
	f.Seq = 0
	f.Payload = f.Payload[:0]
}

func TestObjectModePrefillsSlots(t *testing.T) {
	made := 0
	r, err := New[*frame](4, WithFactory[*frame](func() *frame {
		made++
		return &frame{}
	}))
	require.NoError(t, err)

	assert.Equal(t, Object, r.Mode())
	assert.Equal(t, 4, made, "every slot is pre-filled at construction")
	assert.Equal(t, 0, r.Len(), "pre-filled slots are not live elements")
	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestObjectModeClearResetsInstances(t *testing.T) {
	r, err := New[*frame](3, WithFactory[*frame](func() *frame {
		return &frame{}
	}))
	require.NoError(t, err)

	a := &frame{Seq: 1, Payload: []byte("aa")}
	b := &frame{Seq: 2, Payload: []byte("bb")}
	r.Push(a)
	r.Push(b)

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, a.Seq, "Clear must reset instances in place")
	assert.Equal(t, 0, b.Seq)
	assert.Empty(t, a.Payload)
	assert.Empty(t, b.Payload)
}

func TestObjectModeNilFactory(t *testing.T) {
	r, err := New[*frame](3, WithFactory[*frame](nil))
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, rkerrors.ErrNilFactory))
	assert.True(t, rkerrors.IsInvalid(err))
}

func TestObjectModeRequiresResettable(t *testing.T) {
	r, err := New[int](3, WithFactory[int](func() int { return 0 }))
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, rkerrors.ErrNotResettable))
	assert.True(t, rkerrors.IsInvalid(err))
}

func TestObjectModePopLeavesInstanceInPlace(t *testing.T) {
	r, err := New[*frame](3, WithFactory[*frame](func() *frame {
		return &frame{}
	}))
	require.NoError(t, err)

	f := &frame{Seq: 7}
	r.Push(f)

	got, ok := r.Pop()
	require.True(t, ok)
	assert.Same(t, f, got)

	// The vacated slot still holds the instance for later reuse; Dump shows it.
	assert.Contains(t, r.Dump(), "mode=Object")
}

func TestWithMetricsExportsRingMetrics(t *testing.T) {
	registry := metric.NewRegistry()

	r, err := New[int](4, WithMetrics[int](registry, "ingest"))
	require.NoError(t, err)

	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Push(4) // eviction
	_, _ = r.Pop()
	_, _ = r.Peek()
	r.PushFront(0)
	r.SetLast(5)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "ringkit_ring_") {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}

	assert.Equal(t, float64(4), values["ringkit_ring_pushes_total"])
	assert.Equal(t, float64(1), values["ringkit_ring_pops_total"])
	assert.Equal(t, float64(1), values["ringkit_ring_peeks_total"])
	assert.Equal(t, float64(1), values["ringkit_ring_evictions_total"])
	assert.Equal(t, float64(1), values["ringkit_ring_reinserts_total"])
	assert.Equal(t, float64(1), values["ringkit_ring_mutations_total"])
	assert.Equal(t, float64(r.Len()), values["ringkit_ring_occupancy"])
}

func TestWithMetricsDuplicatePrefixFailsConstruction(t *testing.T) {
	registry := metric.NewRegistry()

	_, err := New[int](4, WithMetrics[int](registry, "shared"))
	require.NoError(t, err)

	r, err := New[int](4, WithMetrics[int](registry, "shared"))
	require.Error(t, err, "two rings cannot share a metrics prefix on one registry")
	assert.Nil(t, r)
}

func TestWithMetricsIgnoredWhenIncomplete(t *testing.T) {
	registry := metric.NewRegistry()

	r, err := New[int](4, WithMetrics[int](nil, "ingest"))
	require.NoError(t, err)
	r.Push(1)

	r, err = New[int](4, WithMetrics[int](registry, ""))
	require.NoError(t, err)
	r.Push(1)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.False(t, strings.HasPrefix(mf.GetName(), "ringkit_ring_"),
			"incomplete metrics options must not register ring metrics")
	}
}

func TestNilOptionIsIgnored(t *testing.T) {
	r, err := New[int](4, nil, WithEvictCallback[int](nil))
	require.NoError(t, err)
	r.Push(1)
	r.Push(2)

	got, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizedPreservesSemantics(t *testing.T) {
	inner, err := New[int](4)
	require.NoError(t, err)
	r := NewSynchronized(inner)

	assert.Equal(t, 4, r.Capacity())
	assert.Equal(t, Value, r.Mode())
	assert.True(t, r.IsEmpty())

	r.Push(1)
	r.Push(2)
	r.Push(3)
	assert.True(t, r.IsFull())

	r.Push(4) // evicts 1
	got, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, got)

	require.True(t, r.PushFront(got))
	front, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, front)

	require.True(t, r.SetLast(44))

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.NotNil(t, r.Stats())
	assert.Contains(t, r.Dump(), "occupancy=0")
}

func TestSynchronizedConcurrentProducersConsumers(t *testing.T) {
	inner, err := New[int](1001)
	require.NoError(t, err)
	r := NewSynchronized(inner)

	var wg sync.WaitGroup
	numWorkers := 8
	itemsPerWorker := 100

	// Writers
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < itemsPerWorker; i++ {
				r.Push(worker*itemsPerWorker + i)
			}
		}(w)
	}

	// Readers
	wg.Add(numWorkers)
	readCount := 0
	var readMutex sync.Mutex
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < itemsPerWorker; i++ {
				if _, ok := r.Pop(); ok {
					readMutex.Lock()
					readCount++
					readMutex.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	// The ring is large enough that nothing was evicted, so every pushed
	// element was either read or is still buffered.
	totalWritten := numWorkers * itemsPerWorker
	assert.Equal(t, totalWritten, readCount+r.Len())
	assert.Zero(t, r.Stats().Evictions())
}

func TestSynchronizedConcurrentMixedOperations(t *testing.T) {
	inner, err := New[int](64)
	require.NoError(t, err)
	r := NewSynchronized(inner)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch (seed + i) % 5 {
				case 0:
					r.Push(i)
				case 1:
					_, _ = r.Pop()
				case 2:
					_, _ = r.Peek()
				case 3:
					r.PushFront(i)
				case 4:
					r.SetLast(i)
				}
			}
		}(w)
	}
	wg.Wait()

	// Invariant: occupancy stays within bounds whatever the interleaving.
	occupancy := r.Len()
	assert.GreaterOrEqual(t, occupancy, 0)
	assert.LessOrEqual(t, occupancy, r.Capacity()-1)
}

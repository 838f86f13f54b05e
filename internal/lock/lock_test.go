package lock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerMutualExclusion(t *testing.T) {
	l := NewLocal()
	var held, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "owner-1")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			held++
			if held > max {
				max = held
			}
			mu.Unlock()

			mu.Lock()
			held--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max, "only one holder per key at a time")
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocal()

	releaseA, err := l.Acquire(context.Background(), "owner-a")
	require.NoError(t, err)
	defer releaseA()

	// A held lock on another key must not block this one.
	releaseB, err := l.Acquire(context.Background(), "owner-b")
	require.NoError(t, err)
	releaseB()
}

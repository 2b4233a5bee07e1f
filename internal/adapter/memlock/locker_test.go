package memlock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLockExcludesSameKey(t *testing.T) {
	l := New()

	release, ok, err := l.TryLock(t.Context(), "a", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = l.TryLock(t.Context(), "a", time.Minute)
	assert.False(t, ok)

	other, ok, _ := l.TryLock(t.Context(), "b", time.Minute)
	assert.True(t, ok)
	other()

	release()
	release() // second call is a no-op
	again, ok, _ := l.TryLock(t.Context(), "a", time.Minute)
	assert.True(t, ok)
	again()
}

func TestTryLockConcurrentHolders(t *testing.T) {
	l := New()
	var (
		wg      sync.WaitGroup
		holders atomic.Int32
		maxSeen atomic.Int32
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, ok, _ := l.TryLock(t.Context(), "k", time.Minute)
			if !ok {
				return
			}
			n := holders.Add(1)
			for {
				m := maxSeen.Load()
				if n <= m || maxSeen.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			holders.Add(-1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxSeen.Load())
}

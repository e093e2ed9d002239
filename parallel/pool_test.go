package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsEveryJob(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		pool := Start(workers)
		assert.Equal(t, workers, pool.Workers())

		var done atomic.Int64
		for range 100 {
			pool.Do(func() { done.Add(1) })
		}
		pool.Wait()

		assert.Equal(t, int64(100), done.Load(), "workers=%d", workers)
	}
}

func TestPoolDefaultsToGOMAXPROCS(t *testing.T) {
	pool := Start(0)
	defer pool.Wait()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.Workers())
}

func TestPoolSingleWorkerRunsInline(t *testing.T) {
	pool := Start(1)

	ran := false
	pool.Do(func() { ran = true })
	assert.True(t, ran)

	pool.Wait()
	pool.Wait()
}

func TestPoolWaitIsIdempotent(t *testing.T) {
	pool := Start(4)
	pool.Do(func() {})
	pool.Wait()
	pool.Wait()
}

package parallel

import (
	"runtime"
	"sync"
)

// Pool runs jobs on a fixed set of goroutines. A pool of one worker runs
// every job inline on the caller's goroutine.
type Pool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup
	stop    func()
}

// Start launches numWorkers goroutines, or GOMAXPROCS of them when
// numWorkers is below one.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		stop:    func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for job := range pool.jobs {
				job()
			}
		})
	}
	pool.stop = sync.OnceFunc(func() { close(pool.jobs) })

	return pool
}

// Workers is the number of concurrent jobs the pool runs.
func (p *Pool) Workers() int {
	return p.workers
}

// Do queues job, blocking while every worker is busy and the queue is full.
// It must not be called after Wait.
func (p *Pool) Do(job func()) {
	if p.jobs == nil {
		job()
		return
	}
	p.jobs <- job
}

// Wait stops accepting jobs and returns once every queued job finished.
func (p *Pool) Wait() {
	p.stop()
	p.wg.Wait()
}

package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker oversplits a grid so that workers finishing early pick up
// the remaining bands instead of idling.
const bandsPerWorker = 4

// RowPool computes row bands of a grid on a fixed set of goroutines.
//
// Every band of a Rows call is handed to exactly one worker, so callers may
// write the band's rows without synchronization as long as bands map to
// disjoint memory.
//
// Thread safety: RowPool is safe for concurrent use. Close waits for Rows
// calls in flight.
type RowPool struct {
	workers int
	tasks   chan rowTask
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held shared by Rows and exclusively by Close.
	mu      sync.RWMutex
	running atomic.Bool
}

type rowTask struct {
	band    Band
	fn      func(Band)
	pending *sync.WaitGroup
}

func (t rowTask) run() {
	defer t.pending.Done()
	t.fn(t.band)
}

// NewRowPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewRowPool(workers int) *RowPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &RowPool{
		workers: workers,
		tasks:   make(chan rowTask, workers*bandsPerWorker),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *RowPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.tasks:
			t.run()
		case <-p.done:
			return
		}
	}
}

// Rows splits height rows into bands, calls fn once per band across the
// workers, and blocks until every band is done. Bands cover [0, height)
// without overlap.
//
// Rows returns false without calling fn if the pool has been closed.
func (p *RowPool) Rows(height int, fn func(Band)) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		return false
	}

	bands := SplitRows(height, p.workers*bandsPerWorker)
	var pending sync.WaitGroup
	pending.Add(len(bands))
	for _, b := range bands {
		p.tasks <- rowTask{band: b, fn: fn, pending: &pending}
	}
	pending.Wait()
	return true
}

// Close stops the workers. Rows calls in flight finish first; later calls
// return false. Close is safe to call multiple times.
func (p *RowPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *RowPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *RowPool) IsRunning() bool {
	return p.running.Load()
}

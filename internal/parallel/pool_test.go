package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// RowPool Creation Tests
// =============================================================================

func TestRowPool_Create(t *testing.T) {
	pool := NewRowPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestRowPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewRowPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewRowPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Rows Tests
// =============================================================================

func TestRowPool_RowsCoversEachRowOnce(t *testing.T) {
	pool := NewRowPool(3)
	defer pool.Close()

	for _, height := range []int{1, 2, 11, 12, 13, 100} {
		hits := make([]atomic.Int32, height)
		var calls atomic.Int32
		if !pool.Rows(height, func(b Band) {
			calls.Add(1)
			for y := b.Start; y < b.End; y++ {
				hits[y].Add(1)
			}
		}) {
			t.Fatalf("Rows(%d) = false on a running pool", height)
		}

		for y := range hits {
			if n := hits[y].Load(); n != 1 {
				t.Fatalf("height %d: row %d visited %d times, want 1", height, y, n)
			}
		}
		if want := int32(min(height, 3*bandsPerWorker)); calls.Load() != want {
			t.Errorf("height %d: %d bands, want %d", height, calls.Load(), want)
		}
	}
}

func TestRowPool_DisjointWrites(t *testing.T) {
	pool := NewRowPool(4)
	defer pool.Close()

	const width, height = 7, 50
	out := make([]int, width*height)
	pool.Rows(height, func(b Band) {
		for y := b.Start; y < b.End; y++ {
			for x := range width {
				out[y*width+x] = y*width + x
			}
		}
	})

	for i, v := range out {
		if v != i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestRowPool_NoRows(t *testing.T) {
	pool := NewRowPool(2)
	defer pool.Close()

	called := false
	if !pool.Rows(0, func(Band) { called = true }) {
		t.Error("Rows(0) = false on a running pool")
	}
	if called {
		t.Error("Rows(0) called fn")
	}
}

func TestRowPool_Concurrent(t *testing.T) {
	pool := NewRowPool(4)
	defer pool.Close()

	var rows atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Rows(25, func(b Band) { rows.Add(int64(b.Rows())) })
		}()
	}
	wg.Wait()

	if rows.Load() != 200 {
		t.Errorf("rows = %d, want 200", rows.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestRowPool_Close(t *testing.T) {
	pool := NewRowPool(4)
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}

	// Second Close is a no-op.
	pool.Close()
}

func TestRowPool_RowsAfterClose(t *testing.T) {
	pool := NewRowPool(2)
	pool.Close()

	var ran atomic.Bool
	if pool.Rows(10, func(Band) { ran.Store(true) }) {
		t.Error("Rows() = true on a closed pool")
	}
	if ran.Load() {
		t.Error("closed pool should not run bands")
	}
}

func TestRowPool_CloseWaitsForRows(t *testing.T) {
	pool := NewRowPool(2)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	go func() {
		pool.Rows(1, func(Band) {
			close(started)
			<-release
			finished.Store(true)
		})
	}()

	<-started
	closed := make(chan struct{})
	go func() {
		pool.Close()
		close(closed)
	}()

	close(release)
	<-closed
	if !finished.Load() {
		t.Error("Close returned before the in-flight band finished")
	}
}

func BenchmarkRowPool_Rows(b *testing.B) {
	pool := NewRowPool(0)
	defer pool.Close()

	b.ReportAllocs()
	for b.Loop() {
		pool.Rows(512, func(Band) {})
	}
}

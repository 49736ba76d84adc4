package noise

import "testing"

func TestDefaultFillOptions(t *testing.T) {
	o := defaultFillOptions()
	if o.workers != 1 || o.pool != nil {
		t.Errorf("defaultFillOptions() = %+v, want sequential with no pool", o)
	}
}

func TestWithWorkers(t *testing.T) {
	o := defaultFillOptions()
	WithWorkers(6)(&o)
	if o.workers != 6 {
		t.Errorf("workers = %d, want 6", o.workers)
	}
}

func TestRegistryOptions(t *testing.T) {
	o := defaultRegistryOptions()
	if o.maxContexts != 0 || o.workers != 1 {
		t.Errorf("defaultRegistryOptions() = %+v, want unbounded and sequential", o)
	}

	WithMaxContexts(3)(&o)
	WithRegistryWorkers(4)(&o)
	if o.maxContexts != 3 || o.workers != 4 {
		t.Errorf("options = %+v, want maxContexts=3 workers=4", o)
	}
}

func TestFill_SingleWorkerIsSequential(t *testing.T) {
	c := New(4)
	a := make([]float32, 9)
	b := make([]float32, 9)
	_ = c.Fill(a, 3, 3, 2)
	_ = c.Fill(b, 3, 3, 2, WithWorkers(1))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d = %v, want %v", i, b[i], a[i])
		}
	}
}

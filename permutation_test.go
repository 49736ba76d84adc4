package noise

import (
	"math/rand/v2"
	"testing"
)

func TestBuildPermutation_Valid(t *testing.T) {
	seeds := []int64{0, 1, -1, 42, 123456789, 1 << 62, -1 << 63, 1<<63 - 1}
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		seeds = append(seeds, rng.Int64())
	}

	for _, seed := range seeds {
		p := buildPermutation(seed)
		if !p.Valid() {
			t.Fatalf("buildPermutation(%d) is not a permutation of 0..255", seed)
		}
	}
}

func TestBuildPermutation_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 99, -12345} {
		a := buildPermutation(seed)
		b := buildPermutation(seed)
		if a != b {
			t.Errorf("buildPermutation(%d) differs between calls", seed)
		}
	}
}

func TestBuildPermutation_KnownPrefix(t *testing.T) {
	tests := []struct {
		seed int64
		want [8]int16
	}{
		{0, [8]int16{254, 50, 92, 24, 36, 10, 190, 16}},
		{1, [8]int16{33, 221, 255, 106, 55, 126, 129, 158}},
		{42, [8]int16{48, 76, 40, 154, 62, 22, 64, 58}},
		{-1, [8]int16{112, 72, 97, 7, 156, 36, 163, 13}},
	}

	for _, tt := range tests {
		p := buildPermutation(tt.seed)
		var got [8]int16
		copy(got[:], p[:8])
		if got != tt.want {
			t.Errorf("buildPermutation(%d)[:8] = %v, want %v", tt.seed, got, tt.want)
		}
	}
}

func TestBuildPermutation_SeedSensitivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	same := 0
	for range 100 {
		a, b := rng.Int64(), rng.Int64()
		if a == b {
			continue
		}
		if buildPermutation(a) == buildPermutation(b) {
			same++
		}
	}
	if same != 0 {
		t.Errorf("%d of 100 distinct seed pairs produced identical tables", same)
	}
}

func TestPermutationTable_ValidRejects(t *testing.T) {
	p := buildPermutation(5)
	p[0] = p[1]
	if p.Valid() {
		t.Error("table with a duplicate entry reported valid")
	}

	q := buildPermutation(5)
	q[3] = 256
	if q.Valid() {
		t.Error("table with an out-of-range entry reported valid")
	}
}

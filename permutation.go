package noise

// PermutationSize is the number of entries in a permutation table.
const PermutationSize = 256

// LCG parameters used to scramble the seed (Knuth's MMIX constants).
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// PermutationTable is a bijection of 0..255 used to pick gradients per lattice point.
type PermutationTable [PermutationSize]int16

// buildPermutation derives a permutation from a 64-bit seed with a seeded
// Fisher–Yates shuffle driven by a 64-bit LCG. The arithmetic wraps, and the
// remainder is taken on the signed state so the table matches other
// OpenSimplex implementations for the same seed.
//
// The native C++ generator takes that remainder on the unsigned state, so for
// most seeds its tables differ from these. The signed form is intentional.
func buildPermutation(seed int64) PermutationTable {
	var source, perm PermutationTable
	for i := range source {
		source[i] = int16(i)
	}

	state := uint64(seed)
	state = state*lcgMultiplier + lcgIncrement
	state = state*lcgMultiplier + lcgIncrement
	state = state*lcgMultiplier + lcgIncrement

	for i := PermutationSize - 1; i >= 0; i-- {
		state = state*lcgMultiplier + lcgIncrement
		n := int64(i + 1)
		r := int64(state+31) % n
		if r < 0 {
			r += n
		}
		perm[i] = source[r]
		source[r] = source[i]
	}
	return perm
}

// Valid reports whether the table holds every value in 0..255 exactly once.
func (p *PermutationTable) Valid() bool {
	var seen [PermutationSize]bool
	for _, v := range p {
		if v < 0 || int(v) >= PermutationSize || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

package matrix

import "math/rand/v2"

// unitSteps is the number of distinct float64 values sampled in [0, 1].
// Drawing an integer in [0, unitSteps] and dividing keeps both ends reachable.
const unitSteps = 1 << 53

// Randomize fills m with values drawn uniformly from [lo, hi], both ends
// inclusive, and returns m.
//
// It uses the math/rand/v2 global source, which is safe for concurrent use,
// so networks built from different goroutines never share generator state.
func (m *Matrix) Randomize(lo, hi float64) *Matrix {
	for i := range m.data {
		m.data[i] = uniform(rand.Uint64N, lo, hi)
	}
	return m
}

// RandomizeWith is Randomize drawing from rng.
//
// rng is not safe for concurrent use; callers own its synchronization.
func (m *Matrix) RandomizeWith(rng *rand.Rand, lo, hi float64) *Matrix {
	for i := range m.data {
		m.data[i] = uniform(rng.Uint64N, lo, hi)
	}
	return m
}

// Uniform returns a single value drawn from [lo, hi] inclusive.
// A nil rng uses the global source.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil {
		return uniform(rand.Uint64N, lo, hi)
	}
	return uniform(rng.Uint64N, lo, hi)
}

func uniform(next func(uint64) uint64, lo, hi float64) float64 {
	u := float64(next(unitSteps+1)) / unitSteps
	return lo + (hi-lo)*u
}

package testutil

import "math/rand"

// Ramp returns n values start, start+step, start+2*step, ...
func Ramp[T Number](n int, start, step T) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

// Dyadic returns n pseudo-random values that are small multiples of 1/8 in
// [-8, 8]. Sums and products of a few such values are exact in float32 and
// float64, which makes bit-exact comparisons between evaluation paths
// meaningful.
func Dyadic[T ~float32 | ~float64](seed int64, n int) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Intn(129)-64) / 8
	}
	return out
}

// Positive returns n deterministic values in [0.5, 4.5], suitable for sqrt,
// log and division.
func Positive[T ~float32 | ~float64](seed int64, n int) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		out[i] = T(0.5 + 4*rng.Float64())
	}
	return out
}

// Fill returns n copies of v.
func Fill[T Number](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

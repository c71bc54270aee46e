package generic

import (
	"math"

	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

// Scal computes x = alpha*x.
func Scal[T registry.Float](n int, alpha T, x []T) {
	x = x[:n]
	for i := range x {
		x[i] *= alpha
	}
}

// Axpy computes y = alpha*x + y.
func Axpy[T registry.Float](n int, alpha T, x, y []T) {
	x, y = x[:n], y[:n]
	for i := range y {
		y[i] += alpha * x[i]
	}
}

// Axpby computes y = alpha*x + beta*y. y is not read when beta is zero.
func Axpby[T registry.Float](n int, alpha T, x []T, beta T, y []T) {
	x, y = x[:n], y[:n]
	if beta == 0 {
		for i := range y {
			y[i] = alpha * x[i]
		}
		return
	}
	for i := range y {
		y[i] = alpha*x[i] + beta*y[i]
	}
}

// Nrm2 returns the Euclidean norm of x, scaled to avoid intermediate
// overflow and underflow.
func Nrm2[T registry.Float](n int, x []T) T {
	scale, ssq := 0.0, 1.0
	for _, v := range x[:n] {
		if v == 0 {
			continue
		}
		a := math.Abs(float64(v))
		if scale < a {
			r := scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r := a / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0
	}
	return T(scale * math.Sqrt(ssq))
}

// Dot returns sum(x[i]*y[i]).
func Dot[T registry.Float](n int, x, y []T) T {
	var sum T
	for i, v := range x[:n] {
		sum += v * y[i]
	}
	return sum
}

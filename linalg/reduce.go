package linalg

import (
	"math"

	"github.com/cwbudde/algo-linalg/internal/kernel"
	"github.com/cwbudde/algo-linalg/seq"
)

// Sum returns the sum of the elements of e in row-major order.
func Sum[T Scalar](e Expr[T]) T {
	var s T
	seq.ForEach(e.Begin(), e.End(), func(x T) { s += x })
	return s
}

// Dot returns the inner product of two expressions of equal size. Dense
// float operands use the kernel backend.
func Dot[T Scalar](a, b Expr[T]) T {
	if a.Size() != b.Size() {
		panicShape("dot of %v and %v", a.Shape(), b.Shape())
	}
	x, xok := denseData(a)
	y, yok := denseData(b)
	if xok && yok {
		switch xs := any(x).(type) {
		case []float64:
			return any(kernel.Dot(len(xs), xs, any(y).([]float64))).(T)
		case []float32:
			return any(kernel.Dot(len(xs), xs, any(y).([]float32))).(T)
		}
	}
	var s T
	it, end := seq.NewMap2(a.Begin(), b.Begin(), mul[T]), seq.NewMap2(a.End(), b.End(), mul[T])
	for ; !it.Equal(end); it.Next() {
		s += it.Value()
	}
	return s
}

// Norm2 returns the Euclidean norm of e. Dense float operands use the kernel
// backend; everything else accumulates in float64.
func Norm2[T Scalar](e Expr[T]) T {
	if x, ok := denseData(e); ok {
		switch xs := any(x).(type) {
		case []float64:
			return any(kernel.Nrm2(len(xs), xs)).(T)
		case []float32:
			return any(kernel.Nrm2(len(xs), xs)).(T)
		}
	}
	var ss float64
	seq.ForEach(e.Begin(), e.End(), func(x T) {
		f := float64(x)
		ss += f * f
	})
	return T(math.Sqrt(ss))
}

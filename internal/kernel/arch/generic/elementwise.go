package generic

import (
	"math"

	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

// Add computes z[i] = x[i] + y[i].
func Add[T registry.Float](n int, x, y, z []T) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range z {
		z[i] = x[i] + y[i]
	}
}

// Sub computes z[i] = x[i] - y[i].
func Sub[T registry.Float](n int, x, y, z []T) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range z {
		z[i] = x[i] - y[i]
	}
}

// Mul computes z[i] = x[i] * y[i].
func Mul[T registry.Float](n int, x, y, z []T) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range z {
		z[i] = x[i] * y[i]
	}
}

// Div computes z[i] = x[i] / y[i].
func Div[T registry.Float](n int, x, y, z []T) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range z {
		z[i] = x[i] / y[i]
	}
}

// Sqrt computes y[i] = sqrt(x[i]).
func Sqrt[T registry.Float](n int, x, y []T) {
	apply(n, x, y, math.Sqrt)
}

// Exp computes y[i] = exp(x[i]).
func Exp[T registry.Float](n int, x, y []T) {
	apply(n, x, y, math.Exp)
}

// Log computes y[i] = log(x[i]).
func Log[T registry.Float](n int, x, y []T) {
	apply(n, x, y, math.Log)
}

// apply evaluates f in float64 and rounds back to T.
func apply[T registry.Float](n int, x, y []T, f func(float64) float64) {
	x, y = x[:n], y[:n]
	for i := range y {
		y[i] = T(f(float64(x[i])))
	}
}

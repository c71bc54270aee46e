package gonum

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-linalg/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

func table64() registry.Ops[float64] {
	return registry.Ops[float64]{
		Scal:  scal64,
		Axpy:  axpy64,
		Axpby: axpby64,
		Gemv:  gemv64,
		Gemm:  gemm64,
		Add:   add64,
		Sub:   sub64,
		Mul:   mul64,
		Div:   div64,
		Sqrt:  func(n int, x, y []float64) { map64(n, x, y, math.Sqrt) },
		Exp:   func(n int, x, y []float64) { map64(n, x, y, math.Exp) },
		Log:   func(n int, x, y []float64) { map64(n, x, y, math.Log) },
		Nrm2:  nrm264,
		Dot:   dot64,
	}
}

func vec64(n int, x []float64) blas64.Vector {
	return blas64.Vector{N: n, Data: x[:n], Inc: 1}
}

func general64(rows, cols int, a []float64) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: a[:rows*cols]}
}

func scal64(n int, alpha float64, x []float64) {
	blas64.Scal(alpha, vec64(n, x))
}

func axpy64(n int, alpha float64, x, y []float64) {
	blas64.Axpy(alpha, vec64(n, x), vec64(n, y))
}

func axpby64(n int, alpha float64, x []float64, beta float64, y []float64) {
	if beta == 0 {
		vecmath.ScaleBlock(y[:n], x[:n], alpha)
		return
	}
	floats.Scale(beta, y[:n])
	floats.AddScaled(y[:n], alpha, x[:n])
}

func gemv64(trans bool, m, n int, alpha float64, a, x []float64, beta float64, y []float64) {
	if m == 0 || n == 0 {
		// Degenerate shapes are rejected by blas64's leading dimension checks.
		generic.Gemv(trans, m, n, alpha, a, x, beta, y)
		return
	}
	xn, yn := n, m
	if trans {
		xn, yn = m, n
	}
	blas64.Gemv(transpose(trans), alpha, general64(m, n, a), vec64(xn, x), beta, vec64(yn, y))
}

func gemm64(transA, transB bool, m, n, k int, alpha float64, a, b []float64, beta float64, c []float64) {
	if m == 0 || n == 0 || k == 0 {
		generic.Gemm(transA, transB, m, n, k, alpha, a, b, beta, c)
		return
	}
	ar, ac := m, k
	if transA {
		ar, ac = k, m
	}
	br, bc := k, n
	if transB {
		br, bc = n, k
	}
	blas64.Gemm(transpose(transA), transpose(transB), alpha,
		general64(ar, ac, a), general64(br, bc, b), beta, general64(m, n, c))
}

func add64(n int, x, y, z []float64) {
	if n == 0 {
		return
	}
	if &z[0] == &y[0] {
		vecmath.AddBlockInPlace(z[:n], x[:n])
		return
	}
	copy(z[:n], x[:n])
	vecmath.AddBlockInPlace(z[:n], y[:n])
}

func sub64(n int, x, y, z []float64) {
	floats.SubTo(z[:n], x[:n], y[:n])
}

func mul64(n int, x, y, z []float64) {
	vecmath.MulBlock(z[:n], x[:n], y[:n])
}

func div64(n int, x, y, z []float64) {
	floats.DivTo(z[:n], x[:n], y[:n])
}

func map64(n int, x, y []float64, f func(float64) float64) {
	x, y = x[:n], y[:n]
	for i := range y {
		y[i] = f(x[i])
	}
}

func nrm264(n int, x []float64) float64 {
	if n == 0 {
		return 0
	}
	return blas64.Nrm2(vec64(n, x))
}

func dot64(n int, x, y []float64) float64 {
	if n == 0 {
		return 0
	}
	return blas64.Dot(vec64(n, x), vec64(n, y))
}

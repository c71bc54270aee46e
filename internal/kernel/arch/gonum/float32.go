package gonum

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/cwbudde/algo-linalg/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

// table32 uses blas32 for the BLAS-shaped operations. gonum has no float32
// elementwise package, so those fall back to the generic kernels.
func table32() registry.Ops[float32] {
	return registry.Ops[float32]{
		Scal:  scal32,
		Axpy:  axpy32,
		Axpby: axpby32,
		Gemv:  gemv32,
		Gemm:  gemm32,
		Add:   generic.Add[float32],
		Sub:   generic.Sub[float32],
		Mul:   generic.Mul[float32],
		Div:   generic.Div[float32],
		Sqrt:  generic.Sqrt[float32],
		Exp:   generic.Exp[float32],
		Log:   generic.Log[float32],
		Nrm2:  nrm232,
		Dot:   dot32,
	}
}

func transpose(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

func vec32(n int, x []float32) blas32.Vector {
	return blas32.Vector{N: n, Data: x[:n], Inc: 1}
}

func general32(rows, cols int, a []float32) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: a[:rows*cols]}
}

func scal32(n int, alpha float32, x []float32) {
	blas32.Scal(alpha, vec32(n, x))
}

func axpy32(n int, alpha float32, x, y []float32) {
	blas32.Axpy(alpha, vec32(n, x), vec32(n, y))
}

func axpby32(n int, alpha float32, x []float32, beta float32, y []float32) {
	if beta == 0 {
		generic.Axpby(n, alpha, x, beta, y)
		return
	}
	blas32.Scal(beta, vec32(n, y))
	blas32.Axpy(alpha, vec32(n, x), vec32(n, y))
}

func gemv32(trans bool, m, n int, alpha float32, a, x []float32, beta float32, y []float32) {
	if m == 0 || n == 0 {
		generic.Gemv(trans, m, n, alpha, a, x, beta, y)
		return
	}
	xn, yn := n, m
	if trans {
		xn, yn = m, n
	}
	blas32.Gemv(transpose(trans), alpha, general32(m, n, a), vec32(xn, x), beta, vec32(yn, y))
}

func gemm32(transA, transB bool, m, n, k int, alpha float32, a, b []float32, beta float32, c []float32) {
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
	blas32.Gemm(transpose(transA), transpose(transB), alpha,
		general32(ar, ac, a), general32(br, bc, b), beta, general32(m, n, c))
}

func nrm232(n int, x []float32) float32 {
	if n == 0 {
		return 0
	}
	return blas32.Nrm2(vec32(n, x))
}

func dot32(n int, x, y []float32) float32 {
	if n == 0 {
		return 0
	}
	return blas32.Dot(vec32(n, x), vec32(n, y))
}

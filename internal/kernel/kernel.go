package kernel

import "github.com/cwbudde/algo-linalg/internal/kernel/registry"

// Float is the set of element types with kernel implementations.
type Float = registry.Float

func need(n int, bufs ...int) {
	if n < 0 {
		panic("kernel: negative length")
	}
	for _, l := range bufs {
		if l < n {
			panic("kernel: slice too short")
		}
	}
}

// Scal computes x = alpha*x over the first n elements.
func Scal[T Float](n int, alpha T, x []T) {
	need(n, len(x))
	if n == 0 {
		return
	}
	ops[T]().Scal(n, alpha, x)
}

// Axpy computes y = alpha*x + y.
func Axpy[T Float](n int, alpha T, x, y []T) {
	need(n, len(x), len(y))
	if n == 0 {
		return
	}
	ops[T]().Axpy(n, alpha, x, y)
}

// Axpby computes y = alpha*x + beta*y. y is not read when beta is zero.
func Axpby[T Float](n int, alpha T, x []T, beta T, y []T) {
	need(n, len(x), len(y))
	if n == 0 {
		return
	}
	ops[T]().Axpby(n, alpha, x, beta, y)
}

// Gemv computes y = alpha*op(A)*x + beta*y where A is a row-major m×n
// matrix and op(A) is A, or its transpose when trans is set.
func Gemv[T Float](trans bool, m, n int, alpha T, a, x []T, beta T, y []T) {
	xn, yn := n, m
	if trans {
		xn, yn = m, n
	}
	need(m*n, len(a))
	need(xn, len(x))
	need(yn, len(y))
	if yn == 0 {
		return
	}
	ops[T]().Gemv(trans, m, n, alpha, a, x, beta, y)
}

// Gemm computes C = alpha*op(A)*op(B) + beta*C where C is a row-major m×n
// matrix and k is the inner dimension.
func Gemm[T Float](transA, transB bool, m, n, k int, alpha T, a, b []T, beta T, c []T) {
	need(m*k, len(a))
	need(k*n, len(b))
	need(m*n, len(c))
	if m == 0 || n == 0 {
		return
	}
	ops[T]().Gemm(transA, transB, m, n, k, alpha, a, b, beta, c)
}

// Add computes z[i] = x[i] + y[i].
func Add[T Float](n int, x, y, z []T) {
	need(n, len(x), len(y), len(z))
	ops[T]().Add(n, x, y, z)
}

// Sub computes z[i] = x[i] - y[i].
func Sub[T Float](n int, x, y, z []T) {
	need(n, len(x), len(y), len(z))
	ops[T]().Sub(n, x, y, z)
}

// Mul computes z[i] = x[i] * y[i].
func Mul[T Float](n int, x, y, z []T) {
	need(n, len(x), len(y), len(z))
	ops[T]().Mul(n, x, y, z)
}

// Div computes z[i] = x[i] / y[i].
func Div[T Float](n int, x, y, z []T) {
	need(n, len(x), len(y), len(z))
	ops[T]().Div(n, x, y, z)
}

// Sqrt computes y[i] = sqrt(x[i]).
func Sqrt[T Float](n int, x, y []T) {
	need(n, len(x), len(y))
	ops[T]().Sqrt(n, x, y)
}

// Exp computes y[i] = exp(x[i]).
func Exp[T Float](n int, x, y []T) {
	need(n, len(x), len(y))
	ops[T]().Exp(n, x, y)
}

// Log computes y[i] = log(x[i]).
func Log[T Float](n int, x, y []T) {
	need(n, len(x), len(y))
	ops[T]().Log(n, x, y)
}

// Nrm2 returns the Euclidean norm of the first n elements of x.
func Nrm2[T Float](n int, x []T) T {
	need(n, len(x))
	return ops[T]().Nrm2(n, x)
}

// Dot returns the dot product of the first n elements of x and y.
func Dot[T Float](n int, x, y []T) T {
	need(n, len(x), len(y))
	return ops[T]().Dot(n, x, y)
}

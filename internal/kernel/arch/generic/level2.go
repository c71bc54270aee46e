package generic

import "github.com/cwbudde/algo-linalg/internal/kernel/registry"

// Gemv computes y = alpha*op(A)*x + beta*y for a row-major m×n matrix A.
// y is not read when beta is zero.
func Gemv[T registry.Float](trans bool, m, n int, alpha T, a, x []T, beta T, y []T) {
	if !trans {
		for i := 0; i < m; i++ {
			row := a[i*n : i*n+n]
			var sum T
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = combine(alpha, sum, beta, y[i])
		}
		return
	}

	for j := 0; j < n; j++ {
		var sum T
		for i := 0; i < m; i++ {
			sum += a[i*n+j] * x[i]
		}
		y[j] = combine(alpha, sum, beta, y[j])
	}
}

// Gemm computes C = alpha*op(A)*op(B) + beta*C where C is m×n and the inner
// dimension is k. C is not read when beta is zero.
func Gemm[T registry.Float](transA, transB bool, m, n, k int, alpha T, a, b []T, beta T, c []T) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				var av, bv T
				if transA {
					av = a[p*m+i]
				} else {
					av = a[i*k+p]
				}
				if transB {
					bv = b[j*k+p]
				} else {
					bv = b[p*n+j]
				}
				sum += av * bv
			}
			c[i*n+j] = combine(alpha, sum, beta, c[i*n+j])
		}
	}
}

func combine[T registry.Float](alpha, sum, beta, y T) T {
	if beta == 0 {
		return alpha * sum
	}
	return alpha*sum + beta*y
}

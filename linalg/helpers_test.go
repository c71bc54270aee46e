package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsWith fails t unless fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// withBackend pins a kernel backend for the duration of t.
func withBackend(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, UseBackend(name))
	t.Cleanup(ResetBackend)
}

// requireSameFloats compares element by element, treating NaNs as equal.
func requireSameFloats[F Float](t *testing.T, got, want []F) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		if math.IsNaN(g) && math.IsNaN(w) {
			continue
		}
		require.Equal(t, w, g, "index %d", i)
	}
}

func mat[T Scalar](rows ...[]T) *Matrix[T] { return NewMatrixFromRows(rows) }

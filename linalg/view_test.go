package linalg

import (
	"testing"

	"github.com/cwbudde/algo-linalg/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnScaleInPlace(t *testing.T) {
	m := mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	m.Col(0).MulScalar(2)

	assert.Equal(t, []float64{2, 2, 3, 8, 5, 6}, m.Data())
	assert.Equal(t, []float64{2, 8}, m.Col(0).Slice())
}

func TestViewShapes(t *testing.T) {
	m := NewMatrix[float32](3, 4)
	r, c := m.Row(1), m.Col(2)

	assert.Equal(t, Shape{Rows: 1, Cols: 4}, r.Shape())
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, c.Shape())
	assert.Equal(t, VectorKind, r.Kind())
	assert.Equal(t, VectorKind, c.Kind())
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, seq.Count(c.Begin(), c.End()))
}

func TestViewsChangeOnlyTheirLine(t *testing.T) {
	const rows, cols = 4, 5
	base := func() *Matrix[int] {
		m := NewMatrix[int](rows, cols)
		for i := range m.Data() {
			m.Data()[i] = i
		}
		return m
	}

	for j := 0; j < cols; j++ {
		m := base()
		m.Col(j).AddScalar(100)
		m.Col(j).MulScalar(2)
		m.Col(j).SubScalar(4)
		m.Col(j).DivScalar(2)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				want := r*cols + c
				if c == j {
					want = ((want+100)*2 - 4) / 2
				}
				require.Equal(t, want, m.At(r, c), "col %d mutated, checking (%d,%d)", j, r, c)
			}
		}
	}

	for i := 0; i < rows; i++ {
		m := base()
		m.Row(i).Fill(-1)
		m.Row(i).Set(0, 7)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				want := r*cols + c
				if r == i {
					want = -1
					if c == 0 {
						want = 7
					}
				}
				require.Equal(t, want, m.At(r, c), "row %d mutated, checking (%d,%d)", i, r, c)
			}
		}
	}
}

func TestViewsAsExpressions(t *testing.T) {
	m := mat([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})

	assert.Equal(t, []float64{5, 7, 9}, Collect[float64](Add[float64](m.Row(0), m.Row(1).T().T())))
	assert.Equal(t, []float64{2, 5, 8}, Collect[float64](m.Col(1)))
	assert.Equal(t, []float64{4, 5, 6}, Collect[float64](m.Row(1).T()))
	assert.Equal(t, 8.0, m.Col(1).At(2))
	assert.Equal(t, 6.0, m.Row(1).At(2))

	m.Col(1).Set(0, 20)
	assert.Equal(t, 20.0, m.At(0, 1))

	// views are not dense leaves
	assert.Equal(t, CategoryNormal, Classify[float64](Add[float64](m.Col(0), m.Col(1))))
}

func TestViewIntoOwnMatrix(t *testing.T) {
	m := mat([]float64{1, 2}, []float64{3, 4})
	v := NewVector[float64](2)
	v.Assign(m.Col(1))
	assert.Equal(t, []float64{2, 4}, v.Data())

	// a column assigned back into the first row of the same matrix
	Evaluate(OpAssign, m.Data()[:2], Expr[float64](m.Col(1)))
	assert.Equal(t, []float64{2, 4, 3, 4}, m.Data())
}

func TestTransposeWalk(t *testing.T) {
	a := mat(
		[]int{1, 2, 3, 4},
		[]int{5, 6, 7, 8},
		[]int{9, 10, 11, 12},
	)
	at := Transpose[int](a)
	assert.Equal(t, Shape{Rows: 4, Cols: 3}, at.Shape())
	assert.Equal(t, MatrixKind, at.Kind())
	assert.Equal(t, []int{1, 5, 9, 2, 6, 10, 3, 7, 11, 4, 8, 12}, seq.Collect(at.Begin(), at.End()))
}

func TestTransposeTwiceIsIdentity(t *testing.T) {
	m := mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	exprs := map[string]Expr[float64]{
		"matrix":  m,
		"row":     m.Row(1),
		"col":     m.Col(2),
		"vector":  VectorOf(1.0, 2, 3),
		"sum":     Add[float64](m, m),
		"product": MatMul[float64](m, m.T()),
	}
	for name, e := range exprs {
		t.Run(name, func(t *testing.T) {
			tt := Transpose[float64](Transpose(e))
			assert.Equal(t, e.Shape(), tt.Shape())
			assert.Equal(t, e.Kind(), tt.Kind())
			assert.Equal(t, seq.Collect(e.Begin(), e.End()), seq.Collect(tt.Begin(), tt.End()))
		})
	}
}

func TestTransposeOfComposites(t *testing.T) {
	x := VectorOf(1.0, 2)
	y := VectorOf(10.0, 20, 30)
	m := mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	a := mat([]float64{1, -2}, []float64{3, 4}, []float64{0.5, 2})
	b := mat([]float64{2, 1, 0}, []float64{-1, 3, 0.25})

	tests := []struct {
		name string
		e    Expr[float64]
		kind Kind
	}{
		{"outer", MatMul[float64](x, y.T()), MatrixKind},
		{"col times row", MatMul[float64](m.Col(1), m.Row(0)), MatrixKind},
		{"outer plus matrix", Add[float64](MatMul[float64](x, y.T()), m), MatrixKind},
		{"scaled outer", Scale[float64](2, MatMul[float64](x, y.T())), MatrixKind},
		{"sqrt of outer", Sqrt[float64](MatMul[float64](x, y.T())), MatrixKind},
		{"scaled matmul", Scale[float64](3, MatMul[float64](a, b)), MatrixKind},
		{"matvec", MatVec[float64](m, VectorOf(1.0, 0, 2)), VectorKind},
		{"row times matrix", MatMul[float64](m.Row(1), a), MatrixKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.e.Kind())

			want := NewMatrixFromExpr(Transpose[float64](NewMatrixFromExpr(tt.e)))
			got := Transpose[float64](tt.e)
			assert.Equal(t, want.Shape(), got.Shape())
			assert.Equal(t, want.Data(), Collect[float64](got))

			twice := Transpose[float64](Transpose(tt.e))
			assert.Equal(t, tt.e.Shape(), twice.Shape())
			assert.Equal(t, Collect(tt.e), Collect[float64](twice))
		})
	}
}

func TestTransposeOfOuterProduct(t *testing.T) {
	outer := MatMul[float64](VectorOf(1.0, 2), VectorOf(10.0, 20, 30).T())

	assert.Equal(t, Shape{Rows: 2, Cols: 3}, outer.Shape())
	assert.Equal(t, []float64{10, 20, 30, 20, 40, 60}, Collect[float64](outer))
	assert.Equal(t, []float64{10, 20, 20, 40, 30, 60}, Collect[float64](Transpose[float64](outer)))
}

func TestTransposeIsWritableOverMatrix(t *testing.T) {
	m := mat([]int{1, 2}, []int{3, 4})
	it := m.T().Begin()
	w, ok := it.(seq.Writer[int])
	require.True(t, ok)
	w.SetAt(1, 30) // logical (0,1) of the transpose is (1,0) of m
	assert.Equal(t, []int{1, 2, 30, 4}, m.Data())
}

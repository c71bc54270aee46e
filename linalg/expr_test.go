package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatVecRoundTrip(t *testing.T) {
	a := mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	x := VectorOf(-1.0, 0, 2)

	y := NewVectorFromExpr[float64](MatVec[float64](a, x))
	require.Equal(t, []float64{5, 8}, y.Data())

	y.MulAssign(MatVec[float64](a, x))
	assert.Equal(t, []float64{25, 64}, y.Data())
	y.DivAssign(MatVec[float64](a, x))
	assert.Equal(t, []float64{5, 8}, y.Data())
}

func TestSqrtOfVector(t *testing.T) {
	x := VectorOf(0, 4.0, 2.25, 16, 25)
	e := Sqrt[float64](x)
	assert.Equal(t, CategorySqrt, Classify[float64](e))
	assert.Equal(t, []float64{0, 2, 1.5, 4, 5}, Collect[float64](e))
	assert.Equal(t, []float64{0, 2, 1.5, 4, 5}, Collect[float64](e, WithGenericPath()))
}

func TestElementwiseShapeMismatchPanics(t *testing.T) {
	a := NewMatrix[float64](2, 3)
	b := NewMatrix[float64](3, 2)
	requirePanicsWith(t, ErrShape, func() { Add[float64](a, b) })
	requirePanicsWith(t, ErrShape, func() { Sub[float64](a, b) })
	requirePanicsWith(t, ErrShape, func() { MulElem[float64](a, b) })
	requirePanicsWith(t, ErrShape, func() { DivElem[float64](a, b) })
	requirePanicsWith(t, ErrShape, func() { Apply2[float64](a, b, math.Max) })
	requirePanicsWith(t, ErrShape, func() { Add[float64](VectorOf(1.0, 2), VectorOf(1.0, 2, 3)) })
}

func TestProductShapeMismatchPanics(t *testing.T) {
	a := NewMatrix[float64](2, 3)
	requirePanicsWith(t, ErrShape, func() { MatVec[float64](a, NewVector[float64](2)) })
	requirePanicsWith(t, ErrShape, func() { MatMul[float64](a, a) })
	requirePanicsWith(t, ErrShape, func() { MatVec[float64](a.T(), NewVector[float64](3)) })
}

func TestConstructionIsLazy(t *testing.T) {
	x := VectorOf(1.0, 2, 3)
	y := VectorOf(10.0, 20, 30)
	e := Add[float64](x, Scale[float64](2, y))

	x.Set(0, 100)
	assert.Equal(t, []float64{120, 42, 63}, Collect[float64](e), "operands are read at evaluation time")
}

func TestCompositeShapes(t *testing.T) {
	a := NewMatrix[float64](4, 3)
	b := NewMatrix[float64](3, 5)
	x := NewVector[float64](3)

	for _, e := range []Expr[float64]{
		Add[float64](a, a), Sub[float64](a, a), MulElem[float64](a, a), DivElem[float64](a, a),
		Sqrt[float64](a), Neg[float64](a), Scale[float64](2, a), DivScalar[float64](a, 2),
	} {
		assert.Equal(t, a.Shape(), e.Shape())
		assert.Equal(t, a.Size(), e.Size())
		assert.Equal(t, MatrixKind, e.Kind())
	}

	mv := MatVec[float64](a, x)
	assert.Equal(t, Shape{Rows: 4, Cols: 1}, mv.Shape())
	assert.Equal(t, VectorKind, mv.Kind())

	mm := MatMul[float64](a, b)
	assert.Equal(t, Shape{Rows: 4, Cols: 5}, mm.Shape())
	assert.Equal(t, MatrixKind, mm.Kind())

	mtv := MatVec[float64](a.T(), NewVector[float64](4))
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, mtv.Shape())
}

func TestUnaryFunctions(t *testing.T) {
	x := VectorOf(-2.0, 0, 1.5)
	assert.Equal(t, []float64{2, 0, -1.5}, Collect[float64](Neg[float64](x)))
	assert.Equal(t, []float64{2, 0, 1.5}, Collect[float64](Abs[float64](x)))
	assert.Equal(t, []float64{4, 0, 2.25}, Collect[float64](Apply[float64](x, func(v float64) float64 { return v * v })))

	p := VectorOf(1.0, math.E)
	assert.InDeltaSlice(t, []float64{0, 1}, Collect[float64](Log[float64](p)), 1e-15)
	assert.InDeltaSlice(t, []float64{math.E, math.Exp(math.E)}, Collect[float64](Exp[float64](p)), 1e-12)

	ints := VectorOf(-3, 4, 9)
	assert.Equal(t, []int{3, 4, 9}, Collect[int](Abs[int](ints)))
	assert.Equal(t, []int{1, 2, 3}, Collect[int](Sqrt[int](Abs[int](ints))), "integer sqrt truncates")
}

func TestBinaryForms(t *testing.T) {
	x := VectorOf(1.0, 2, 4)
	y := VectorOf(4.0, 2, 1)

	cases := []struct {
		name string
		e    Expr[float64]
		want []float64
	}{
		{"add", Add[float64](x, y), []float64{5, 4, 5}},
		{"sub", Sub[float64](x, y), []float64{-3, 0, 3}},
		{"mul", MulElem[float64](x, y), []float64{4, 4, 4}},
		{"div", DivElem[float64](x, y), []float64{0.25, 1, 4}},
		{"apply2", Apply2[float64](x, y, math.Max), []float64{4, 2, 4}},
		{"scale", Scale[float64](3, x), []float64{3, 6, 12}},
		{"scalar sub", ScalarSub[float64](1, x), []float64{0, -1, -3}},
		{"scalar div", ScalarDiv[float64](4, x), []float64{4, 2, 1}},
		{"mul scalar", MulScalar[float64](x, 0.5), []float64{0.5, 1, 2}},
		{"div scalar", DivScalar[float64](x, 2), []float64{0.5, 1, 2}},
		{"add scalar", AddScalar[float64](x, 1), []float64{2, 3, 5}},
		{"sub scalar", SubScalar[float64](x, 1), []float64{0, 1, 3}},
		{"nested", Add[float64](Scale[float64](2, x), Neg[float64](y)), []float64{-2, 2, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collect(tc.e))
			assert.Equal(t, tc.want, Collect(tc.e, WithGenericPath()))
		})
	}
}

func TestBinaryAccessors(t *testing.T) {
	x := VectorOf(1.0, 2)
	b := Scale[float64](3, x)
	a, ok := b.Scalar()
	assert.True(t, ok)
	assert.Equal(t, 3.0, a)
	assert.Equal(t, FuncMul, b.Func())
	lhs, rhs := b.Operands()
	assert.Nil(t, lhs)
	assert.Same(t, x, rhs)

	_, ok = Add[float64](x, x).Scalar()
	assert.False(t, ok)

	u := Sqrt[float64](x)
	assert.Equal(t, FuncSqrt, u.Func())
	assert.Same(t, x, u.Operand())
}

func TestProductValues(t *testing.T) {
	a := mat([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	b := mat([]float64{1, 0, 2}, []float64{0, 1, 3})

	assert.Equal(t, []float64{1, 2, 8, 3, 4, 18, 5, 6, 28}, Collect[float64](MatMul[float64](a, b)))
	assert.Equal(t, []float64{35, 44, 44, 56}, Collect[float64](MatMul[float64](a.T(), a)))
	assert.Equal(t, []float64{9, 12}, Collect[float64](MatVec[float64](a.T(), VectorOf(1.0, 1, 1))))

	// products of composite operands take the generic path
	e := MatVec[float64](Add[float64](a, a), VectorOf(1.0, -1))
	assert.Equal(t, CategoryNormal, Classify[float64](e))
	assert.Equal(t, []float64{-2, -2, -2}, Collect[float64](e))

	ints := MatMul[int](mat([]int{1, 2}), mat([]int{3}, []int{4}))
	assert.Equal(t, []int{11}, Collect[int](ints))
}

func TestReductions(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			withBackend(t, backend)
			x := VectorOf(3.0, 4)
			assert.Equal(t, 7.0, Sum[float64](x))
			assert.InDelta(t, 5.0, Norm2[float64](x), 1e-15)
			assert.Equal(t, 25.0, Dot[float64](x, x))
			assert.Equal(t, 25.0, Dot[float64](x, x.T()))
			assert.Equal(t, 6.0, Dot[float64](Scale[float64](2, x), VectorOf(1.0, 0)))

			f := VectorOf[float32](1, 2, 2)
			assert.InDelta(t, 3.0, float64(Norm2[float32](f)), 1e-6)
			assert.Equal(t, float32(9), Dot[float32](f, f))

			ints := VectorOf(1, 2, 2)
			assert.Equal(t, 3, Norm2[int](ints))
			assert.Equal(t, 9, Dot[int](ints, ints))
			assert.Equal(t, 5, Sum[int](ints))
		})
	}
	requirePanicsWith(t, ErrShape, func() { Dot[float64](VectorOf(1.0), VectorOf(1.0, 2)) })
}

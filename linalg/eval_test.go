package linalg

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-linalg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOps = []Op{OpAssign, OpAdd, OpSub, OpMul, OpDiv}

// operands holds dense inputs whose sums and products are exact.
type operands[F Float] struct {
	x, y, p *Vector[F] // length 6; p is strictly positive
	v       *Vector[F] // length 4
	a       *Matrix[F] // 6×4
	b       *Matrix[F] // 4×3
}

func newOperands[F Float]() operands[F] {
	return operands[F]{
		x: VectorOf(testutil.Dyadic[F](1, 6)...),
		y: VectorOf(testutil.Dyadic[F](2, 6)...),
		p: VectorOf(testutil.Positive[F](3, 6)...),
		v: VectorOf(testutil.Dyadic[F](4, 4)...),
		a: NewMatrixFromData(6, 4, testutil.Dyadic[F](5, 24)),
		b: NewMatrixFromData(4, 3, testutil.Dyadic[F](6, 12)),
	}
}

type equivCase[F Float] struct {
	name  string
	want  Category
	build func(o operands[F]) Expr[F]
}

func equivCases[F Float]() []equivCase[F] {
	return []equivCase[F]{
		{"a*x", CategoryScalarTimesDense, func(o operands[F]) Expr[F] { return Scale(F(-1.25), Expr[F](o.x)) }},
		{"x*a", CategoryScalarTimesDense, func(o operands[F]) Expr[F] { return MulScalar(Expr[F](o.a), F(0.5)) }},
		{"x/a", CategoryDenseOverScalar, func(o operands[F]) Expr[F] { return DivScalar(Expr[F](o.x), F(3)) }},
		{"x+y", CategoryDensePlusDense, func(o operands[F]) Expr[F] { return Add[F](o.x, o.y) }},
		{"x-y", CategoryDenseMinusDense, func(o operands[F]) Expr[F] { return Sub[F](o.x, o.y) }},
		{"x*y", CategoryDenseTimesDense, func(o operands[F]) Expr[F] { return MulElem[F](o.x, o.y) }},
		{"x/y", CategoryDenseOverDense, func(o operands[F]) Expr[F] { return DivElem[F](o.x, o.p) }},
		{"sqrt", CategorySqrt, func(o operands[F]) Expr[F] { return Sqrt[F](o.p) }},
		{"exp", CategoryExp, func(o operands[F]) Expr[F] { return Exp[F](o.p) }},
		{"log", CategoryLog, func(o operands[F]) Expr[F] { return Log[F](o.p) }},
		{"Ax", CategoryMatVec, func(o operands[F]) Expr[F] { return MatVec[F](o.a, o.v) }},
		{"Aᵗx", CategoryMatVecTransposed, func(o operands[F]) Expr[F] { return MatVec[F](o.a.T(), o.x) }},
		{"αAx", CategoryScaledMatVec, func(o operands[F]) Expr[F] { return Scale(F(0.5), Expr[F](MatVec[F](o.a, o.v))) }},
		{"Axα", CategoryScaledMatVec, func(o operands[F]) Expr[F] { return MulScalar(Expr[F](MatVec[F](o.a, o.v)), F(-2)) }},
		{"αAᵗx", CategoryScaledMatVecTransposed, func(o operands[F]) Expr[F] { return Scale(F(-0.25), Expr[F](MatVec[F](o.a.T(), o.x))) }},
		{"AB", CategoryMatMat, func(o operands[F]) Expr[F] { return MatMul[F](o.a, o.b) }},
		{"αAB", CategoryScaledMatMat, func(o operands[F]) Expr[F] { return Scale(F(1.5), Expr[F](MatMul[F](o.a, o.b))) }},
	}
}

func testEquivalence[F Float](t *testing.T) {
	o := newOperands[F]()
	for _, tc := range equivCases[F]() {
		e := tc.build(o)
		require.Equal(t, tc.want, Classify(e), tc.name)
		for _, op := range allOps {
			t.Run(fmt.Sprintf("%s/%s", tc.name, op), func(t *testing.T) {
				start := testutil.Dyadic[F](7, e.Size())
				generic := append([]F(nil), start...)
				kernel := append([]F(nil), start...)

				Evaluate(op, generic, e, WithGenericPath())
				Evaluate(op, kernel, e)

				requireSameFloats(t, kernel, generic)
			})
		}
	}
}

func TestGenericAndKernelPathsAgree(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			withBackend(t, backend)
			t.Run("float64", testEquivalence[float64])
			t.Run("float32", testEquivalence[float32])
		})
	}
}

func TestContainersDispatchLikeEvaluate(t *testing.T) {
	o := newOperands[float64]()
	e := Scale[float64](2, MatVec[float64](o.a, o.v))

	y := NewVectorFromExpr[float64](e)
	want := Collect[float64](e, WithGenericPath())
	assert.Equal(t, want, y.Data())

	y.SubAssign(e)
	assert.Equal(t, make([]float64, 6), y.Data())

	m := NewMatrixFromExpr[float64](MatMul[float64](o.a, o.b))
	m.AddAssign(MatMul[float64](o.a, o.b))
	assert.Equal(t, Collect[float64](Scale[float64](2, MatMul[float64](o.a, o.b)), WithGenericPath()), m.Data())
}

func TestSelfScaling(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			withBackend(t, backend)

			y := VectorOf(1.0, -2, 4)
			y.Assign(Scale[float64](0.5, y))
			assert.Equal(t, []float64{0.5, -1, 2}, y.Data())

			y.AddAssign(Scale[float64](3, y))
			assert.Equal(t, []float64{2, -4, 8}, y.Data())

			y.SubAssign(MulScalar[float64](y, 0.25))
			assert.Equal(t, []float64{1.5, -3, 6}, y.Data())

			y.AddAssign(Add[float64](y, y))
			assert.Equal(t, []float64{4.5, -9, 18}, y.Data())

			y.Assign(Sqrt[float64](MulElem[float64](y, y)))
			assert.Equal(t, []float64{4.5, 9, 18}, y.Data())

			y.Assign(DivScalar[float64](y, 9))
			assert.Equal(t, []float64{0.5, 1, 2}, y.Data())
		})
	}
}

func TestAliasedProducts(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			withBackend(t, backend)
			a := mat([]float64{1, 2}, []float64{3, 4})
			x := VectorOf(1.0, 1)

			x.Assign(MatVec[float64](a, x))
			assert.Equal(t, []float64{3, 7}, x.Data())

			x.AddAssign(MatVec[float64](a.T(), x))
			assert.Equal(t, []float64{3 + 24, 7 + 34}, x.Data())

			x.SubAssign(Scale[float64](2, MatVec[float64](a, x)))
			assert.Equal(t, []float64{27 - 2*109, 41 - 2*245}, x.Data())

			m := a.Clone()
			m.Assign(MatMul[float64](m, m))
			assert.Equal(t, []float64{7, 10, 15, 22}, m.Data())

			m = a.Clone()
			m.Assign(MatMul[float64](m, m), WithGenericPath())
			assert.Equal(t, []float64{7, 10, 15, 22}, m.Data())
		})
	}
}

func TestAliasedTranspose(t *testing.T) {
	m := mat([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	m.Assign(m.T())
	assert.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.Data())

	m.AddAssign(m.T())
	assert.Equal(t, []float64{2, 6, 10, 6, 10, 14, 10, 14, 18}, m.Data())
}

func TestPartialOverlap(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	src := &Vector[float64]{data: data[:3]}

	Evaluate(OpAssign, data[1:], Expr[float64](src))
	assert.Equal(t, []float64{1, 1, 2, 3}, data)

	data = []float64{1, 2, 3, 4}
	src = &Vector[float64]{data: data[1:]}
	Evaluate(OpAdd, data[:3], Expr[float64](Scale[float64](2, src)))
	assert.Equal(t, []float64{5, 8, 11, 4}, data)
}

func TestNoAliasOption(t *testing.T) {
	x := VectorOf(1.0, 2)
	y := NewVector[float64](2)
	y.Assign(Add[float64](x, x), WithNoAlias())
	assert.Equal(t, []float64{2, 4}, y.Data())
}

func TestEvaluateDestinationLength(t *testing.T) {
	x := VectorOf(1.0, 2, 3)
	requirePanicsWith(t, ErrShape, func() { Evaluate(OpAssign, make([]float64, 2), Expr[float64](x)) })
	requirePanicsWith(t, ErrShape, func() { Evaluate(OpAssign, make([]float64, 4), Expr[float64](x)) })
	assert.Panics(t, func() { Evaluate(Op(7), make([]float64, 3), Expr[float64](x)) })

	empty := NewVector[float64](0)
	Evaluate(OpAssign, nil, Expr[float64](Scale[float64](2, empty)))
}

func TestIntegerEvaluation(t *testing.T) {
	a := mat([]int{1, 2, 3}, []int{4, 5, 6})
	x := VectorOf(-1, 0, 2)
	y := NewVectorFromExpr[int](MatVec[int](a, x))
	assert.Equal(t, []int{5, 8}, y.Data())

	y.MulAssign(MatVec[int](a, x))
	y.DivAssign(MatVec[int](a, x))
	assert.Equal(t, []int{5, 8}, y.Data())

	u := VectorOf[uint8](250, 3)
	u.AddAssign(VectorOf[uint8](10, 1))
	assert.Equal(t, []uint8{4, 4}, u.Data(), "unsigned arithmetic wraps")
}

package linalg

import "github.com/cwbudde/algo-linalg/seq"

type form int

const (
	formExprs       form = iota // e ∘ e
	formScalarLeft              // a ∘ e
	formScalarRight             // e ∘ a
)

// Binary combines two operands elementwise. One of the operands may be a
// scalar, in which case it is applied to every element of the other.
type Binary[T Scalar] struct {
	lhs, rhs Expr[T]
	scalar   T
	form     form
	fn       Func
	f        func(T, T) T
	cat      Category
}

func newBinary[T Scalar](lhs, rhs Expr[T], fn Func, f func(T, T) T, op string) *Binary[T] {
	if lhs.Shape() != rhs.Shape() {
		panicShape("%v %s %v", lhs.Shape(), op, rhs.Shape())
	}
	b := &Binary[T]{lhs: lhs, rhs: rhs, form: formExprs, fn: fn, f: f}
	b.cat = classifyBinary(b)
	return b
}

func newScalarLeft[T Scalar](a T, e Expr[T], fn Func, f func(T, T) T) *Binary[T] {
	b := &Binary[T]{rhs: e, scalar: a, form: formScalarLeft, fn: fn, f: f}
	b.cat = classifyBinary(b)
	return b
}

func newScalarRight[T Scalar](e Expr[T], a T, fn Func, f func(T, T) T) *Binary[T] {
	b := &Binary[T]{lhs: e, scalar: a, form: formScalarRight, fn: fn, f: f}
	b.cat = classifyBinary(b)
	return b
}

func add[T Scalar](x, y T) T { return x + y }
func sub[T Scalar](x, y T) T { return x - y }
func mul[T Scalar](x, y T) T { return x * y }
func div[T Scalar](x, y T) T { return x / y }

// Add returns a + b.
func Add[T Scalar](a, b Expr[T]) *Binary[T] { return newBinary(a, b, FuncAdd, add[T], "+") }

// Sub returns a - b.
func Sub[T Scalar](a, b Expr[T]) *Binary[T] { return newBinary(a, b, FuncSub, sub[T], "-") }

// MulElem returns the elementwise product of a and b.
func MulElem[T Scalar](a, b Expr[T]) *Binary[T] { return newBinary(a, b, FuncMul, mul[T], ".*") }

// DivElem returns the elementwise quotient of a and b.
func DivElem[T Scalar](a, b Expr[T]) *Binary[T] { return newBinary(a, b, FuncDiv, div[T], "./") }

// Apply2 returns f(x, y) for every pair of corresponding elements.
func Apply2[T Scalar](a, b Expr[T], f func(T, T) T) *Binary[T] {
	return newBinary(a, b, FuncCustom, f, "∘")
}

// Scale returns a*e.
func Scale[T Scalar](a T, e Expr[T]) *Binary[T] { return newScalarLeft(a, e, FuncMul, mul[T]) }

// ScalarSub returns a-e.
func ScalarSub[T Scalar](a T, e Expr[T]) *Binary[T] { return newScalarLeft(a, e, FuncSub, sub[T]) }

// ScalarDiv returns a/e elementwise.
func ScalarDiv[T Scalar](a T, e Expr[T]) *Binary[T] { return newScalarLeft(a, e, FuncDiv, div[T]) }

// MulScalar returns e*a.
func MulScalar[T Scalar](e Expr[T], a T) *Binary[T] { return newScalarRight(e, a, FuncMul, mul[T]) }

// DivScalar returns e/a.
func DivScalar[T Scalar](e Expr[T], a T) *Binary[T] { return newScalarRight(e, a, FuncDiv, div[T]) }

// AddScalar returns e+a.
func AddScalar[T Scalar](e Expr[T], a T) *Binary[T] { return newScalarRight(e, a, FuncAdd, add[T]) }

// SubScalar returns e-a.
func SubScalar[T Scalar](e Expr[T], a T) *Binary[T] { return newScalarRight(e, a, FuncSub, sub[T]) }

// Func returns the function tag.
func (b *Binary[T]) Func() Func { return b.fn }

// Scalar returns the scalar operand, if any.
func (b *Binary[T]) Scalar() (T, bool) { return b.scalar, b.form != formExprs }

// Operands returns the expression operands. In the scalar forms one of them
// is nil.
func (b *Binary[T]) Operands() (lhs, rhs Expr[T]) { return b.lhs, b.rhs }

// operand returns the expression side of a scalar form.
func (b *Binary[T]) operand() Expr[T] {
	if b.form == formScalarLeft {
		return b.rhs
	}
	return b.lhs
}

func (b *Binary[T]) Shape() Shape {
	if b.form == formExprs {
		return b.lhs.Shape()
	}
	return b.operand().Shape()
}

func (b *Binary[T]) Size() int { return b.Shape().Size() }

func (b *Binary[T]) Kind() Kind {
	if b.form == formExprs {
		return b.lhs.Kind()
	}
	return b.operand().Kind()
}

func (b *Binary[T]) Category() Category { return b.cat }

func (b *Binary[T]) Begin() seq.Iterator[T] {
	switch b.form {
	case formScalarLeft:
		return b.mapLeft(b.rhs.Begin())
	case formScalarRight:
		return b.mapRight(b.lhs.Begin())
	}
	return seq.NewMap2(b.lhs.Begin(), b.rhs.Begin(), b.f)
}

func (b *Binary[T]) End() seq.Iterator[T] {
	switch b.form {
	case formScalarLeft:
		return b.mapLeft(b.rhs.End())
	case formScalarRight:
		return b.mapRight(b.lhs.End())
	}
	return seq.NewMap2(b.lhs.End(), b.rhs.End(), b.f)
}

func (b *Binary[T]) mapLeft(it seq.Iterator[T]) seq.Iterator[T] {
	a, f := b.scalar, b.f
	return seq.NewMap(it, func(x T) T { return f(a, x) })
}

func (b *Binary[T]) mapRight(it seq.Iterator[T]) seq.Iterator[T] {
	a, f := b.scalar, b.f
	return seq.NewMap(it, func(x T) T { return f(x, a) })
}

func (b *Binary[T]) storage(visit func([]T)) {
	if b.lhs != nil {
		b.lhs.storage(visit)
	}
	if b.rhs != nil {
		b.rhs.storage(visit)
	}
}

func (b *Binary[T]) pointwise() bool {
	return (b.lhs == nil || b.lhs.pointwise()) && (b.rhs == nil || b.rhs.pointwise())
}

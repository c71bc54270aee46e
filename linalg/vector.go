package linalg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cwbudde/algo-linalg/seq"
)

// Vector is a dense column vector that owns its storage.
type Vector[T Scalar] struct {
	data []T
}

// NewVector returns a zeroed vector of length n.
func NewVector[T Scalar](n int) *Vector[T] {
	if n < 0 {
		panicBadShape("vector length %d", n)
	}
	return &Vector[T]{data: make([]T, n)}
}

// VectorOf returns a vector holding a copy of values.
func VectorOf[T Scalar](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// NewVectorFromExpr evaluates a one-dimensional expression into a new vector.
func NewVectorFromExpr[T Scalar](e Expr[T], opts ...EvalOption) *Vector[T] {
	if !e.Shape().IsVector() {
		panicShape("vector from %v expression", e.Shape())
	}
	v := &Vector[T]{data: make([]T, e.Size())}
	Evaluate(OpAssign, v.data, e, opts...)
	return v
}

func (v *Vector[T]) Len() int           { return len(v.data) }
func (v *Vector[T]) Shape() Shape       { return Shape{Rows: len(v.data), Cols: 1} }
func (v *Vector[T]) Size() int          { return len(v.data) }
func (v *Vector[T]) Kind() Kind         { return VectorKind }
func (v *Vector[T]) Category() Category { return CategoryNormal }

func (v *Vector[T]) Begin() seq.Iterator[T] { return seq.NewSlice(v.data, 0) }
func (v *Vector[T]) End() seq.Iterator[T]   { return seq.NewSlice(v.data, len(v.data)) }

func (v *Vector[T]) storage(visit func([]T)) { visit(v.data) }
func (v *Vector[T]) pointwise() bool         { return true }

// At returns element i.
func (v *Vector[T]) At(i int) T {
	v.check(i)
	return v.data[i]
}

// Set stores x at element i.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i)
	v.data[i] = x
}

func (v *Vector[T]) check(i int) {
	if i < 0 || i >= len(v.data) {
		panicIndex("element %d of vector of length %d", i, len(v.data))
	}
}

// Data returns the backing slice. Writes through it modify v.
func (v *Vector[T]) Data() []T { return v.data }

// T returns v as a 1×n row.
func (v *Vector[T]) T() *TransposeExpr[T] { return Transpose[T](v) }

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] { return &Vector[T]{data: slices.Clone(v.data)} }

// Equal reports whether v and o have the same length and elements.
func (v *Vector[T]) Equal(o *Vector[T]) bool { return slices.Equal(v.data, o.data) }

func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Assign evaluates e into v.
func (v *Vector[T]) Assign(e Expr[T], opts ...EvalOption) { v.eval(OpAssign, e, opts) }

// AddAssign adds e to v elementwise.
func (v *Vector[T]) AddAssign(e Expr[T], opts ...EvalOption) { v.eval(OpAdd, e, opts) }

// SubAssign subtracts e from v elementwise.
func (v *Vector[T]) SubAssign(e Expr[T], opts ...EvalOption) { v.eval(OpSub, e, opts) }

// MulAssign multiplies v by e elementwise.
func (v *Vector[T]) MulAssign(e Expr[T], opts ...EvalOption) { v.eval(OpMul, e, opts) }

// DivAssign divides v by e elementwise.
func (v *Vector[T]) DivAssign(e Expr[T], opts ...EvalOption) { v.eval(OpDiv, e, opts) }

func (v *Vector[T]) eval(op Op, e Expr[T], opts []EvalOption) {
	if !e.Shape().IsVector() || e.Size() != len(v.data) {
		panicShape("%v %s %v", v.Shape(), op, e.Shape())
	}
	Evaluate(op, v.data, e, opts...)
}

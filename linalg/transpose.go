package linalg

import "github.com/cwbudde/algo-linalg/seq"

// TransposeExpr is the logical transpose of an expression. Vector-kind
// operands keep their own sequence since their element order does not
// change; matrices are walked column by column.
type TransposeExpr[T Scalar] struct {
	e Expr[T]
}

// Transpose returns the transpose of e. Nothing is copied.
func Transpose[T Scalar](e Expr[T]) *TransposeExpr[T] {
	return &TransposeExpr[T]{e: e}
}

// Operand returns the expression being transposed.
func (t *TransposeExpr[T]) Operand() Expr[T] { return t.e }

// T returns the transpose of t.
func (t *TransposeExpr[T]) T() *TransposeExpr[T] { return Transpose[T](t) }

func (t *TransposeExpr[T]) Shape() Shape       { return t.e.Shape().T() }
func (t *TransposeExpr[T]) Size() int          { return t.e.Size() }
func (t *TransposeExpr[T]) Kind() Kind         { return t.e.Kind() }
func (t *TransposeExpr[T]) Category() Category { return CategoryNormal }

func (t *TransposeExpr[T]) Begin() seq.Iterator[T] {
	if t.e.Kind() == VectorKind {
		return t.e.Begin()
	}
	s := t.e.Shape()
	return seq.NewTransposed(t.e.Begin(), s.Rows, s.Cols, 0)
}

func (t *TransposeExpr[T]) End() seq.Iterator[T] {
	if t.e.Kind() == VectorKind {
		return t.e.End()
	}
	s := t.e.Shape()
	return seq.NewTransposed(t.e.Begin(), s.Rows, s.Cols, s.Size())
}

func (t *TransposeExpr[T]) storage(visit func([]T)) { t.e.storage(visit) }

func (t *TransposeExpr[T]) pointwise() bool {
	return t.e.Kind() == VectorKind && t.e.pointwise()
}

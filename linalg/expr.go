package linalg

import "github.com/cwbudde/algo-linalg/seq"

// Kind distinguishes vector-like expressions from matrices. It is a property
// of the expression, not of its memory layout: a row view is a vector even
// though it lives inside a matrix.
type Kind int

const (
	VectorKind Kind = iota
	MatrixKind
)

func (k Kind) String() string {
	if k == VectorKind {
		return "vector"
	}
	return "matrix"
}

// Expr is a lazily evaluated vector or matrix expression. Its elements are
// exposed as a row-major sequence from Begin to End.
//
// Only types in this package implement Expr.
type Expr[T Scalar] interface {
	Shape() Shape
	Size() int
	Kind() Kind

	// Category is the evaluation strategy chosen when the node was built.
	Category() Category

	Begin() seq.Iterator[T]
	End() seq.Iterator[T]

	// storage calls visit with the backing slice of every container the
	// expression reads.
	storage(visit func([]T))

	// pointwise reports whether element i of the expression reads only
	// element i of each backing slice.
	pointwise() bool
}

// Collect evaluates e into a fresh slice in row-major order.
func Collect[T Scalar](e Expr[T], opts ...EvalOption) []T {
	out := make([]T, e.Size())
	Evaluate(OpAssign, out, e, opts...)
	return out
}

// denseData returns the backing slice of a container leaf.
func denseData[T Scalar](e Expr[T]) ([]T, bool) {
	switch d := e.(type) {
	case *Vector[T]:
		return d.data, true
	case *Matrix[T]:
		return d.data, true
	}
	return nil, false
}

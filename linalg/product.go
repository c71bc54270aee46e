package linalg

import "github.com/cwbudde/algo-linalg/seq"

// Product is the matrix product of two expressions. Each element is the inner
// product of a row of the left operand with a column of the right operand
// and is recomputed every time it is read.
type Product[T Scalar] struct {
	a, b Expr[T]
	cat  Category
}

// MatVec returns the matrix-vector product m*v.
func MatVec[T Scalar](m, v Expr[T]) *Product[T] {
	return MatMul(m, v)
}

// MatMul returns the matrix product a*b. The inner dimensions must agree.
func MatMul[T Scalar](a, b Expr[T]) *Product[T] {
	if a.Shape().Cols != b.Shape().Rows {
		panicShape("%v * %v", a.Shape(), b.Shape())
	}
	p := &Product[T]{a: a, b: b}
	p.cat = classifyProduct(p)
	return p
}

// Operands returns the left and right factors.
func (p *Product[T]) Operands() (a, b Expr[T]) { return p.a, p.b }

func (p *Product[T]) Shape() Shape {
	return Shape{Rows: p.a.Shape().Rows, Cols: p.b.Shape().Cols}
}

func (p *Product[T]) Size() int { return p.Shape().Size() }

// Kind is VectorKind only when the right operand is vector-kind and the
// result is one-dimensional. An outer product is a matrix.
func (p *Product[T]) Kind() Kind {
	if p.b.Kind() == VectorKind && p.Shape().IsVector() {
		return VectorKind
	}
	return MatrixKind
}

func (p *Product[T]) Category() Category { return p.cat }

func (p *Product[T]) Begin() seq.Iterator[T] { return p.iter(0) }
func (p *Product[T]) End() seq.Iterator[T]   { return p.iter(p.Size()) }

func (p *Product[T]) iter(pos int) *productIter[T] {
	return &productIter[T]{
		a:     p.a.Begin(),
		b:     p.b.Begin(),
		inner: p.a.Shape().Cols,
		cols:  p.b.Shape().Cols,
		pos:   pos,
	}
}

func (p *Product[T]) storage(visit func([]T)) {
	p.a.storage(visit)
	p.b.storage(visit)
}

func (p *Product[T]) pointwise() bool { return false }

// productIter walks the row-major elements of a product. a and b stay at the
// beginning of their operands and are only read through At.
type productIter[T Scalar] struct {
	a, b  seq.Iterator[T]
	inner int
	cols  int
	pos   int
}

func (it *productIter[T]) Value() T { return it.At(0) }

func (it *productIter[T]) At(n int) T {
	k := it.pos + n
	if it.cols == 0 || k < 0 {
		panic(seq.ErrOutOfRange)
	}
	r, c := k/it.cols, k%it.cols
	var sum T
	for j := 0; j < it.inner; j++ {
		sum += it.a.At(r*it.inner+j) * it.b.At(j*it.cols+c)
	}
	return sum
}

func (it *productIter[T]) Next()         { it.pos++ }
func (it *productIter[T]) Prev()         { it.pos-- }
func (it *productIter[T]) Advance(n int) { it.pos += n }

func (it *productIter[T]) Equal(other seq.Iterator[T]) bool {
	return it.pos == asProduct(other).pos
}

func (it *productIter[T]) Distance(other seq.Iterator[T]) int {
	return asProduct(other).pos - it.pos
}

func (it *productIter[T]) Clone() seq.Iterator[T] {
	c := *it
	return &c
}

func asProduct[T Scalar](other seq.Iterator[T]) *productIter[T] {
	o, ok := other.(*productIter[T])
	if !ok {
		panic(seq.ErrIncompatible)
	}
	return o
}

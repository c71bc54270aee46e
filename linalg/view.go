package linalg

import "github.com/cwbudde/algo-linalg/seq"

// RowView is a window onto one row of a matrix. It is a 1×C vector
// expression; writes through it modify the matrix.
type RowView[T Scalar] struct {
	m   *Matrix[T]
	row int
}

func (r *RowView[T]) Len() int           { return r.m.cols }
func (r *RowView[T]) Shape() Shape       { return Shape{Rows: 1, Cols: r.m.cols} }
func (r *RowView[T]) Size() int          { return r.m.cols }
func (r *RowView[T]) Kind() Kind         { return VectorKind }
func (r *RowView[T]) Category() Category { return CategoryNormal }

func (r *RowView[T]) Begin() seq.Iterator[T] { return seq.NewSlice(r.m.data, r.row*r.m.cols) }
func (r *RowView[T]) End() seq.Iterator[T]   { return seq.NewSlice(r.m.data, (r.row+1)*r.m.cols) }

func (r *RowView[T]) storage(visit func([]T)) { visit(r.m.data) }
func (r *RowView[T]) pointwise() bool         { return false }

// Index returns the row number.
func (r *RowView[T]) Index() int { return r.row }

// At returns element j of the row.
func (r *RowView[T]) At(j int) T { return r.m.At(r.row, j) }

// Set stores x at element j of the row.
func (r *RowView[T]) Set(j int, x T) { r.m.Set(r.row, j, x) }

// T returns the row as a C×1 column.
func (r *RowView[T]) T() *TransposeExpr[T] { return Transpose[T](r) }

// Slice returns a copy of the row.
func (r *RowView[T]) Slice() []T { return seq.Collect(r.Begin(), r.End()) }

// Fill sets every element of the row to x.
func (r *RowView[T]) Fill(x T) { r.apply(func(T) T { return x }) }

// AddScalar adds a to every element of the row.
func (r *RowView[T]) AddScalar(a T) { r.apply(func(x T) T { return x + a }) }

// SubScalar subtracts a from every element of the row.
func (r *RowView[T]) SubScalar(a T) { r.apply(func(x T) T { return x - a }) }

// MulScalar multiplies every element of the row by a.
func (r *RowView[T]) MulScalar(a T) { r.apply(func(x T) T { return x * a }) }

// DivScalar divides every element of the row by a.
func (r *RowView[T]) DivScalar(a T) { r.apply(func(x T) T { return x / a }) }

func (r *RowView[T]) apply(f func(T) T) { seq.Transform(r.Begin(), r.End(), f) }

// ColView is a window onto one column of a matrix. It is an R×1 vector
// expression walked with stride C; writes through it modify the matrix.
type ColView[T Scalar] struct {
	m   *Matrix[T]
	col int
}

func (c *ColView[T]) Len() int           { return c.m.rows }
func (c *ColView[T]) Shape() Shape       { return Shape{Rows: c.m.rows, Cols: 1} }
func (c *ColView[T]) Size() int          { return c.m.rows }
func (c *ColView[T]) Kind() Kind         { return VectorKind }
func (c *ColView[T]) Category() Category { return CategoryNormal }

func (c *ColView[T]) begin() *seq.Strided[T] {
	return seq.NewStrided[T](seq.NewSlice(c.m.data, c.col), c.m.cols, len(c.m.data)-c.col)
}

func (c *ColView[T]) Begin() seq.Iterator[T] { return c.begin() }
func (c *ColView[T]) End() seq.Iterator[T]   { return c.begin().End() }

func (c *ColView[T]) storage(visit func([]T)) { visit(c.m.data) }
func (c *ColView[T]) pointwise() bool         { return false }

// Index returns the column number.
func (c *ColView[T]) Index() int { return c.col }

// At returns element i of the column.
func (c *ColView[T]) At(i int) T { return c.m.At(i, c.col) }

// Set stores x at element i of the column.
func (c *ColView[T]) Set(i int, x T) { c.m.Set(i, c.col, x) }

// T returns the column as a 1×R row.
func (c *ColView[T]) T() *TransposeExpr[T] { return Transpose[T](c) }

// Slice returns a copy of the column.
func (c *ColView[T]) Slice() []T { return seq.Collect(c.Begin(), c.End()) }

// Fill sets every element of the column to x.
func (c *ColView[T]) Fill(x T) { c.apply(func(T) T { return x }) }

// AddScalar adds a to every element of the column.
func (c *ColView[T]) AddScalar(a T) { c.apply(func(x T) T { return x + a }) }

// SubScalar subtracts a from every element of the column.
func (c *ColView[T]) SubScalar(a T) { c.apply(func(x T) T { return x - a }) }

// MulScalar multiplies every element of the column by a.
func (c *ColView[T]) MulScalar(a T) { c.apply(func(x T) T { return x * a }) }

// DivScalar divides every element of the column by a.
func (c *ColView[T]) DivScalar(a T) { c.apply(func(x T) T { return x / a }) }

func (c *ColView[T]) apply(f func(T) T) { seq.Transform(c.Begin(), c.End(), f) }

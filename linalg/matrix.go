package linalg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cwbudde/algo-linalg/seq"
)

// Matrix is a dense row-major matrix that owns its storage.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zeroed rows×cols matrix.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panicBadShape("matrix dimensions %d×%d", rows, cols)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// NewMatrixFromData returns a rows×cols matrix holding a copy of data, which
// must be row-major with exactly rows*cols elements.
func NewMatrixFromData[T Scalar](rows, cols int, data []T) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	if len(data) != len(m.data) {
		panicBadShape("%d values for %d×%d matrix", len(data), rows, cols)
	}
	copy(m.data, data)
	return m
}

// NewMatrixFromRows builds a matrix from equal-length rows.
func NewMatrixFromRows[T Scalar](rows [][]T) *Matrix[T] {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewMatrix[T](len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			panicBadShape("row %d has %d values, want %d", i, len(r), cols)
		}
		copy(m.data[i*cols:], r)
	}
	return m
}

// NewMatrixFromExpr evaluates e into a new matrix of the same shape.
func NewMatrixFromExpr[T Scalar](e Expr[T], opts ...EvalOption) *Matrix[T] {
	s := e.Shape()
	m := &Matrix[T]{rows: s.Rows, cols: s.Cols, data: make([]T, s.Size())}
	Evaluate(OpAssign, m.data, e, opts...)
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

func (m *Matrix[T]) Rows() int          { return m.rows }
func (m *Matrix[T]) Cols() int          { return m.cols }
func (m *Matrix[T]) Shape() Shape       { return Shape{Rows: m.rows, Cols: m.cols} }
func (m *Matrix[T]) Size() int          { return len(m.data) }
func (m *Matrix[T]) Kind() Kind         { return MatrixKind }
func (m *Matrix[T]) Category() Category { return CategoryNormal }

func (m *Matrix[T]) Begin() seq.Iterator[T] { return seq.NewSlice(m.data, 0) }
func (m *Matrix[T]) End() seq.Iterator[T]   { return seq.NewSlice(m.data, len(m.data)) }

func (m *Matrix[T]) storage(visit func([]T)) { visit(m.data) }
func (m *Matrix[T]) pointwise() bool         { return true }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores x at row i, column j.
func (m *Matrix[T]) Set(i, j int, x T) {
	m.check(i, j)
	m.data[i*m.cols+j] = x
}

func (m *Matrix[T]) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panicIndex("element (%d, %d) of %v matrix", i, j, m.Shape())
	}
}

// Row returns a view of row i.
func (m *Matrix[T]) Row(i int) *RowView[T] {
	if i < 0 || i >= m.rows {
		panicIndex("row %d of %v matrix", i, m.Shape())
	}
	return &RowView[T]{m: m, row: i}
}

// Col returns a view of column j.
func (m *Matrix[T]) Col(j int) *ColView[T] {
	if j < 0 || j >= m.cols {
		panicIndex("column %d of %v matrix", j, m.Shape())
	}
	return &ColView[T]{m: m, col: j}
}

// T returns the logical transpose of m.
func (m *Matrix[T]) T() *TransposeExpr[T] { return Transpose[T](m) }

// Data returns the row-major backing slice. Writes through it modify m.
func (m *Matrix[T]) Data() []T { return m.data }

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j, x := range m.data[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, x)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Assign evaluates e into m.
func (m *Matrix[T]) Assign(e Expr[T], opts ...EvalOption) { m.eval(OpAssign, e, opts) }

// AddAssign adds e to m elementwise.
func (m *Matrix[T]) AddAssign(e Expr[T], opts ...EvalOption) { m.eval(OpAdd, e, opts) }

// SubAssign subtracts e from m elementwise.
func (m *Matrix[T]) SubAssign(e Expr[T], opts ...EvalOption) { m.eval(OpSub, e, opts) }

// MulAssign multiplies m by e elementwise.
func (m *Matrix[T]) MulAssign(e Expr[T], opts ...EvalOption) { m.eval(OpMul, e, opts) }

// DivAssign divides m by e elementwise.
func (m *Matrix[T]) DivAssign(e Expr[T], opts ...EvalOption) { m.eval(OpDiv, e, opts) }

func (m *Matrix[T]) eval(op Op, e Expr[T], opts []EvalOption) {
	if e.Shape() != m.Shape() {
		panicShape("%v %s %v", m.Shape(), op, e.Shape())
	}
	Evaluate(op, m.data, e, opts...)
}

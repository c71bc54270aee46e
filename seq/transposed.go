package seq

// TransposeOffset maps logical index k of the transpose of a rows×cols
// row-major buffer to its physical offset: (k mod rows)*cols + k div rows.
//
// Indices at or beyond rows*cols map to rows*cols (one past the end) and
// negative indices map to -1, so that end sentinels and reverse iteration
// stay well-formed.
func TransposeOffset(k, rows, cols int) int {
	n := rows * cols
	switch {
	case k >= n:
		return n
	case k < 0:
		return -1
	}
	return (k%rows)*cols + k/rows
}

// Transposed walks an R×C row-major sequence in column-major order, which is
// the row-major order of its transpose.
//
// The base cursor stays at the beginning of the operand; positions are
// tracked by the logical index only.
type Transposed[T any] struct {
	base       Iterator[T]
	rows, cols int
	k          int
}

// NewTransposed returns a cursor at logical index k over the rows×cols
// operand starting at base.
func NewTransposed[T any](base Iterator[T], rows, cols, k int) *Transposed[T] {
	return &Transposed[T]{base: base, rows: rows, cols: cols, k: k}
}

// Index returns the logical index of the cursor.
func (t *Transposed[T]) Index() int { return t.k }

func (t *Transposed[T]) offset(k int) int {
	off := TransposeOffset(k, t.rows, t.cols)
	if off < 0 || off >= t.rows*t.cols {
		panic(ErrOutOfRange)
	}
	return off
}

func (t *Transposed[T]) Value() T      { return t.base.At(t.offset(t.k)) }
func (t *Transposed[T]) At(n int) T    { return t.base.At(t.offset(t.k + n)) }
func (t *Transposed[T]) Next()         { t.k++ }
func (t *Transposed[T]) Prev()         { t.k-- }
func (t *Transposed[T]) Advance(n int) { t.k += n }

func (t *Transposed[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*Transposed[T])
	return ok && o.k == t.k
}

func (t *Transposed[T]) Distance(other Iterator[T]) int {
	return same[*Transposed[T]](other).k - t.k
}

func (t *Transposed[T]) Clone() Iterator[T] {
	c := *t
	return &c
}

func (t *Transposed[T]) Set(v T) {
	t.writer().SetAt(t.offset(t.k), v)
}

func (t *Transposed[T]) SetAt(n int, v T) {
	t.writer().SetAt(t.offset(t.k+n), v)
}

func (t *Transposed[T]) writer() Writer[T] {
	w, ok := t.base.(Writer[T])
	if !ok {
		panic(ErrReadOnly)
	}
	return w
}

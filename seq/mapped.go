package seq

// Map applies f to each element of an underlying sequence. Values are
// computed on every dereference and returned by value.
type Map[T, U any] struct {
	it Iterator[T]
	f  func(T) U
}

// NewMap returns a cursor yielding f(x) for each x of it.
func NewMap[T, U any](it Iterator[T], f func(T) U) *Map[T, U] {
	return &Map[T, U]{it: it, f: f}
}

func (m *Map[T, U]) Value() U      { return m.f(m.it.Value()) }
func (m *Map[T, U]) At(n int) U    { return m.f(m.it.At(n)) }
func (m *Map[T, U]) Next()         { m.it.Next() }
func (m *Map[T, U]) Prev()         { m.it.Prev() }
func (m *Map[T, U]) Advance(n int) { m.it.Advance(n) }

func (m *Map[T, U]) Equal(other Iterator[U]) bool {
	o, ok := other.(*Map[T, U])
	return ok && m.it.Equal(o.it)
}

func (m *Map[T, U]) Distance(other Iterator[U]) int {
	return m.it.Distance(same[*Map[T, U]](other).it)
}

func (m *Map[T, U]) Clone() Iterator[U] {
	return &Map[T, U]{it: m.it.Clone(), f: m.f}
}

// Map2 applies f to pairs of elements taken in lock-step from two sequences.
type Map2[A, B, U any] struct {
	a Iterator[A]
	b Iterator[B]
	f func(A, B) U
}

// NewMap2 returns a cursor yielding f(x, y) for each pair of a and b.
func NewMap2[A, B, U any](a Iterator[A], b Iterator[B], f func(A, B) U) *Map2[A, B, U] {
	return &Map2[A, B, U]{a: a, b: b, f: f}
}

func (m *Map2[A, B, U]) Value() U   { return m.f(m.a.Value(), m.b.Value()) }
func (m *Map2[A, B, U]) At(n int) U { return m.f(m.a.At(n), m.b.At(n)) }

func (m *Map2[A, B, U]) Next() {
	m.a.Next()
	m.b.Next()
}

func (m *Map2[A, B, U]) Prev() {
	m.a.Prev()
	m.b.Prev()
}

func (m *Map2[A, B, U]) Advance(n int) {
	m.a.Advance(n)
	m.b.Advance(n)
}

func (m *Map2[A, B, U]) Equal(other Iterator[U]) bool {
	o, ok := other.(*Map2[A, B, U])
	return ok && m.a.Equal(o.a) && m.b.Equal(o.b)
}

func (m *Map2[A, B, U]) Distance(other Iterator[U]) int {
	return m.a.Distance(same[*Map2[A, B, U]](other).a)
}

func (m *Map2[A, B, U]) Clone() Iterator[U] {
	return &Map2[A, B, U]{a: m.a.Clone(), b: m.b.Clone(), f: m.f}
}

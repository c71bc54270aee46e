package seq

// Slice is a contiguous cursor over a []T.
type Slice[T any] struct {
	data []T
	pos  int
}

// NewSlice returns a cursor over data positioned at pos.
func NewSlice[T any](data []T, pos int) *Slice[T] {
	return &Slice[T]{data: data, pos: pos}
}

// SliceRange returns the begin and end cursors of data.
func SliceRange[T any](data []T) (begin, end *Slice[T]) {
	return &Slice[T]{data: data}, &Slice[T]{data: data, pos: len(data)}
}

// Pos returns the current index into the underlying slice.
func (s *Slice[T]) Pos() int { return s.pos }

func (s *Slice[T]) Value() T         { return s.data[s.pos] }
func (s *Slice[T]) At(n int) T       { return s.data[s.pos+n] }
func (s *Slice[T]) Next()            { s.pos++ }
func (s *Slice[T]) Prev()            { s.pos-- }
func (s *Slice[T]) Advance(n int)    { s.pos += n }
func (s *Slice[T]) Set(v T)          { s.data[s.pos] = v }
func (s *Slice[T]) SetAt(n int, v T) { s.data[s.pos+n] = v }

func (s *Slice[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*Slice[T])
	return ok && o.pos == s.pos
}

func (s *Slice[T]) Distance(other Iterator[T]) int {
	return same[*Slice[T]](other).pos - s.pos
}

func (s *Slice[T]) Clone() Iterator[T] {
	c := *s
	return &c
}

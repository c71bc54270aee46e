package seq

// Strided visits every step-th element of a base sequence.
//
// The cursor tracks its distance to the end of the base range and from the
// beginning. Next advances by min(step, toEnd), so the last step lands exactly
// on the end sentinel even when the range length is not a multiple of step.
// Prev steps back by fromBegin % step (or a full step when that is zero),
// which undoes a clamped final step. A range of N elements is covered in
// ceil(N/step) steps in both directions.
type Strided[T any] struct {
	base      Iterator[T]
	step      int
	toEnd     int
	fromBegin int
}

// NewStrided returns a strided cursor starting at base. n is the number of
// base elements between base and the end of the underlying range.
func NewStrided[T any](base Iterator[T], step, n int) *Strided[T] {
	if step <= 0 {
		panic(ErrStep)
	}
	if n < 0 {
		n = 0
	}
	return &Strided[T]{base: base, step: step, toEnd: n}
}

// End returns the end sentinel matching s.
func (s *Strided[T]) End() *Strided[T] {
	base := s.base.Clone()
	base.Advance(s.toEnd)
	return &Strided[T]{
		base:      base,
		step:      s.step,
		fromBegin: s.fromBegin + s.toEnd,
	}
}

// Step returns the stride.
func (s *Strided[T]) Step() int { return s.step }

func (s *Strided[T]) index() int { return ceilDiv(s.fromBegin, s.step) }

func (s *Strided[T]) move(d int) {
	s.base.Advance(d)
	s.fromBegin += d
	s.toEnd -= d
}

func (s *Strided[T]) Value() T   { return s.base.Value() }
func (s *Strided[T]) At(n int) T { return s.base.At(n * s.step) }

func (s *Strided[T]) Next() {
	s.move(min(s.step, s.toEnd))
}

func (s *Strided[T]) Prev() {
	back := s.fromBegin % s.step
	if back <= 0 {
		back = s.step
	}
	s.move(-back)
}

func (s *Strided[T]) Advance(n int) {
	if n == 0 {
		return
	}
	total := s.fromBegin + s.toEnd
	pos := (s.index() + n) * s.step
	if pos > total {
		pos = total
	}
	s.move(pos - s.fromBegin)
}

// Equal reports whether the base positions are equal.
func (s *Strided[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*Strided[T])
	return ok && s.base.Equal(o.base)
}

func (s *Strided[T]) Distance(other Iterator[T]) int {
	return same[*Strided[T]](other).index() - s.index()
}

func (s *Strided[T]) Clone() Iterator[T] {
	c := *s
	c.base = s.base.Clone()
	return &c
}

func (s *Strided[T]) Set(v T) {
	s.writer().Set(v)
}

func (s *Strided[T]) SetAt(n int, v T) {
	s.writer().SetAt(n*s.step, v)
}

func (s *Strided[T]) writer() Writer[T] {
	w, ok := s.base.(Writer[T])
	if !ok {
		panic(ErrReadOnly)
	}
	return w
}

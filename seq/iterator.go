package seq

import "errors"

var (
	// ErrOutOfRange is raised when a sentinel position is dereferenced.
	ErrOutOfRange = errors.New("seq: position out of range")

	// ErrReadOnly is raised when writing through an iterator whose base
	// does not support writes.
	ErrReadOnly = errors.New("seq: iterator is read-only")

	// ErrIncompatible is raised when comparing iterators of different adaptors.
	ErrIncompatible = errors.New("seq: incompatible iterators")

	// ErrStep is raised when a strided sequence is built with a non-positive step.
	ErrStep = errors.New("seq: step must be positive")
)

// Iterator is a random-access read cursor over a sequence of T.
//
// Iterators are mutable cursors: Next, Prev and Advance move the receiver.
// Use Clone to obtain an independent copy.
type Iterator[T any] interface {
	// Value returns the element at the current position.
	Value() T

	// At returns the element n positions away from the current position
	// without moving the cursor.
	At(n int) T

	// Next moves the cursor one position forward.
	Next()

	// Prev moves the cursor one position backward.
	Prev()

	// Advance moves the cursor n positions (n may be negative).
	Advance(n int)

	// Equal reports whether both cursors refer to the same position.
	Equal(other Iterator[T]) bool

	// Distance returns the number of Next steps from the receiver to other.
	Distance(other Iterator[T]) int

	// Clone returns an independent cursor at the same position.
	Clone() Iterator[T]
}

// Writer is an Iterator that can store values through the cursor.
type Writer[T any] interface {
	Iterator[T]

	// Set stores v at the current position.
	Set(v T)

	// SetAt stores v n positions away from the current position.
	SetAt(n int, v T)
}

// Count returns the number of positions visited walking from begin to end.
func Count[T any](begin, end Iterator[T]) int {
	n := 0
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		n++
	}
	return n
}

// Collect copies the elements in [begin, end) into a new slice.
func Collect[T any](begin, end Iterator[T]) []T {
	var out []T
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// ForEach calls fn for each element in [begin, end).
func ForEach[T any](begin, end Iterator[T], fn func(T)) {
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		fn(it.Value())
	}
}

// Transform rewrites each element in [begin, end) with fn(element).
// begin must be a Writer.
func Transform[T any](begin, end Iterator[T], fn func(T) T) {
	it := begin.Clone()
	w, ok := it.(Writer[T])
	if !ok {
		panic(ErrReadOnly)
	}
	for ; !w.Equal(end); w.Next() {
		w.Set(fn(w.Value()))
	}
}

func same[I any](other any) I {
	o, ok := other.(I)
	if !ok {
		panic(ErrIncompatible)
	}
	return o
}

func ceilDiv(a, b int) int {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return -((-a) / b)
}

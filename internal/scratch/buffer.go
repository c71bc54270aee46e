package scratch

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[T any] struct {
	values []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{values: make([]T, length)}
}

// Values returns the underlying slice.
func (b *Buffer[T]) Values() []T {
	return b.values
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.values)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.values)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Contents are unspecified after Resize; call Zero if needed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.values) {
		b.values = b.values[:n]
		return
	}
	b.values = make([]T, n)
}

// Zero sets all elements to the zero value.
func (b *Buffer[T]) Zero() {
	clear(b.values)
}

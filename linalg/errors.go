package linalg

import (
	"errors"
	"fmt"
)

// Panic values raised on violated preconditions. Recovered values wrap one of
// these sentinels and can be matched with errors.Is.
var (
	// ErrShape indicates incompatible operand shapes: unequal shapes for an
	// elementwise operation, mismatched inner dimensions for a product, or a
	// destination that does not match the expression.
	ErrShape = errors.New("linalg: dimension mismatch")

	// ErrIndexRange indicates a row or column index outside the matrix.
	ErrIndexRange = errors.New("linalg: index out of range")

	// ErrBadShape indicates a negative dimension or ragged input rows.
	ErrBadShape = errors.New("linalg: invalid shape")
)

func panicShape(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrShape}, args...)...))
}

func panicIndex(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrIndexRange}, args...)...))
}

func panicBadShape(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrBadShape}, args...)...))
}

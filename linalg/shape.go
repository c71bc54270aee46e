package linalg

import "fmt"

// Shape is a (rows, cols) pair. Vectors are n×1 columns unless transposed.
type Shape struct {
	Rows, Cols int
}

// Size returns the number of elements.
func (s Shape) Size() int { return s.Rows * s.Cols }

// T returns the transposed shape.
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// IsVector reports whether one of the dimensions is 1.
func (s Shape) IsVector() bool { return s.Rows == 1 || s.Cols == 1 }

func (s Shape) String() string { return fmt.Sprintf("%d×%d", s.Rows, s.Cols) }

package linalg

// Scalar is the set of supported element types.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Float is the subset of Scalar with kernel implementations.
type Float interface {
	float32 | float64
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}

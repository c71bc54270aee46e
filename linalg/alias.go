package linalg

import "unsafe"

type overlap int

const (
	overlapNone    overlap = iota
	overlapSame            // identical start and length
	overlapPartial         // any other intersection
)

func overlapOf[T any](a, b []T) overlap {
	if len(a) == 0 || len(b) == 0 {
		return overlapNone
	}
	size := unsafe.Sizeof(a[0])
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	if a0 >= b1 || b0 >= a1 {
		return overlapNone
	}
	if a0 == b0 && len(a) == len(b) {
		return overlapSame
	}
	return overlapPartial
}

// exprOverlap returns the strongest overlap between dst and the storage read
// by e.
func exprOverlap[T Scalar](e Expr[T], dst []T) overlap {
	ov := overlapNone
	e.storage(func(buf []T) {
		ov = max(ov, overlapOf(buf, dst))
	})
	return ov
}

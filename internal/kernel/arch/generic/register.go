package generic

import (
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go implementations with the kernel registry.
//
// The generic kernels define the numerical reference: they accumulate in the
// same order as the generic expression walk, so results agree bit for bit
// with it wherever floating-point associativity is not involved.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Reference: true,
		F32:       Table[float32](),
		F64:       Table[float64](),
	})
}

// Table returns the generic kernel table for T.
func Table[T registry.Float]() registry.Ops[T] {
	return registry.Ops[T]{
		Scal:  Scal[T],
		Axpy:  Axpy[T],
		Axpby: Axpby[T],
		Gemv:  Gemv[T],
		Gemm:  Gemm[T],
		Add:   Add[T],
		Sub:   Sub[T],
		Mul:   Mul[T],
		Div:   Div[T],
		Sqrt:  Sqrt[T],
		Exp:   Exp[T],
		Log:   Log[T],
		Nrm2:  Nrm2[T],
		Dot:   Dot[T],
	}
}

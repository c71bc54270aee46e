// Package gonum implements the kernel operations on top of gonum's BLAS
// packages, with algo-vecmath block kernels for float64 elementwise
// arithmetic.
package gonum

import (
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "gonum",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		F32:       table32(),
		F64:       table64(),
	})
}

// Package registry provides the implementation registry for kernel operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (pure Go reference, gonum BLAS, ...) to coexist. The best implementation for
// the current CPU is selected at runtime by the kernel package.
//
// Implementation packages register themselves via init() functions.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Float is the set of element types the kernels are instantiated for.
type Float interface {
	float32 | float64
}

// Ops is the table of kernel operations for one element type.
//
// All matrices are row-major with unit stride and a leading dimension equal
// to their column count. A beta of zero means the output is not read.
type Ops[T Float] struct {
	// Scal computes x = alpha*x.
	Scal func(n int, alpha T, x []T)

	// Axpy computes y = alpha*x + y.
	Axpy func(n int, alpha T, x, y []T)

	// Axpby computes y = alpha*x + beta*y.
	Axpby func(n int, alpha T, x []T, beta T, y []T)

	// Gemv computes y = alpha*op(A)*x + beta*y for an m×n matrix A, where
	// op(A) is A or its transpose.
	Gemv func(trans bool, m, n int, alpha T, a, x []T, beta T, y []T)

	// Gemm computes C = alpha*op(A)*op(B) + beta*C with C m×n and inner
	// dimension k.
	Gemm func(transA, transB bool, m, n, k int, alpha T, a, b []T, beta T, c []T)

	// Add, Sub, Mul and Div compute z[i] = x[i] op y[i].
	Add func(n int, x, y, z []T)
	Sub func(n int, x, y, z []T)
	Mul func(n int, x, y, z []T)
	Div func(n int, x, y, z []T)

	// Sqrt, Exp and Log compute y[i] = f(x[i]).
	Sqrt func(n int, x, y []T)
	Exp  func(n int, x, y []T)
	Log  func(n int, x, y []T)

	// Nrm2 returns the Euclidean norm of x.
	Nrm2 func(n int, x []T) T

	// Dot returns sum(x[i]*y[i]).
	Dot func(n int, x, y []T) T
}

// Complete reports whether every operation of the table is populated.
func (o *Ops[T]) Complete() bool {
	return o.Scal != nil && o.Axpy != nil && o.Axpby != nil &&
		o.Gemv != nil && o.Gemm != nil &&
		o.Add != nil && o.Sub != nil && o.Mul != nil && o.Div != nil &&
		o.Sqrt != nil && o.Exp != nil && o.Log != nil &&
		o.Nrm2 != nil && o.Dot != nil
}

// OpEntry represents a registered kernel implementation.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic", "gonum").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred.
	Priority int

	// Reference marks the pure Go implementation that defines the numerical
	// ground truth. Only reference entries are eligible under ForceGeneric.
	Reference bool

	F32 Ops[float32]
	F64 Ops[float64]
}

// OpRegistry manages the registration and lookup of kernel implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the kernel package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the highest-priority implementation compatible with features.
// Returns nil if none is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if features.ForceGeneric && !entry.Reference {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Insertion sort, the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

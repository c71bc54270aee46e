// Package kernel is the BLAS-equivalent numeric backend of the expression
// engine.
//
// Operations are instantiated for float32 and float64 and assume row-major
// storage with unit stride. Implementations live in arch/* and register
// themselves with registry.Global; the highest-priority entry supported by the
// detected CPU features is selected lazily on first use. Forcing
// cpu.Features.ForceGeneric (see algo-vecmath/cpu) restricts selection to the
// pure Go reference backend.
//
// Implementations may use multiple threads internally. From the caller's
// point of view every call is blocking and complete on return.
package kernel

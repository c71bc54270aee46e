// Package linalg provides dense vectors and matrices whose arithmetic is
// expressed as lazily evaluated expression trees.
//
// Building an expression does no arithmetic: Add, Scale, Sqrt, MatVec,
// Transpose and friends return small nodes that reference their operands and
// only check shapes. The work happens when an expression is evaluated into a
// container, either by constructing one (NewVectorFromExpr,
// NewMatrixFromExpr) or by assigning to one (Assign, AddAssign, SubAssign,
// MulAssign, DivAssign).
//
// # Evaluation paths
//
// Every node is classified when it is built. Most shapes fall into
// CategoryNormal and are evaluated by walking the expression's element
// sequence once. A fixed set of shapes over dense float32/float64 operands
// (a*x, x+y, sqrt(x), A*x, Aᵗ*x, α*A*x, ...) is routed to BLAS-style kernels
// instead. Both paths produce the same values; the generic walk is the
// reference.
//
// Accumulating multiplication and division (MulAssign, DivAssign) always use
// the generic walk.
//
// # Lifetimes
//
// Only Vector and Matrix own storage. Views and composite expressions borrow
// their operands and are meant to be built and consumed within a single
// statement. Mutating an operand while an expression that references it is
// being evaluated is not supported.
//
// # Errors
//
// Shape mismatches and out-of-range view indices are programmer errors: the
// constructors panic with an error wrapping ErrShape or ErrIndexRange before
// any evaluation takes place.
package linalg

package linalg

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/internal/scratch"
	"github.com/cwbudde/algo-linalg/seq"
)

// Op is the way evaluated elements are combined with the destination.
type Op int

const (
	OpAssign Op = iota // dst = e
	OpAdd              // dst += e
	OpSub              // dst -= e
	OpMul              // dst *= e
	OpDiv              // dst /= e
)

var opNames = [...]string{"=", "+=", "-=", "*=", "/="}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Evaluate combines every element of e into dst with op. dst must hold
// exactly e.Size() elements and is written in row-major order.
//
// Specialized categories with float elements are computed by the kernel
// backend for OpAssign, OpAdd and OpSub. Everything else walks e once. When
// dst overlaps storage that e reads at other positions, e is first
// evaluated into a scratch buffer.
func Evaluate[T Scalar](op Op, dst []T, e Expr[T], opts ...EvalOption) {
	n := e.Size()
	if len(dst) != n {
		panicShape("destination of %d elements for %v expression", len(dst), e.Shape())
	}
	if op < OpAssign || op > OpDiv {
		panic(fmt.Sprintf("linalg: unknown op %d", int(op)))
	}
	if n == 0 {
		return
	}

	cfg := ApplyEvalOptions(opts...)
	ov := overlapNone
	if !cfg.NoAlias {
		ov = exprOverlap(e, dst)
	}

	if !cfg.GenericPath && e.Category().Specialized() && dispatch(op, dst, e, ov) {
		return
	}

	if ov == overlapPartial || (ov == overlapSame && !e.pointwise()) {
		pool := scratch.For[T]()
		buf := pool.Get(n)
		defer pool.Put(buf)
		tmp := buf.Values()
		Evaluate(OpAssign, tmp, e, append(opts[:len(opts):len(opts)], WithNoAlias())...)
		begin, end := seq.SliceRange(tmp)
		walk(op, dst, begin, end)
		return
	}

	walk(op, dst, e.Begin(), e.End())
}

// walk combines the sequence [it, end) into dst.
func walk[T Scalar](op Op, dst []T, it, end seq.Iterator[T]) {
	switch op {
	case OpAssign:
		for i := 0; !it.Equal(end); i++ {
			dst[i] = it.Value()
			it.Next()
		}
	case OpAdd:
		for i := 0; !it.Equal(end); i++ {
			dst[i] += it.Value()
			it.Next()
		}
	case OpSub:
		for i := 0; !it.Equal(end); i++ {
			dst[i] -= it.Value()
			it.Next()
		}
	case OpMul:
		for i := 0; !it.Equal(end); i++ {
			dst[i] *= it.Value()
			it.Next()
		}
	case OpDiv:
		for i := 0; !it.Equal(end); i++ {
			dst[i] /= it.Value()
			it.Next()
		}
	}
}

package linalg

import (
	"github.com/cwbudde/algo-linalg/internal/kernel"
	"github.com/cwbudde/algo-linalg/internal/scratch"
)

// dispatch routes a specialized expression to the kernel backend. It returns
// false when the combination must be evaluated generically.
func dispatch[T Scalar](op Op, dst []T, e Expr[T], ov overlap) bool {
	if op != OpAssign && op != OpAdd && op != OpSub {
		return false
	}
	if ov == overlapPartial {
		return false
	}
	switch d := any(dst).(type) {
	case []float64:
		return dispatchFloat(op, d, any(e).(Expr[float64]), ov)
	case []float32:
		return dispatchFloat(op, d, any(e).(Expr[float32]), ov)
	}
	return false
}

func dispatchFloat[F Float](op Op, dst []F, e Expr[F], ov overlap) bool {
	n := len(dst)
	switch e.Category() {
	case CategoryScalarTimesDense:
		b := e.(*Binary[F])
		x, _ := denseData(b.operand())
		scale(op, dst, b.scalar, x, ov)

	case CategoryDenseOverScalar:
		b := e.(*Binary[F])
		x, _ := denseData(b.operand())
		pool := scratch.For[F]()
		den := pool.Get(n)
		defer pool.Put(den)
		d := den.Values()
		for i := range d {
			d[i] = b.scalar
		}
		elementwise(op, dst, func(z []F) { kernel.Div(n, x, d, z) })

	case CategoryDensePlusDense, CategoryDenseMinusDense, CategoryDenseTimesDense, CategoryDenseOverDense:
		b := e.(*Binary[F])
		x, _ := denseData(b.lhs)
		y, _ := denseData(b.rhs)
		k := kernel.Add[F]
		switch b.fn {
		case FuncSub:
			k = kernel.Sub[F]
		case FuncMul:
			k = kernel.Mul[F]
		case FuncDiv:
			k = kernel.Div[F]
		}
		elementwise(op, dst, func(z []F) { k(n, x, y, z) })

	case CategorySqrt, CategoryExp, CategoryLog:
		u := e.(*Unary[F])
		x, _ := denseData(u.e)
		k := kernel.Sqrt[F]
		switch u.fn {
		case FuncExp:
			k = kernel.Exp[F]
		case FuncLog:
			k = kernel.Log[F]
		}
		elementwise(op, dst, func(z []F) { k(n, x, z) })

	case CategoryMatVec, CategoryMatVecTransposed, CategoryMatMat:
		product(op, dst, 1, e.(*Product[F]), ov)

	case CategoryScaledMatVec, CategoryScaledMatVecTransposed, CategoryScaledMatMat:
		b := e.(*Binary[F])
		product(op, dst, b.scalar, b.operand().(*Product[F]), ov)

	default:
		return false
	}
	return true
}

// scale evaluates alpha*x. When x is dst itself the update collapses to a
// single in-place scal.
func scale[F Float](op Op, dst []F, alpha F, x []F, ov overlap) {
	n := len(dst)
	if ov == overlapSame {
		switch op {
		case OpAssign:
			kernel.Scal(n, alpha, dst)
		case OpAdd:
			kernel.Scal(n, 1+alpha, dst)
		case OpSub:
			kernel.Scal(n, 1-alpha, dst)
		}
		return
	}
	switch op {
	case OpAssign:
		kernel.Axpby(n, alpha, x, 0, dst)
	case OpAdd:
		kernel.Axpy(n, alpha, x, dst)
	case OpSub:
		kernel.Axpy(n, -alpha, x, dst)
	}
}

// elementwise runs an elementwise kernel straight into dst for assignment
// and through a scratch buffer for accumulation.
func elementwise[F Float](op Op, dst []F, fill func(z []F)) {
	if op == OpAssign {
		fill(dst)
		return
	}
	pool := scratch.For[F]()
	buf := pool.Get(len(dst))
	defer pool.Put(buf)
	fill(buf.Values())
	accumulate(op, dst, buf.Values())
}

func accumulate[F Float](op Op, dst, src []F) {
	switch op {
	case OpAssign:
		copy(dst, src)
	case OpAdd:
		kernel.Axpy(len(dst), 1, src, dst)
	case OpSub:
		kernel.Axpy(len(dst), -1, src, dst)
	}
}

// product evaluates alpha*p with gemv or gemm. Products read their operands
// at many positions, so any overlap with dst goes through scratch.
func product[F Float](op Op, dst []F, alpha F, p *Product[F], ov overlap) {
	if ov != overlapNone {
		pool := scratch.For[F]()
		buf := pool.Get(len(dst))
		defer pool.Put(buf)
		product(OpAssign, buf.Values(), alpha, p, overlapNone)
		accumulate(op, dst, buf.Values())
		return
	}

	beta := F(1)
	switch op {
	case OpAssign:
		beta = 0
	case OpSub:
		alpha = -alpha
	}

	switch a := p.a.(type) {
	case *Matrix[F]:
		switch b := p.b.(type) {
		case *Vector[F]:
			kernel.Gemv(false, a.rows, a.cols, alpha, a.data, b.data, beta, dst)
		case *Matrix[F]:
			kernel.Gemm(false, false, a.rows, b.cols, a.cols, alpha, a.data, b.data, beta, dst)
		}
	case *TransposeExpr[F]:
		m := a.e.(*Matrix[F])
		x := p.b.(*Vector[F])
		kernel.Gemv(true, m.rows, m.cols, alpha, m.data, x.data, beta, dst)
	}
}

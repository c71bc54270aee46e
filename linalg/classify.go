package linalg

// The classifier inspects only node types, the element type and function
// tags. Every shape it does not recognize is CategoryNormal.

func isDense[T Scalar](e Expr[T]) bool {
	_, ok := denseData(e)
	return ok
}

func classifyUnary[T Scalar](u *Unary[T]) Category {
	if !isFloat[T]() || !isDense(u.e) {
		return CategoryNormal
	}
	switch u.fn {
	case FuncSqrt:
		return CategorySqrt
	case FuncExp:
		return CategoryExp
	case FuncLog:
		return CategoryLog
	}
	return CategoryNormal
}

func classifyBinary[T Scalar](b *Binary[T]) Category {
	if !isFloat[T]() {
		return CategoryNormal
	}
	switch b.form {
	case formExprs:
		if !isDense(b.lhs) || !isDense(b.rhs) {
			return CategoryNormal
		}
		switch b.fn {
		case FuncAdd:
			return CategoryDensePlusDense
		case FuncSub:
			return CategoryDenseMinusDense
		case FuncMul:
			return CategoryDenseTimesDense
		case FuncDiv:
			return CategoryDenseOverDense
		}
	case formScalarLeft, formScalarRight:
		e := b.operand()
		if b.fn == FuncMul {
			if p, ok := e.(*Product[T]); ok {
				return scaledProduct(p.cat)
			}
			if isDense(e) {
				return CategoryScalarTimesDense
			}
		}
		if b.fn == FuncDiv && b.form == formScalarRight && isDense(e) {
			return CategoryDenseOverScalar
		}
	}
	return CategoryNormal
}

func scaledProduct(c Category) Category {
	switch c {
	case CategoryMatVec:
		return CategoryScaledMatVec
	case CategoryMatVecTransposed:
		return CategoryScaledMatVecTransposed
	case CategoryMatMat:
		return CategoryScaledMatMat
	}
	return CategoryNormal
}

func classifyProduct[T Scalar](p *Product[T]) Category {
	if !isFloat[T]() {
		return CategoryNormal
	}
	switch a := p.a.(type) {
	case *Matrix[T]:
		switch p.b.(type) {
		case *Vector[T]:
			return CategoryMatVec
		case *Matrix[T]:
			return CategoryMatMat
		}
	case *TransposeExpr[T]:
		if _, ok := a.e.(*Matrix[T]); ok {
			if _, ok := p.b.(*Vector[T]); ok {
				return CategoryMatVecTransposed
			}
		}
	}
	return CategoryNormal
}

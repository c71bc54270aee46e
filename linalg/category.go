package linalg

// Category is the evaluation strategy of an expression node.
type Category int

const (
	// CategoryNormal expressions are evaluated by walking their sequence.
	CategoryNormal Category = iota

	CategoryScalarTimesDense // a*x
	CategoryDenseOverScalar  // x/a
	CategoryDensePlusDense   // x+y
	CategoryDenseMinusDense  // x-y
	CategoryDenseTimesDense  // x*y elementwise
	CategoryDenseOverDense   // x/y elementwise
	CategorySqrt             // sqrt(x)
	CategoryExp              // exp(x)
	CategoryLog              // log(x)

	CategoryMatVec                 // A*x
	CategoryMatVecTransposed       // Aᵗ*x
	CategoryScaledMatVec           // α*A*x
	CategoryScaledMatVecTransposed // α*Aᵗ*x
	CategoryMatMat                 // A*B
	CategoryScaledMatMat           // α*A*B
)

var categoryNames = [...]string{
	CategoryNormal:                 "normal",
	CategoryScalarTimesDense:       "a*x",
	CategoryDenseOverScalar:        "x/a",
	CategoryDensePlusDense:         "x+y",
	CategoryDenseMinusDense:        "x-y",
	CategoryDenseTimesDense:        "x*y",
	CategoryDenseOverDense:         "x/y",
	CategorySqrt:                   "sqrt(x)",
	CategoryExp:                    "exp(x)",
	CategoryLog:                    "log(x)",
	CategoryMatVec:                 "A*x",
	CategoryMatVecTransposed:       "Aᵗ*x",
	CategoryScaledMatVec:           "α*A*x",
	CategoryScaledMatVecTransposed: "α*Aᵗ*x",
	CategoryMatMat:                 "A*B",
	CategoryScaledMatMat:           "α*A*B",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Specialized reports whether c routes to a kernel.
func (c Category) Specialized() bool { return c != CategoryNormal }

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Classify returns the category cached on e.
func Classify[T Scalar](e Expr[T]) Category {
	return e.Category()
}

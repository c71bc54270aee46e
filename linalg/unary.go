package linalg

import (
	"math"

	"github.com/cwbudde/algo-linalg/seq"
)

// Func tags the combining function of a composite node. The classifier only
// recognizes the named tags; FuncCustom always evaluates generically.
type Func int

const (
	FuncCustom Func = iota
	FuncAdd
	FuncSub
	FuncMul
	FuncDiv
	FuncSqrt
	FuncExp
	FuncLog
	FuncNeg
	FuncAbs
)

// Unary applies a function to every element of an operand.
type Unary[T Scalar] struct {
	e   Expr[T]
	fn  Func
	f   func(T) T
	cat Category
}

func newUnary[T Scalar](e Expr[T], fn Func, f func(T) T) *Unary[T] {
	u := &Unary[T]{e: e, fn: fn, f: f}
	u.cat = classifyUnary(u)
	return u
}

// Apply returns f(x) for every element x of e.
func Apply[T Scalar](e Expr[T], f func(T) T) *Unary[T] {
	return newUnary(e, FuncCustom, f)
}

// Sqrt returns the elementwise square root of e, computed in float64.
func Sqrt[T Scalar](e Expr[T]) *Unary[T] {
	return newUnary(e, FuncSqrt, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Exp returns the elementwise natural exponential of e, computed in float64.
func Exp[T Scalar](e Expr[T]) *Unary[T] {
	return newUnary(e, FuncExp, func(x T) T { return T(math.Exp(float64(x))) })
}

// Log returns the elementwise natural logarithm of e, computed in float64.
func Log[T Scalar](e Expr[T]) *Unary[T] {
	return newUnary(e, FuncLog, func(x T) T { return T(math.Log(float64(x))) })
}

// Neg returns -e.
func Neg[T Scalar](e Expr[T]) *Unary[T] {
	return newUnary(e, FuncNeg, func(x T) T { return -x })
}

// Abs returns the elementwise absolute value of e.
func Abs[T Scalar](e Expr[T]) *Unary[T] {
	return newUnary(e, FuncAbs, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Operand returns the argument of the map.
func (u *Unary[T]) Operand() Expr[T] { return u.e }

// Func returns the function tag.
func (u *Unary[T]) Func() Func { return u.fn }

func (u *Unary[T]) Shape() Shape       { return u.e.Shape() }
func (u *Unary[T]) Size() int          { return u.e.Size() }
func (u *Unary[T]) Kind() Kind         { return u.e.Kind() }
func (u *Unary[T]) Category() Category { return u.cat }

func (u *Unary[T]) Begin() seq.Iterator[T] { return seq.NewMap(u.e.Begin(), u.f) }
func (u *Unary[T]) End() seq.Iterator[T]   { return seq.NewMap(u.e.End(), u.f) }

func (u *Unary[T]) storage(visit func([]T)) { u.e.storage(visit) }
func (u *Unary[T]) pointwise() bool         { return u.e.pointwise() }

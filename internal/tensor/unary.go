package tensor

import (
	"fmt"
	"math"
)

// UnaryOp names a shape-preserving elementwise float function.
type UnaryOp int

// Supported unary operations.
const (
	Exp UnaryOp = iota
	Log
	Sin
	Cos
	Tanh
	Neg
	Recip
	Sqr
	Sqrt
)

// String returns the operation name.
func (op UnaryOp) String() string {
	switch op {
	case Exp:
		return "exp"
	case Log:
		return "log"
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tanh:
		return "tanh"
	case Neg:
		return "neg"
	case Recip:
		return "recip"
	case Sqr:
		return "sqr"
	case Sqrt:
		return "sqrt"
	default:
		return fmt.Sprintf("unary(%d)", int(op))
	}
}

// UnaryFunc returns the scalar function for op.
// Panics for an unknown op.
func UnaryFunc[T Float](op UnaryOp) func(T) T {
	switch op {
	case Exp:
		return func(x T) T { return T(math.Exp(float64(x))) }
	case Log:
		return func(x T) T { return T(math.Log(float64(x))) }
	case Sin:
		return func(x T) T { return T(math.Sin(float64(x))) }
	case Cos:
		return func(x T) T { return T(math.Cos(float64(x))) }
	case Tanh:
		return func(x T) T { return T(math.Tanh(float64(x))) }
	case Neg:
		return func(x T) T { return -x }
	case Recip:
		return func(x T) T { return 1 / x }
	case Sqr:
		return func(x T) T { return x * x }
	case Sqrt:
		return func(x T) T { return T(math.Sqrt(float64(x))) }
	default:
		panic(fmt.Sprintf("unknown unary op %s", op))
	}
}

// Unary applies op to every element of x and returns a new tensor.
func Unary[T Float](x Viewer[T], op UnaryOp) *Tensor[T] {
	return Map(x, UnaryFunc[T](op))
}

// UnaryInPlace applies op to every element of t and returns t.
func UnaryInPlace[T Float](t *Tensor[T], op UnaryOp) *Tensor[T] {
	return MapInPlace(t, UnaryFunc[T](op))
}

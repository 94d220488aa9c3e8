// Package number defines the numeric capability set the evaluator is
// generic over, with implementations for the supported representations.
package number

import "errors"

// ErrUnsupported is returned by representations that do not support an
// arithmetic operation (e.g. boolean arithmetic).
var ErrUnsupported = errors.New("operation not supported by numeric representation")

// ErrDivideByZero is returned by integer division by zero. Float
// representations follow IEEE-754 instead and never return it.
var ErrDivideByZero = errors.New("division by zero")

// Ops is the set of arithmetic and conversion operations required to
// evaluate expressions over a representation type T.
type Ops[T comparable] interface {
	Zero() T
	One() T

	Add(a, b T) (T, error)
	Subtract(a, b T) (T, error)
	Multiply(a, b T) (T, error)
	Divide(a, b T) (T, error)
	Negate(a T) (T, error)
	Power(a, b T) (T, error)

	// Parse converts a number literal's source text.
	Parse(text string) (T, error)

	FromFloat64(v float64) T
	ToFloat64(a T) float64
	FromBool(v bool) T
	ToBool(a T) bool
}

package number

import (
	"fmt"
	"math"
	"strconv"
)

// Int64Ops implements Ops over int64. Power goes through float64
// arithmetic and truncates toward zero, mirroring the host arithmetic
// the language was designed against.
type Int64Ops struct{}

func (Int64Ops) Zero() int64 { return 0 }
func (Int64Ops) One() int64  { return 1 }

func (Int64Ops) Add(a, b int64) (int64, error)      { return a + b, nil }
func (Int64Ops) Subtract(a, b int64) (int64, error) { return a - b, nil }
func (Int64Ops) Multiply(a, b int64) (int64, error) { return a * b, nil }
func (Int64Ops) Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
func (Int64Ops) Negate(a int64) (int64, error) { return -a, nil }
func (Int64Ops) Power(a, b int64) (int64, error) {
	return int64(math.Pow(float64(a), float64(b))), nil
}

func (Int64Ops) Parse(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", text, err)
	}
	return v, nil
}

func (Int64Ops) FromFloat64(v float64) int64 { return int64(v) }
func (Int64Ops) ToFloat64(a int64) float64   { return float64(a) }
func (Int64Ops) FromBool(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
func (Int64Ops) ToBool(a int64) bool { return a != 0 }

// Int32Ops implements Ops over int32.
type Int32Ops struct{}

func (Int32Ops) Zero() int32 { return 0 }
func (Int32Ops) One() int32  { return 1 }

func (Int32Ops) Add(a, b int32) (int32, error)      { return a + b, nil }
func (Int32Ops) Subtract(a, b int32) (int32, error) { return a - b, nil }
func (Int32Ops) Multiply(a, b int32) (int32, error) { return a * b, nil }
func (Int32Ops) Divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
func (Int32Ops) Negate(a int32) (int32, error) { return -a, nil }
func (Int32Ops) Power(a, b int32) (int32, error) {
	return int32(math.Pow(float64(a), float64(b))), nil
}

func (Int32Ops) Parse(text string) (int32, error) {
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", text, err)
	}
	return int32(v), nil
}

func (Int32Ops) FromFloat64(v float64) int32 { return int32(v) }
func (Int32Ops) ToFloat64(a int32) float64   { return float64(a) }
func (Int32Ops) FromBool(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
func (Int32Ops) ToBool(a int32) bool { return a != 0 }

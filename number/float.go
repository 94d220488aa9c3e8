package number

import (
	"fmt"
	"math"
	"strconv"
)

// Float64Ops implements Ops over float64. Division by zero follows
// IEEE-754 (Inf/NaN).
type Float64Ops struct{}

func (Float64Ops) Zero() float64 { return 0 }
func (Float64Ops) One() float64  { return 1 }

func (Float64Ops) Add(a, b float64) (float64, error)      { return a + b, nil }
func (Float64Ops) Subtract(a, b float64) (float64, error) { return a - b, nil }
func (Float64Ops) Multiply(a, b float64) (float64, error) { return a * b, nil }
func (Float64Ops) Divide(a, b float64) (float64, error)   { return a / b, nil }
func (Float64Ops) Negate(a float64) (float64, error)      { return -a, nil }
func (Float64Ops) Power(a, b float64) (float64, error)    { return math.Pow(a, b), nil }

func (Float64Ops) Parse(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", text, err)
	}
	return v, nil
}

func (Float64Ops) FromFloat64(v float64) float64 { return v }
func (Float64Ops) ToFloat64(a float64) float64   { return a }
func (Float64Ops) FromBool(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
func (Float64Ops) ToBool(a float64) bool { return a != 0 }

// Float32Ops implements Ops over float32.
type Float32Ops struct{}

func (Float32Ops) Zero() float32 { return 0 }
func (Float32Ops) One() float32  { return 1 }

func (Float32Ops) Add(a, b float32) (float32, error)      { return a + b, nil }
func (Float32Ops) Subtract(a, b float32) (float32, error) { return a - b, nil }
func (Float32Ops) Multiply(a, b float32) (float32, error) { return a * b, nil }
func (Float32Ops) Divide(a, b float32) (float32, error)   { return a / b, nil }
func (Float32Ops) Negate(a float32) (float32, error)      { return -a, nil }
func (Float32Ops) Power(a, b float32) (float32, error) {
	return float32(math.Pow(float64(a), float64(b))), nil
}

func (Float32Ops) Parse(text string) (float32, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", text, err)
	}
	return float32(v), nil
}

func (Float32Ops) FromFloat64(v float64) float32 { return float32(v) }
func (Float32Ops) ToFloat64(a float32) float64   { return float64(a) }
func (Float32Ops) FromBool(v bool) float32 {
	if v {
		return 1
	}
	return 0
}
func (Float32Ops) ToBool(a float32) bool { return a != 0 }

package number

import (
	"fmt"
	"strconv"
)

// BoolOps implements Ops over bool. Arithmetic operators are not
// supported; logical composition happens at the AST level, not here.
type BoolOps struct{}

func (BoolOps) Zero() bool { return false }
func (BoolOps) One() bool  { return true }

func (BoolOps) Add(a, b bool) (bool, error) {
	return false, fmt.Errorf("boolean add: %w", ErrUnsupported)
}
func (BoolOps) Subtract(a, b bool) (bool, error) {
	return false, fmt.Errorf("boolean subtract: %w", ErrUnsupported)
}
func (BoolOps) Multiply(a, b bool) (bool, error) {
	return false, fmt.Errorf("boolean multiply: %w", ErrUnsupported)
}
func (BoolOps) Divide(a, b bool) (bool, error) {
	return false, fmt.Errorf("boolean divide: %w", ErrUnsupported)
}
func (BoolOps) Negate(a bool) (bool, error) {
	return false, fmt.Errorf("boolean negate: %w", ErrUnsupported)
}
func (BoolOps) Power(a, b bool) (bool, error) {
	return false, fmt.Errorf("boolean power: %w", ErrUnsupported)
}

func (BoolOps) Parse(text string) (bool, error) {
	switch text {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, fmt.Errorf("parse boolean %q: %w", text, err)
	}
	return v, nil
}

func (BoolOps) FromFloat64(v float64) bool { return v != 0 }
func (BoolOps) ToFloat64(a bool) float64 {
	if a {
		return 1
	}
	return 0
}
func (BoolOps) FromBool(v bool) bool { return v }
func (BoolOps) ToBool(a bool) bool   { return a }

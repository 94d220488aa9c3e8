package engine

import (
	"fmt"
	"math"
)

// RegisterDefaultFunctions installs the default function library:
// sin, cos, tan, sqrt, abs, log, min, max and if.
func (e *Engine[T]) RegisterDefaultFunctions(ctx *Context[T]) {
	ops := e.ops

	unary := func(name string, fn func(float64) float64) {
		ctx.SetFunction(name, func(_ *Context[T], args []T) (T, error) {
			if len(args) != 1 {
				var zero T
				return zero, fmt.Errorf("function %q expects 1 argument, got %d", name, len(args))
			}
			return ops.FromFloat64(fn(ops.ToFloat64(args[0]))), nil
		})
	}
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("sqrt", math.Sqrt)
	unary("abs", math.Abs)

	// log($x) is the natural log, log($x, $base) is log base $base.
	ctx.SetFunction("log", func(_ *Context[T], args []T) (T, error) {
		switch len(args) {
		case 1:
			return ops.FromFloat64(math.Log(ops.ToFloat64(args[0]))), nil
		case 2:
			return ops.FromFloat64(math.Log(ops.ToFloat64(args[0])) / math.Log(ops.ToFloat64(args[1]))), nil
		default:
			var zero T
			return zero, fmt.Errorf("function \"log\" expects 1 or 2 arguments, got %d", len(args))
		}
	})

	ctx.SetFunction("min", func(_ *Context[T], args []T) (T, error) {
		if len(args) == 0 {
			var zero T
			return zero, fmt.Errorf("function \"min\" expects at least 1 argument")
		}
		best := args[0]
		for _, a := range args[1:] {
			if ops.ToFloat64(a) < ops.ToFloat64(best) {
				best = a
			}
		}
		return best, nil
	})
	ctx.SetFunction("max", func(_ *Context[T], args []T) (T, error) {
		if len(args) == 0 {
			var zero T
			return zero, fmt.Errorf("function \"max\" expects at least 1 argument")
		}
		best := args[0]
		for _, a := range args[1:] {
			if ops.ToFloat64(a) > ops.ToFloat64(best) {
				best = a
			}
		}
		return best, nil
	})

	// if($cond, $ifTrue, $ifFalse). Arguments arrive evaluated, the
	// branches are not lazy.
	ctx.SetFunction("if", func(_ *Context[T], args []T) (T, error) {
		if len(args) != 3 {
			var zero T
			return zero, fmt.Errorf("function \"if\" expects 3 arguments, got %d", len(args))
		}
		if ops.ToBool(args[0]) {
			return args[1], nil
		}
		return args[2], nil
	})
}

package engine

import (
	"fmt"
	"strings"
)

// RegisterFunction installs a native function in the context.
func (e *Engine[T]) RegisterFunction(ctx *Context[T], name string, fn func(args []T) (T, error)) {
	ctx.SetFunction(name, func(_ *Context[T], args []T) (T, error) {
		return fn(args)
	})
}

// RegisterVoidFunction installs a native function without a return
// value; calls evaluate to the representation's zero.
func (e *Engine[T]) RegisterVoidFunction(ctx *Context[T], name string, fn func(args []T) error) {
	ctx.SetFunction(name, func(_ *Context[T], args []T) (T, error) {
		return e.ops.Zero(), fn(args)
	})
}

// RegisterExpressionFunction compiles the body once and installs a
// function that binds each parameter in the caller's context, runs the
// body, then restores the prior bindings.
func (e *Engine[T]) RegisterExpressionFunction(ctx *Context[T], name string, params []string, body string) error {
	fn, err := e.expressionFunction(name, params, body)
	if err != nil {
		return err
	}
	ctx.SetFunction(name, fn)
	return nil
}

// RegisterVoidExpressionFunction is RegisterExpressionFunction for
// bodies used purely for their side effects; calls evaluate to zero.
func (e *Engine[T]) RegisterVoidExpressionFunction(ctx *Context[T], name string, params []string, body string) error {
	fn, err := e.expressionFunction(name, params, body)
	if err != nil {
		return err
	}
	ctx.SetFunction(name, func(ctx *Context[T], args []T) (T, error) {
		if _, err := fn(ctx, args); err != nil {
			return e.ops.Zero(), err
		}
		return e.ops.Zero(), nil
	})
	return nil
}

func (e *Engine[T]) expressionFunction(name string, params []string, body string) (Function[T], error) {
	for _, p := range params {
		if !strings.HasPrefix(p, "$") {
			return nil, fmt.Errorf("function %q: parameter %q must start with '$'", name, p)
		}
	}
	compiled, err := e.Compile(body)
	if err != nil {
		return nil, fmt.Errorf("function %q: %w", name, err)
	}

	return func(ctx *Context[T], args []T) (T, error) {
		if len(args) != len(params) {
			var zero T
			return zero, fmt.Errorf("function %q expects %d arguments, got %d", name, len(params), len(args))
		}

		type binding struct {
			name    string
			prev    T
			existed bool
			skip    bool
		}
		saved := make([]binding, 0, len(params))
		for i, p := range params {
			prev, existed := ctx.Variable(p)
			saved = append(saved, binding{
				name:    p,
				prev:    prev,
				existed: existed,
				// When the caller passed the very variable the
				// parameter names, the restore step is skipped and the
				// body's writes stay visible after the call.
				skip: existed && prev == args[i],
			})
			ctx.SetVariable(p, args[i])
		}
		defer func() {
			for i := len(saved) - 1; i >= 0; i-- {
				b := saved[i]
				if b.skip {
					continue
				}
				if b.existed {
					ctx.SetVariable(b.name, b.prev)
				} else {
					ctx.DeleteVariable(b.name)
				}
			}
		}()

		return compiled.Evaluate(ctx)
	}, nil
}

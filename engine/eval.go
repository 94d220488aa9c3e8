package engine

import (
	"fmt"

	"github.com/formulang/formula/ast"
	"github.com/formulang/formula/lexer"
)

func (c *Compiled[T]) eval(ctx *Context[T], node ast.Node[T]) (T, error) {
	var zero T

	switch n := node.(type) {
	case ast.Constant[T]:
		return n.Value, nil

	case ast.BoolLiteral[T]:
		return c.ops.FromBool(n.Value), nil

	case ast.Variable[T]:
		if len(n.Path) == 0 {
			return ctx.Resolve(n.Name)
		}
		return ctx.ResolveScoped(n.Path, n.Name)

	case ast.Assignment[T]:
		v, err := c.eval(ctx, n.Value)
		if err != nil {
			return zero, err
		}
		ctx.SetVariable(n.Name, v)
		return v, nil

	case ast.Sequence[T]:
		var last T
		for _, stmt := range n.Stmts {
			v, err := c.eval(ctx, stmt)
			if err != nil {
				return zero, err
			}
			last = v
		}
		return last, nil

	case ast.Binary[T]:
		left, err := c.eval(ctx, n.Left)
		if err != nil {
			return zero, err
		}
		right, err := c.eval(ctx, n.Right)
		if err != nil {
			return zero, err
		}
		switch n.Op {
		case lexer.TokPlus:
			return c.ops.Add(left, right)
		case lexer.TokMinus:
			return c.ops.Subtract(left, right)
		case lexer.TokStar:
			return c.ops.Multiply(left, right)
		case lexer.TokSlash:
			return c.ops.Divide(left, right)
		case lexer.TokCaret:
			return c.ops.Power(left, right)
		default:
			panic(fmt.Errorf("unsupported binary operator %s", n.Op))
		}

	case ast.Unary[T]:
		v, err := c.eval(ctx, n.Operand)
		if err != nil {
			return zero, err
		}
		return c.ops.Negate(v)

	case ast.Compare[T]:
		left, err := c.eval(ctx, n.Left)
		if err != nil {
			return zero, err
		}
		right, err := c.eval(ctx, n.Right)
		if err != nil {
			return zero, err
		}
		lf, rf := c.ops.ToFloat64(left), c.ops.ToFloat64(right)
		var result bool
		switch n.Op {
		case lexer.TokEqualEqual:
			result = lf == rf
		case lexer.TokBangEqual:
			result = lf != rf
		case lexer.TokGreater:
			result = lf > rf
		case lexer.TokGreaterEqual:
			result = lf >= rf
		case lexer.TokLess:
			result = lf < rf
		case lexer.TokLessEqual:
			result = lf <= rf
		default:
			panic(fmt.Errorf("unsupported comparison operator %s", n.Op))
		}
		return c.ops.FromBool(result), nil

	case ast.Logical[T]:
		left, err := c.eval(ctx, n.Left)
		if err != nil {
			return zero, err
		}
		lb := c.ops.ToBool(left)
		// Short-circuit on the left operand.
		if n.Op == lexer.TokAnd && !lb {
			return c.ops.FromBool(false), nil
		}
		if n.Op == lexer.TokOr && lb {
			return c.ops.FromBool(true), nil
		}
		right, err := c.eval(ctx, n.Right)
		if err != nil {
			return zero, err
		}
		return c.ops.FromBool(c.ops.ToBool(right)), nil

	case ast.Not[T]:
		v, err := c.eval(ctx, n.Operand)
		if err != nil {
			return zero, err
		}
		return c.ops.FromBool(!c.ops.ToBool(v)), nil

	case ast.Call[T]:
		fn, ok := ctx.Function(n.Name)
		if !ok {
			return zero, fmt.Errorf("function %q: %w", n.Name, ErrUnknownFunction)
		}
		args := make([]T, len(n.Args))
		for i, argNode := range n.Args {
			v, err := c.eval(ctx, argNode)
			if err != nil {
				return zero, err
			}
			args[i] = v
		}
		return fn(ctx, args)

	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}

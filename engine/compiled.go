package engine

import (
	"github.com/formulang/formula/ast"
	"github.com/formulang/formula/number"
)

// Compiled is an immutable parsed expression bound to its numeric
// capability and source text, reusable across many evaluations and
// many contexts.
type Compiled[T comparable] struct {
	root   ast.Node[T]
	ops    number.Ops[T]
	source string

	// label is what the lifecycle hooks receive: the cache key when the
	// expression was compiled under one, the source text otherwise.
	label  string
	engine *Engine[T]
}

// Source returns the original expression text.
func (c *Compiled[T]) Source() string { return c.source }

// Dump returns a source-ish rendering of the parsed tree.
func (c *Compiled[T]) Dump() string { return c.root.Dump() }

// Evaluate walks the tree against the given context, firing the
// engine's lifecycle hooks around the walk. Only the context is ever
// mutated.
func (c *Compiled[T]) Evaluate(ctx *Context[T]) (T, error) {
	if c.engine != nil && c.engine.OnBeforeEvaluate != nil {
		c.engine.OnBeforeEvaluate(c.label, ctx)
	}
	v, err := c.eval(ctx, c.root)
	if err != nil {
		var zero T
		return zero, err
	}
	if c.engine != nil && c.engine.OnAfterEvaluate != nil {
		c.engine.OnAfterEvaluate(c.label, ctx, v)
	}
	return v, nil
}

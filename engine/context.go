// Package engine provides the evaluation context, compiled expressions
// and the expression engine facade with its compilation cache.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariable is wrapped by resolution failures for variables no
// provider and no scope can produce.
var ErrUnknownVariable = errors.New("variable not found")

// ErrUnknownFunction is wrapped by calls to unregistered functions.
var ErrUnknownFunction = errors.New("function not found")

// Function is a callable registered in a context. Native functions
// ignore the context; expression-defined functions use it to bind their
// parameters in the caller's scope.
type Function[T comparable] func(ctx *Context[T], args []T) (T, error)

// VariableProvider is a lookup fallback consulted when a variable is
// absent from a context's (or scope's) variable map.
type VariableProvider[T comparable] interface {
	Resolve(name string) (T, bool)
}

// VariableProviderFunc adapts a function to the VariableProvider interface.
type VariableProviderFunc[T comparable] func(name string) (T, bool)

func (f VariableProviderFunc[T]) Resolve(name string) (T, bool) { return f(name) }

// ScopeRelationProvider resolves one relation hop of a scope path,
// e.g. ("minion", "parent") -> "player".
type ScopeRelationProvider interface {
	Resolve(scope, relation string) (string, bool)
}

// ScopeRelationProviderFunc adapts a function to the ScopeRelationProvider interface.
type ScopeRelationProviderFunc func(scope, relation string) (string, bool)

func (f ScopeRelationProviderFunc) Resolve(scope, relation string) (string, bool) {
	return f(scope, relation)
}

// ScopeBinding is a named bucket of variables with its own provider
// chain, representing one logical entity reachable from formulas.
type ScopeBinding[T comparable] struct {
	Variables map[string]T
	Providers []VariableProvider[T]
}

// NewScopeBinding creates an empty scope binding.
func NewScopeBinding[T comparable]() *ScopeBinding[T] {
	return &ScopeBinding[T]{Variables: make(map[string]T)}
}

// Set stores a variable in the scope. Names are case-insensitive.
func (s *ScopeBinding[T]) Set(name string, value T) {
	s.Variables[strings.ToLower(name)] = value
}

// DefaultScopeName is the logical name of the "self" scope.
const DefaultScopeName = "self"

// Context is the mutable runtime state consulted during evaluation:
// variables, functions, scopes and resolution providers. A context must
// not be shared for concurrent writes; give each concurrent evaluation
// its own.
type Context[T comparable] struct {
	Variables map[string]T
	Providers []VariableProvider[T]

	Functions map[string]Function[T]

	// CurrentScope is the logical name of the "self" scope.
	CurrentScope string

	Scopes            map[string]*ScopeBinding[T]
	RelationProviders []ScopeRelationProvider
}

// NewContext creates an empty context with the default scope name.
func NewContext[T comparable]() *Context[T] {
	return &Context[T]{
		Variables:    make(map[string]T),
		Functions:    make(map[string]Function[T]),
		CurrentScope: DefaultScopeName,
		Scopes:       make(map[string]*ScopeBinding[T]),
	}
}

// SetVariable stores a variable. Names are case-insensitive and must
// carry their '$' prefix to be reachable from expressions.
func (c *Context[T]) SetVariable(name string, value T) {
	c.Variables[strings.ToLower(name)] = value
}

// Variable looks up a variable without consulting providers.
func (c *Context[T]) Variable(name string) (T, bool) {
	v, ok := c.Variables[strings.ToLower(name)]
	return v, ok
}

// DeleteVariable removes a variable binding.
func (c *Context[T]) DeleteVariable(name string) {
	delete(c.Variables, strings.ToLower(name))
}

// SetFunction registers a callable. Names are case-insensitive.
func (c *Context[T]) SetFunction(name string, fn Function[T]) {
	c.Functions[strings.ToLower(name)] = fn
}

// Function looks up a registered callable.
func (c *Context[T]) Function(name string) (Function[T], bool) {
	fn, ok := c.Functions[strings.ToLower(name)]
	return fn, ok
}

// Scope returns the named scope binding, creating it on demand.
func (c *Context[T]) Scope(name string) *ScopeBinding[T] {
	key := strings.ToLower(name)
	sb, ok := c.Scopes[key]
	if !ok {
		sb = NewScopeBinding[T]()
		c.Scopes[key] = sb
	}
	return sb
}

// BindScope installs a scope binding under the given name.
func (c *Context[T]) BindScope(name string, sb *ScopeBinding[T]) {
	c.Scopes[strings.ToLower(name)] = sb
}

// Resolve looks up a variable in the current scope: the variable map
// first, then every provider in order. A provider hit is memoized back
// into the variable map.
func (c *Context[T]) Resolve(name string) (T, error) {
	key := strings.ToLower(name)
	if v, ok := c.Variables[key]; ok {
		return v, nil
	}
	for _, p := range c.Providers {
		if v, ok := p.Resolve(name); ok {
			c.Variables[key] = v
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("variable %q: %w", name, ErrUnknownVariable)
}

// ResolveScoped resolves a variable through a scope path, e.g.
// ["player"] or ["self", "parent"]. The first path token selects the
// starting scope, the remaining tokens are relation hops offered to the
// relation providers in order; an unresolved hop falls back to using
// the token itself as the next scope name.
func (c *Context[T]) ResolveScoped(path []string, name string) (T, error) {
	scope := c.walkScopePath(path)
	if scope == "" || strings.EqualFold(scope, DefaultScopeName) {
		return c.Resolve(name)
	}
	if sb, ok := c.Scopes[strings.ToLower(scope)]; ok {
		key := strings.ToLower(name)
		if v, ok := sb.Variables[key]; ok {
			return v, nil
		}
		for _, p := range sb.Providers {
			if v, ok := p.Resolve(name); ok {
				sb.Variables[key] = v
				return v, nil
			}
		}
	}
	// Last resort: self resolution.
	return c.Resolve(name)
}

func (c *Context[T]) walkScopePath(path []string) string {
	if len(path) == 0 {
		return c.CurrentScope
	}
	cur := path[0]
	switch {
	case strings.EqualFold(cur, DefaultScopeName):
		cur = c.CurrentScope
	case strings.EqualFold(cur, "root"):
		cur = "root"
	}
	for _, relation := range path[1:] {
		next, ok := c.resolveRelation(cur, relation)
		if !ok {
			// No provider claims the hop: the token itself names the
			// next scope, so simple dotted paths work unregistered.
			next = relation
		}
		cur = next
	}
	return cur
}

func (c *Context[T]) resolveRelation(scope, relation string) (string, bool) {
	for _, rp := range c.RelationProviders {
		if next, ok := rp.Resolve(scope, relation); ok {
			return next, true
		}
	}
	return "", false
}

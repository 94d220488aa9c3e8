// Package ast defines the parsed-expression node model. Nodes are
// generic over the numeric representation type and immutable once
// built; evaluation never mutates the tree.
package ast

import (
	"fmt"
	"strings"
)

// Node is the interface implemented by every expression node.
type Node[T comparable] interface {
	Dump() string
	node()
}

// Constant represents a number literal, already parsed into the
// numeric representation.
type Constant[T comparable] struct {
	Value T
}

func (Constant[T]) node() {}

func (c Constant[T]) Dump() string { return fmt.Sprintf("%v", c.Value) }

// BoolLiteral represents the 'true' and 'false' keywords.
type BoolLiteral[T comparable] struct {
	Value bool
}

func (BoolLiteral[T]) node() {}

func (b BoolLiteral[T]) Dump() string { return fmt.Sprintf("%t", b.Value) }

// Variable represents a variable reference, optionally qualified by a
// scope path, e.g. $hp or player.$hp or self.parent.$hp.
type Variable[T comparable] struct {
	Path []string // Scope path, empty for the current scope.
	Name string   // '$'-prefixed variable name.
}

func (Variable[T]) node() {}

func (v Variable[T]) Dump() string {
	if len(v.Path) == 0 {
		return v.Name
	}
	return strings.Join(v.Path, ".") + "." + v.Name
}

// Assignment represents $name = expr.
type Assignment[T comparable] struct {
	Name  string
	Value Node[T]
}

func (Assignment[T]) node() {}

func (a Assignment[T]) Dump() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.Dump())
}

// Sequence represents two or more statements separated by ';'.
// Evaluation runs them in order, the value is the last one's.
type Sequence[T comparable] struct {
	Stmts []Node[T]
}

func (Sequence[T]) node() {}

func (s Sequence[T]) Dump() string {
	parts := make([]string, 0, len(s.Stmts))
	for _, stmt := range s.Stmts {
		parts = append(parts, stmt.Dump())
	}
	return strings.Join(parts, "; ")
}

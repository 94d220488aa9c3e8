package ast

import (
	"fmt"
	"strings"

	"github.com/formulang/formula/lexer"
)

// Binary represents a binary arithmetic operation (+ - * / ^).
type Binary[T comparable] struct {
	Op    lexer.TokenType
	Left  Node[T]
	Right Node[T]
}

func (Binary[T]) node() {}

func (b Binary[T]) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op, b.Right.Dump())
}

// Unary represents prefix negation.
type Unary[T comparable] struct {
	Op      lexer.TokenType
	Operand Node[T]
}

func (Unary[T]) node() {}

func (u Unary[T]) Dump() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand.Dump())
}

// Compare represents a relational or equality operation.
type Compare[T comparable] struct {
	Op    lexer.TokenType
	Left  Node[T]
	Right Node[T]
}

func (Compare[T]) node() {}

func (c Compare[T]) Dump() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.Dump(), c.Op, c.Right.Dump())
}

// Logical represents 'and'/'or' composition.
type Logical[T comparable] struct {
	Op    lexer.TokenType
	Left  Node[T]
	Right Node[T]
}

func (Logical[T]) node() {}

func (l Logical[T]) Dump() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.Dump(), l.Op, l.Right.Dump())
}

// Not represents logical negation.
type Not[T comparable] struct {
	Operand Node[T]
}

func (Not[T]) node() {}

func (n Not[T]) Dump() string {
	return fmt.Sprintf("(NOT %s)", n.Operand.Dump())
}

// Call represents a function call with ordered argument expressions.
type Call[T comparable] struct {
	Name string
	Args []Node[T]
}

func (Call[T]) node() {}

func (c Call[T]) Dump() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.Dump())
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

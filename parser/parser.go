// Package parser implements a precedence-climbing recursive descent
// parser for the formula expression language.
package parser

import (
	"fmt"

	"github.com/formulang/formula/ast"
	"github.com/formulang/formula/lexer"
	"github.com/formulang/formula/number"
)

type parser[T comparable] struct {
	tokens []lexer.Token
	pos    int

	ops number.Ops[T]
}

// syntaxError wraps parse failures so the recover at the Parse boundary
// only swallows our own panics.
type syntaxError struct{ err error }

// Parse consumes the full token stream and returns the AST root.
// Number literals are converted through the given capability set.
// Any token left over after a complete parse is a syntax error.
func Parse[T comparable](tokens []lexer.Token, ops number.Ops[T]) (root ast.Node[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(syntaxError)
			if !ok {
				panic(r)
			}
			root, err = nil, se.err
		}
	}()

	p := &parser[T]{tokens: tokens, ops: ops}
	root = p.parseSequence()
	p.expect(lexer.TokEOF)
	return root, nil
}

// ParseString tokenizes and parses in one step.
func ParseString[T comparable](input string, ops number.Ops[T]) (ast.Node[T], error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, ops)
}

func (p *parser[T]) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser[T]) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF}
	}
	return p.tokens[p.pos+1]
}

func (p *parser[T]) next() lexer.Token {
	tok := p.cur()
	p.pos++
	return tok
}

// expect checks if the current token is of the expected type.
func (p *parser[T]) expect(kind ...lexer.TokenType) lexer.Token {
	if p.cur().Type.IsOneOf(kind...) {
		return p.cur()
	}
	p.errorf("expected token %v but got %s", kind, p.cur())
	return lexer.Token{} // Unreachable.
}

func (p *parser[T]) errorf(format string, args ...any) {
	panic(syntaxError{fmt.Errorf("syntax error: "+format, args...)})
}

package parser

import (
	"strings"

	"github.com/formulang/formula/ast"
	"github.com/formulang/formula/lexer"
)

// Grammar, one function per precedence level, lowest first. Each level
// calls the next-higher one for its operands.

// sequence: assignment (';' assignment)* ';'?
func (p *parser[T]) parseSequence() ast.Node[T] {
	stmts := []ast.Node[T]{p.parseAssignment()}
	for p.cur().Type == lexer.TokSemicolon {
		p.next()
		// A trailing ';' before end of input is permitted.
		if p.cur().Type == lexer.TokEOF {
			break
		}
		stmts = append(stmts, p.parseAssignment())
	}
	if len(stmts) == 1 {
		return stmts[0]
	}
	return ast.Sequence[T]{Stmts: stmts}
}

// assignment: IDENTIFIER '=' assignment | or
// Right-associative, fires only on the one-token lookahead.
func (p *parser[T]) parseAssignment() ast.Node[T] {
	if p.cur().Type == lexer.TokIdentifier && p.peek().Type == lexer.TokEquals {
		name := p.cur().Value
		if !strings.HasPrefix(name, "$") {
			p.errorf("cannot assign to %q: variable names must start with '$'", name)
		}
		p.next() // Consume the identifier.
		p.next() // Consume the '='.
		return ast.Assignment[T]{Name: name, Value: p.parseAssignment()}
	}
	return p.parseOr()
}

func (p *parser[T]) parseOr() ast.Node[T] {
	left := p.parseAnd()
	for p.cur().Type == lexer.TokOr {
		p.next()
		left = ast.Logical[T]{Op: lexer.TokOr, Left: left, Right: p.parseAnd()}
	}
	return left
}

func (p *parser[T]) parseAnd() ast.Node[T] {
	left := p.parseEquality()
	for p.cur().Type == lexer.TokAnd {
		p.next()
		left = ast.Logical[T]{Op: lexer.TokAnd, Left: left, Right: p.parseEquality()}
	}
	return left
}

func (p *parser[T]) parseEquality() ast.Node[T] {
	left := p.parseRelational()
	for p.cur().Type.IsOneOf(lexer.TokEqualEqual, lexer.TokBangEqual) {
		op := p.next().Type
		left = ast.Compare[T]{Op: op, Left: left, Right: p.parseRelational()}
	}
	return left
}

func (p *parser[T]) parseRelational() ast.Node[T] {
	left := p.parseAdditive()
	for p.cur().Type.IsOneOf(lexer.TokLess, lexer.TokLessEqual, lexer.TokGreater, lexer.TokGreaterEqual) {
		op := p.next().Type
		left = ast.Compare[T]{Op: op, Left: left, Right: p.parseAdditive()}
	}
	return left
}

func (p *parser[T]) parseAdditive() ast.Node[T] {
	left := p.parseMultiplicative()
	for p.cur().Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		op := p.next().Type
		left = ast.Binary[T]{Op: op, Left: left, Right: p.parseMultiplicative()}
	}
	return left
}

func (p *parser[T]) parseMultiplicative() ast.Node[T] {
	left := p.parsePower()
	for p.cur().Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		op := p.next().Type
		left = ast.Binary[T]{Op: op, Left: left, Right: p.parsePower()}
	}
	return left
}

// power: unary ('^' power)?
// Right-associative: a^b^c parses as a^(b^c).
func (p *parser[T]) parsePower() ast.Node[T] {
	left := p.parseUnary()
	if p.cur().Type == lexer.TokCaret {
		p.next()
		return ast.Binary[T]{Op: lexer.TokCaret, Left: left, Right: p.parsePower()}
	}
	return left
}

func (p *parser[T]) parseUnary() ast.Node[T] {
	switch p.cur().Type {
	case lexer.TokPlus:
		// Unary plus is the identity, no node needed.
		p.next()
		return p.parseUnary()
	case lexer.TokMinus:
		p.next()
		return ast.Unary[T]{Op: lexer.TokMinus, Operand: p.parseUnary()}
	case lexer.TokNot:
		p.next()
		return ast.Not[T]{Operand: p.parseUnary()}
	}
	return p.parsePrimary()
}

func (p *parser[T]) parsePrimary() ast.Node[T] {
	switch tok := p.cur(); tok.Type {
	case lexer.TokNumber:
		v, err := p.ops.Parse(tok.Value)
		if err != nil {
			p.errorf("invalid number literal %q: %v", tok.Value, err)
		}
		p.next()
		return ast.Constant[T]{Value: v}
	case lexer.TokTrue:
		p.next()
		return ast.BoolLiteral[T]{Value: true}
	case lexer.TokFalse:
		p.next()
		return ast.BoolLiteral[T]{Value: false}
	case lexer.TokParenLeft:
		p.next()
		inner := p.parseAssignment()
		p.expect(lexer.TokParenRight)
		p.next()
		return inner
	case lexer.TokIdentifier:
		return p.parseIdentifier()
	default:
		p.errorf("unexpected token %s", tok)
		return nil // Unreachable.
	}
}

// parseIdentifier handles the three identifier forms: a function call
// 'name(args...)', a plain variable '$name' and a scoped variable
// 'scope.path.$name'. A bare identifier used as a value is rejected.
func (p *parser[T]) parseIdentifier() ast.Node[T] {
	name := p.next().Value

	switch {
	case p.cur().Type == lexer.TokParenLeft:
		p.next()
		var args []ast.Node[T]
		if p.cur().Type != lexer.TokParenRight {
			for {
				args = append(args, p.parseAssignment())
				if p.cur().Type == lexer.TokComma {
					p.next()
					continue
				}
				break
			}
		}
		p.expect(lexer.TokParenRight)
		p.next()
		return ast.Call[T]{Name: name, Args: args}

	case strings.HasPrefix(name, "$"):
		return ast.Variable[T]{Name: name}

	case p.cur().Type == lexer.TokDot:
		path := []string{name}
		for p.cur().Type == lexer.TokDot {
			p.next()
			part := p.expect(lexer.TokIdentifier).Value
			p.next()
			if strings.HasPrefix(part, "$") {
				return ast.Variable[T]{Path: path, Name: part}
			}
			path = append(path, part)
		}
		p.errorf("scope path %q must end with a '$'-prefixed variable", strings.Join(path, "."))
		return nil // Unreachable.

	default:
		p.errorf("bare identifier %q cannot be used as a value", name)
		return nil // Unreachable.
	}
}

package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokNumber
	TokIdentifier
	TokTrue
	TokFalse

	// Arithmetic operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokCaret

	// Comparison operators.
	TokEqualEqual
	TokBangEqual
	TokGreater
	TokGreaterEqual
	TokLess
	TokLessEqual

	// Logical operators. The word and symbol forms ('and'/'&&',
	// 'or'/'||', 'not'/'!') collapse to one type each.
	TokAnd
	TokOr
	TokNot

	// Grouping and separators.
	TokParenLeft
	TokParenRight
	TokComma
	TokSemicolon
	TokEquals
	TokDot

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",
	TokTrue:       "TRUE",
	TokFalse:      "FALSE",

	TokPlus:  "+",
	TokMinus: "-",
	TokStar:  "*",
	TokSlash: "/",
	TokCaret: "^",

	TokEqualEqual:   "==",
	TokBangEqual:    "!=",
	TokGreater:      ">",
	TokGreaterEqual: ">=",
	TokLess:         "<",
	TokLessEqual:    "<=",

	TokAnd: "AND",
	TokOr:  "OR",
	TokNot: "NOT",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokComma:      "COMMA",
	TokSemicolon:  "SEMICOLON",
	TokEquals:     "EQUALS",
	TokDot:        "DOT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token in the expression language.
type Token struct {
	Type  TokenType
	Value string

	pos int
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

package lexer

import "strings"

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokMinus,
		'*': TokStar,
		'/': TokSlash,
		'^': TokCaret,
		'(': TokParenLeft,
		')': TokParenRight,
		',': TokComma,
		';': TokSemicolon,
		'.': TokDot,
	}

	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(" \t\r\n")
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '$' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return lexIdentifier
	case r == '=':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.emit(TokEqualEqual)
		}
		return l.emit(TokEquals)
	case r == '!':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.emit(TokBangEqual)
		}
		return l.emit(TokNot)
	case r == '>':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.emit(TokGreaterEqual)
		}
		return l.emit(TokGreater)
	case r == '<':
		l.next()
		if l.peek() == '=' {
			l.next()
			return l.emit(TokLessEqual)
		}
		return l.emit(TokLess)
	case r == '&':
		l.next()
		if l.peek() == '&' {
			l.next()
			return l.emit(TokAnd)
		}
		return l.errorf("incomplete operator %q at offset %d, expected %q", "&", l.start, "&&")
	case r == '|':
		l.next()
		if l.peek() == '|' {
			l.next()
			return l.emit(TokOr)
		}
		return l.errorf("incomplete operator %q at offset %d, expected %q", "|", l.start, "||")
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character %q at offset %d", r, l.start)
	}
}

func lexNumber(l *Lexer) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	// At most one decimal point. A literal may not start with '.',
	// which keeps the scope separator unambiguous.
	if l.peek() == '.' {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	word := l.input[l.start:l.pos]
	// '$'-prefixed names are always identifiers, never keywords.
	if strings.HasPrefix(word, "$") {
		return l.emit(TokIdentifier)
	}
	switch strings.ToLower(word) {
	case "and":
		return l.emit(TokAnd)
	case "or":
		return l.emit(TokOr)
	case "not":
		return l.emit(TokNot)
	case "true":
		return l.emit(TokTrue)
	case "false":
		return l.emit(TokFalse)
	default:
		return l.emit(TokIdentifier)
	}
}

package lexer

import (
	"testing"
)

// Helper function to test the lexer.
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF || tok.Type == TokError {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerNumbers(t *testing.T) {
	input := "2 + 3.5 * 10"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "2"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "3.5"},
		{Type: TokStar, Value: "*"},
		{Type: TokNumber, Value: "10"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerKeywords(t *testing.T) {
	input := "true and not FALSE or $and"
	expectedTokens := []Token{
		{Type: TokTrue, Value: "true"},
		{Type: TokAnd, Value: "and"},
		{Type: TokNot, Value: "not"},
		{Type: TokFalse, Value: "FALSE"},
		{Type: TokOr, Value: "or"},
		{Type: TokIdentifier, Value: "$and"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerComparisons(t *testing.T) {
	input := "$a >= 1 == 2 != 3 <= 4 < 5 > 6"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "$a"},
		{Type: TokGreaterEqual, Value: ">="},
		{Type: TokNumber, Value: "1"},
		{Type: TokEqualEqual, Value: "=="},
		{Type: TokNumber, Value: "2"},
		{Type: TokBangEqual, Value: "!="},
		{Type: TokNumber, Value: "3"},
		{Type: TokLessEqual, Value: "<="},
		{Type: TokNumber, Value: "4"},
		{Type: TokLess, Value: "<"},
		{Type: TokNumber, Value: "5"},
		{Type: TokGreater, Value: ">"},
		{Type: TokNumber, Value: "6"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerSymbolLogical(t *testing.T) {
	input := "$a && $b || !$c"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "$a"},
		{Type: TokAnd, Value: "&&"},
		{Type: TokIdentifier, Value: "$b"},
		{Type: TokOr, Value: "||"},
		{Type: TokNot, Value: "!"},
		{Type: TokIdentifier, Value: "$c"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerScopePath(t *testing.T) {
	input := "player.parent.$hp"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "player"},
		{Type: TokDot, Value: "."},
		{Type: TokIdentifier, Value: "parent"},
		{Type: TokDot, Value: "."},
		{Type: TokIdentifier, Value: "$hp"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerCallAndAssignment(t *testing.T) {
	input := "min($a, $b); $x = 2 ^ 3"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "min"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokIdentifier, Value: "$a"},
		{Type: TokComma, Value: ","},
		{Type: TokIdentifier, Value: "$b"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokSemicolon, Value: ";"},
		{Type: TokIdentifier, Value: "$x"},
		{Type: TokEquals, Value: "="},
		{Type: TokNumber, Value: "2"},
		{Type: TokCaret, Value: "^"},
		{Type: TokNumber, Value: "3"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Only whitespace",
			input: "   \t  \n  ",
			expected: []Token{
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Number with trailing dot",
			input: "10.",
			expected: []Token{
				{Type: TokNumber, Value: "10."},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Dot is not a number start",
			input: ".5",
			expected: []Token{
				{Type: TokDot, Value: "."},
				{Type: TokNumber, Value: "5"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Underscore identifier",
			input: "_x $_y",
			expected: []Token{
				{Type: TokIdentifier, Value: "_x"},
				{Type: TokIdentifier, Value: "$_y"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Single ampersand",
			input: "1 &",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokError, Value: `incomplete operator "&" at offset 2, expected "&&"`},
			},
		},
		{
			name:  "Single pipe",
			input: "2 | 3",
			expected: []Token{
				{Type: TokNumber, Value: "2"},
				{Type: TokError, Value: `incomplete operator "|" at offset 2, expected "||"`},
			},
		},
		{
			name:  "Unexpected character",
			input: "@",
			expected: []Token{
				{Type: TokError, Value: `unexpected character '@' at offset 0`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("$hp > 0")
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[len(tokens)-1].Type != TokEOF {
		t.Fatalf("Expected trailing EOF token, got %s", tokens[len(tokens)-1])
	}
}

func TestTokenizeError(t *testing.T) {
	if _, err := Tokenize("1 &"); err == nil {
		t.Fatal("Expected a lexical error for bare '&'")
	}
	if _, err := Tokenize("~"); err == nil {
		t.Fatal("Expected a lexical error for '~'")
	}
}

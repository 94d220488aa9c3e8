package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/formulang/formula/ast"
	"github.com/formulang/formula/lexer"
	"github.com/formulang/formula/number"
)

func parseDump(t *testing.T, input string) string {
	t.Helper()

	root, err := ParseString(input, number.Float64Ops{})
	require.NoError(t, err, "parse %q", input)
	return root.Dump()
}

func TestParserPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"(2 + 3) * 4", "((2 + 3) * 4)"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"2 - 3 - 4", "((2 - 3) - 4)"},
		{"2 / 3 / 4", "((2 / 3) / 4)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"-2 ^ 2", "((-2) ^ 2)"},
		{"1 < 2 == 3 >= 4", "((1 < 2) == (3 >= 4))"},
		{"$a > 0 and $b >= 10 or false", "((($a > 0) AND ($b >= 10)) OR false)"},
		{"not true or true", "((NOT true) OR true)"},
		{"not ($a and $b)", "(NOT ($a AND $b))"},
		{"+5 - -5", "(5 - (-5))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, parseDump(t, tt.input))
		})
	}
}

func TestParserSequenceAndAssignment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$x = 2", "$x = 2"},
		{"$x = 2;", "$x = 2"},
		{"$x = $y = 3", "$x = $y = 3"},
		{"$x = 2; $y = $x * 3; $y + 1", "$x = 2; $y = ($x * 3); ($y + 1)"},
		{"($x = 2) + 1", "($x = 2 + 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, parseDump(t, tt.input))
		})
	}
}

func TestParserVariablesAndCalls(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$hp", "$hp"},
		{"player.$hp", "player.$hp"},
		{"self.parent.$hp", "self.parent.$hp"},
		{"min($a, $b)", "min($a, $b)"},
		{"rand()", "rand()"},
		{"if($a > 0, $a, -$a)", "if(($a > 0), $a, (-$a))"},
		{"max(1, min(2, 3))", "max(1, min(2, 3))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, parseDump(t, tt.input))
		})
	}
}

func TestParserShapes(t *testing.T) {
	root, err := ParseString("$x = 2; player.$hp", number.Float64Ops{})
	require.NoError(t, err)

	seq, ok := root.(ast.Sequence[float64])
	require.True(t, ok, "expected a Sequence root, got:\n%s", pretty.Sprint(root))
	require.Len(t, seq.Stmts, 2)

	assign, ok := seq.Stmts[0].(ast.Assignment[float64])
	require.True(t, ok, "expected an Assignment, got:\n%s", pretty.Sprint(seq.Stmts[0]))
	require.Equal(t, "$x", assign.Name)

	v, ok := seq.Stmts[1].(ast.Variable[float64])
	require.True(t, ok, "expected a Variable, got:\n%s", pretty.Sprint(seq.Stmts[1]))
	require.Equal(t, []string{"player"}, v.Path)
	require.Equal(t, "$hp", v.Name)
}

func TestParserLiteralUsesCapability(t *testing.T) {
	root, err := ParseString("42", number.Int64Ops{})
	require.NoError(t, err)
	c, ok := root.(ast.Constant[int64])
	require.True(t, ok)
	require.Equal(t, int64(42), c.Value)

	// "2.5" is not a valid int64 literal.
	_, err = ParseString("2.5", number.Int64Ops{})
	require.Error(t, err)
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed paren", "("},
		{"dangling operator", "2 +"},
		{"bare identifier", "foo"},
		{"bare identifier in expr", "1 + foo"},
		{"assignment without dollar", "foo = 2"},
		{"trailing tokens", "2 3"},
		{"missing call paren", "min(1, 2"},
		{"empty argument", "min(1, )"},
		{"scope path without variable", "player.foo"},
		{"empty sequence entry", "; 1"},
		{"lone semicolon", ";"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.input)
			require.NoError(t, err, "tokenize %q", tt.input)
			_, err = Parse(tokens, number.Float64Ops{})
			require.Error(t, err, "parse %q should fail", tt.input)
		})
	}
}

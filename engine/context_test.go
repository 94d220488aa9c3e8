package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formulang/formula/number"
)

func TestResolveScopedDirect(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.Scope("player").Set("$hp", 7)

	v, err := eng.Evaluate("player.$hp", ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	// Scope names are case-insensitive too.
	v, err = eng.Evaluate("Player.$HP", ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestResolveScopedSelfAlias(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.SetVariable("$hp", 3)

	// "self" names the current scope, which resolves against the
	// context's own variables.
	v, err := eng.Evaluate("self.$hp", ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestResolveScopedRelation(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.CurrentScope = "minion"
	ctx.Scope("player").Set("$hp", 7)
	ctx.RelationProviders = append(ctx.RelationProviders,
		ScopeRelationProviderFunc(func(scope, relation string) (string, bool) {
			if scope == "minion" && relation == "parent" {
				return "player", true
			}
			return "", false
		}))

	v, err := eng.Evaluate("self.parent.$hp", ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestResolveScopedPermissiveHop(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.Scope("boss").Set("$atk", 12)

	// No relation provider claims the hop; the token itself names the
	// next scope.
	v, err := eng.Evaluate("self.boss.$atk", ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
}

func TestResolveScopedFallsBackToSelf(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.SetVariable("$hp", 5)

	// Unknown scope falls back to self resolution.
	v, err := eng.Evaluate("ghost.$hp", ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	_, err = eng.Evaluate("ghost.$missing", ctx)
	require.ErrorIs(t, err, ErrUnknownVariable)
}

func TestScopeProviderMemoization(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()

	calls := 0
	sb := NewScopeBinding[float64]()
	sb.Providers = append(sb.Providers, VariableProviderFunc[float64](func(name string) (float64, bool) {
		if name != "$mana" {
			return 0, false
		}
		calls++
		return 30, true
	}))
	ctx.BindScope("player", sb)

	for i := 0; i < 2; i++ {
		v, err := eng.Evaluate("player.$mana", ctx)
		require.NoError(t, err)
		assert.Equal(t, 30.0, v)
	}
	assert.Equal(t, 1, calls, "scope provider hit must be memoized into the scope")
	assert.Equal(t, 30.0, sb.Variables["$mana"])
}

func TestRootScope(t *testing.T) {
	eng := New[float64](number.Float64Ops{})
	ctx := NewContext[float64]()
	ctx.CurrentScope = "minion"
	ctx.Scope("root").Set("$level", 4)

	v, err := eng.Evaluate("root.$level", ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

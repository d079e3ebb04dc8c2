package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// branchyDef builds a function whose body is n sequential if statements,
// giving a cyclomatic complexity of n+1.
func branchyDef(fname string, n int) *pyast.FunctionDef {
	var body []pyast.Stmt
	for i := 0; i < n; i++ {
		line := 2 + i*2
		body = append(body, &pyast.If{
			NodeInfo: at(line, 4),
			Cond:     name(line, 7, "flag"),
			Body:     []pyast.Stmt{&pyast.Pass{NodeInfo: at(line+1, 8)}},
		})
	}
	return def(1, fname, &pyast.Arguments{NodeInfo: at(1, 6+len(fname))}, body...)
}

func TestComplexity(t *testing.T) {
	mod := module(branchyDef("busy", 3)) // complexity 4

	t.Run("disabled by default", func(t *testing.T) {
		report := analyze(t, mod, lint.NewConfig().SetMaxComplexity(2))
		assert.Empty(t, only(report, "C901"))
	})

	t.Run("inert without a threshold", func(t *testing.T) {
		report := analyze(t, mod, lint.NewConfig().Select("C901"))
		assert.Empty(t, only(report, "C901"))
	})

	t.Run("over the threshold", func(t *testing.T) {
		cfg := lint.NewConfig().Select("C901").SetMaxComplexity(2)
		report := analyze(t, mod, cfg)

		got := only(report, "C901")
		require.Len(t, got, 1)
		assert.Equal(t, `"busy" is too complex (4 > 2)`, got[0].Message)
		assert.Equal(t, 1, got[0].Pos.Line, "reported at the def")
	})

	t.Run("at the threshold", func(t *testing.T) {
		cfg := lint.NewConfig().Select("C901").SetMaxComplexity(4)
		report := analyze(t, mod, cfg)
		assert.Empty(t, only(report, "C901"))
	})

	t.Run("per-rule option wins over the global threshold", func(t *testing.T) {
		cfg := lint.NewConfig().Select("C901").SetMaxComplexity(10)
		cfg.SetRuleOptions("C901", map[string]any{"max-complexity": 2})
		report := analyze(t, mod, cfg)
		assert.Len(t, only(report, "C901"), 1)
	})
}

func TestComplexityCounting(t *testing.T) {
	cfg := func(threshold int) *lint.Config {
		return lint.NewConfig().Select("C901").SetMaxComplexity(threshold)
	}

	t.Run("boolean operands add paths", func(t *testing.T) {
		// if a and b and c: one branch plus two extra operands.
		cond := &pyast.BoolOp{NodeInfo: at(2, 7), Op: pyast.OpAnd, Values: []pyast.Expr{
			name(2, 7, "a"),
			name(2, 13, "b"),
			name(2, 19, "c"),
		}}
		fn := def(1, "f", &pyast.Arguments{NodeInfo: at(1, 6)},
			&pyast.If{
				NodeInfo: at(2, 4),
				Cond:     cond,
				Body:     []pyast.Stmt{&pyast.Pass{NodeInfo: at(3, 8)}},
			},
		)
		// complexity 1 + 1 (if) + 2 (operands) = 4
		report := analyze(t, module(fn), cfg(3))
		assert.Len(t, only(report, "C901"), 1)

		report = analyze(t, module(fn), cfg(4))
		assert.Empty(t, only(report, "C901"))
	})

	t.Run("each handler adds a path", func(t *testing.T) {
		try := &pyast.Try{
			NodeInfo: at(2, 4),
			Body:     []pyast.Stmt{&pyast.Pass{NodeInfo: at(3, 8)}},
			Handlers: []*pyast.ExceptHandler{
				handler(4, name(4, 11, "ValueError")),
				handler(6, name(6, 11, "KeyError")),
			},
		}
		fn := def(1, "f", &pyast.Arguments{NodeInfo: at(1, 6)}, try)
		// complexity 1 + 2 handlers = 3
		report := analyze(t, module(fn), cfg(2))
		assert.Len(t, only(report, "C901"), 1)

		report = analyze(t, module(fn), cfg(3))
		assert.Empty(t, only(report, "C901"))
	})

	t.Run("nested definitions are measured separately", func(t *testing.T) {
		outer := def(1, "outer", &pyast.Arguments{NodeInfo: at(1, 10)},
			branchyDef("inner", 3),
		)
		outer.Body[0].(*pyast.FunctionDef).NodeInfo = at(2, 4)

		report := analyze(t, module(outer), cfg(2))
		got := only(report, "C901")
		require.Len(t, got, 1, "outer stays at complexity 1")
		assert.Contains(t, got[0].Message, `"inner"`)
	})
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

func forLoop(line int, target pyast.Expr, body ...pyast.Stmt) *pyast.For {
	return &pyast.For{
		NodeInfo: at(line, 0),
		Target:   target,
		Iter:     call(line, 9, name(line, 9, "range"), &pyast.Num{NodeInfo: at(line, 15), Value: "10"}),
		Body:     body,
	}
}

func TestUnusedLoopVar(t *testing.T) {
	t.Run("unused variable", func(t *testing.T) {
		loop := forLoop(1, name(1, 4, "i"),
			exprStmt(2, 4, call(2, 4, name(2, 4, "print"), str(2, 10, "hello"))),
		)
		report := analyze(t, module(loop), nil)

		got := only(report, "B007")
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].Pos.Col, "reported at the variable, not the for keyword")
		assert.Contains(t, got[0].Message, `"i"`)
	})

	t.Run("used variable", func(t *testing.T) {
		loop := forLoop(1, name(1, 4, "i"),
			exprStmt(2, 4, call(2, 4, name(2, 4, "print"), name(2, 10, "i"))),
		)
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B007"))
	})

	t.Run("underscore exempt", func(t *testing.T) {
		loop := forLoop(1, name(1, 4, "_"),
			exprStmt(2, 4, call(2, 4, name(2, 4, "print"), str(2, 10, "hello"))),
		)
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B007"))
	})

	t.Run("tuple target partially used", func(t *testing.T) {
		target := &pyast.Tuple{NodeInfo: at(1, 4), Elts: []pyast.Expr{
			name(1, 4, "k"),
			name(1, 7, "v"),
		}}
		loop := forLoop(1, target,
			exprStmt(2, 4, call(2, 4, name(2, 4, "print"), name(2, 10, "v"))),
		)
		report := analyze(t, module(loop), nil)

		got := only(report, "B007")
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, `"k"`)
	})

	t.Run("multiple unused are sorted", func(t *testing.T) {
		target := &pyast.Tuple{NodeInfo: at(1, 4), Elts: []pyast.Expr{
			name(1, 4, "z"),
			name(1, 7, "a"),
		}}
		loop := forLoop(1, target, &pyast.Pass{NodeInfo: at(2, 4)})
		report := analyze(t, module(loop), nil)

		got := only(report, "B007")
		require.Len(t, got, 2)
		assert.Contains(t, got[0].Message, `"a"`)
		assert.Contains(t, got[1].Message, `"z"`)
	})

	t.Run("use inside a nested closure counts", func(t *testing.T) {
		lam := &pyast.Lambda{
			NodeInfo: at(2, 8),
			Args:     &pyast.Arguments{NodeInfo: at(2, 14)},
			Body:     name(2, 16, "i"),
		}
		loop := forLoop(1, name(1, 4, "i"), exprStmt(2, 4, lam))
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B007"))
	})
}

func TestLoopClosure(t *testing.T) {
	lambdaReading := func(line, col int, id string) *pyast.Lambda {
		return &pyast.Lambda{
			NodeInfo: at(line, col),
			Args:     &pyast.Arguments{NodeInfo: at(line, col+6)},
			Body:     name(line, col+8, id),
		}
	}

	t.Run("lambda captures by reference", func(t *testing.T) {
		loop := forLoop(1, name(1, 4, "i"),
			exprStmt(2, 4, lambdaReading(2, 4, "i")),
		)
		report := analyze(t, module(loop), nil)

		got := only(report, "B023")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Pos.Line)
		assert.Equal(t, 4, got[0].Pos.Col, "reported at the closure")
		assert.Contains(t, got[0].Message, `"i"`)
	})

	t.Run("default argument capture is the fix", func(t *testing.T) {
		// lambda i=i: i
		lam := &pyast.Lambda{
			NodeInfo: at(2, 4),
			Args: &pyast.Arguments{
				NodeInfo: at(2, 11),
				Args:     []*pyast.Arg{{NodeInfo: at(2, 11), Name: "i"}},
				Defaults: []pyast.Expr{name(2, 13, "i")},
			},
			Body: name(2, 16, "i"),
		}
		loop := forLoop(1, name(1, 4, "i"), exprStmt(2, 4, lam))
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B023"))
	})

	t.Run("nested def reading the loop var", func(t *testing.T) {
		inner := def(2, "cb", &pyast.Arguments{NodeInfo: at(2, 10)},
			&pyast.Return{NodeInfo: at(3, 8), Value: name(3, 15, "i")},
		)
		loop := forLoop(1, name(1, 4, "i"), inner)
		report := analyze(t, module(loop), nil)

		got := only(report, "B023")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Pos.Line)
	})

	t.Run("def rebinding the name locally", func(t *testing.T) {
		inner := def(2, "cb", &pyast.Arguments{NodeInfo: at(2, 10)},
			assign(3, 8, name(3, 8, "i"), &pyast.Num{NodeInfo: at(3, 12), Value: "0"}),
			&pyast.Return{NodeInfo: at(4, 8), Value: name(4, 15, "i")},
		)
		loop := forLoop(1, name(1, 4, "i"), inner)
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B023"))
	})

	t.Run("lambda under a def that rebinds the name", func(t *testing.T) {
		// for i in range(10):
		//     def f():
		//         i = 0
		//         lambda: i
		// The lambda's free name resolves to f's local, not the loop
		// variable.
		inner := def(2, "f", &pyast.Arguments{NodeInfo: at(2, 9)},
			assign(3, 8, name(3, 8, "i"), &pyast.Num{NodeInfo: at(3, 12), Value: "0"}),
			exprStmt(4, 8, lambdaReading(4, 8, "i")),
		)
		loop := forLoop(1, name(1, 4, "i"), inner)
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B023"))
	})

	t.Run("lambda under a def that does not rebind", func(t *testing.T) {
		inner := def(2, "f", &pyast.Arguments{NodeInfo: at(2, 9)},
			exprStmt(3, 8, lambdaReading(3, 8, "i")),
		)
		loop := forLoop(1, name(1, 4, "i"), inner)
		report := analyze(t, module(loop), nil)

		got := only(report, "B023")
		require.Len(t, got, 2, "both f and the lambda capture the loop variable")
		assert.Equal(t, 2, got[0].Pos.Line)
		assert.Equal(t, 3, got[1].Pos.Line)
	})

	t.Run("while loop binds nothing", func(t *testing.T) {
		loop := &pyast.While{
			NodeInfo: at(1, 0),
			Cond:     &pyast.Const{NodeInfo: at(1, 6), Value: pyast.ConstTrue},
			Body:     []pyast.Stmt{exprStmt(2, 4, lambdaReading(2, 4, "i"))},
		}
		report := analyze(t, module(loop), nil)
		assert.Empty(t, only(report, "B023"))
	})

	t.Run("closure outside any loop", func(t *testing.T) {
		report := analyze(t, module(exprStmt(1, 0, lambdaReading(1, 0, "i"))), nil)
		assert.Empty(t, only(report, "B023"))
	})

	t.Run("one violation per closure", func(t *testing.T) {
		target := &pyast.Tuple{NodeInfo: at(1, 4), Elts: []pyast.Expr{
			name(1, 4, "i"),
			name(1, 7, "j"),
		}}
		lam := &pyast.Lambda{
			NodeInfo: at(2, 4),
			Args:     &pyast.Arguments{NodeInfo: at(2, 10)},
			Body: &pyast.BinOp{
				NodeInfo: at(2, 12),
				Left:     name(2, 12, "i"),
				Op:       "+",
				Right:    name(2, 16, "j"),
			},
		}
		loop := forLoop(1, target, exprStmt(2, 4, lam))
		report := analyze(t, module(loop), nil)
		assert.Len(t, only(report, "B023"), 1)
	})
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

func TestAssertTuple(t *testing.T) {
	stmt := func(test pyast.Expr) *pyast.Assert {
		return &pyast.Assert{NodeInfo: at(1, 0), Test: test}
	}

	t.Run("non-empty tuple is always true", func(t *testing.T) {
		tup := &pyast.Tuple{NodeInfo: at(1, 7), Elts: []pyast.Expr{
			name(1, 8, "ok"),
			str(1, 12, "reason"),
		}}
		report := analyze(t, module(stmt(tup)), nil)

		got := only(report, "B011")
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Pos.Line)
	})

	t.Run("empty tuple is falsy and fine", func(t *testing.T) {
		report := analyze(t, module(stmt(&pyast.Tuple{NodeInfo: at(1, 7)})), nil)
		assert.Empty(t, only(report, "B011"))
	})

	t.Run("plain test", func(t *testing.T) {
		report := analyze(t, module(stmt(name(1, 7, "ok"))), nil)
		assert.Empty(t, only(report, "B011"))
	})

	t.Run("test with separate message", func(t *testing.T) {
		st := stmt(name(1, 7, "ok"))
		st.Msg = str(1, 11, "reason")
		report := analyze(t, module(st), nil)
		assert.Empty(t, only(report, "B011"))
	})
}

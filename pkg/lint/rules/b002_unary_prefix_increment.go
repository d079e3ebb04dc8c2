package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// UnaryPrefixIncrement flags the C-style ++n, which Python parses as a
// double unary plus.
var UnaryPrefixIncrement = lint.RuleDef{
	Code:        "B002",
	Name:        "general.unary_prefix_increment",
	Group:       "general",
	Description: "Python has no unary prefix increment; ++n is a no-op.",
	Severity:    lint.SeverityError,
	Kinds:       []pyast.Kind{pyast.KindUnaryOp},
	Check:       checkUnaryPrefixIncrement,
	Rationale: "++n parses as +(+(n)), which evaluates to n unchanged. The " +
		"intended increment silently never happens.",
	BadExample:  "++n",
	GoodExample: "n += 1",
}

func checkUnaryPrefixIncrement(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	outer, ok := node.(*pyast.UnaryOp)
	if !ok || outer.Op != pyast.OpUAdd {
		return nil
	}
	inner, ok := outer.Operand.(*pyast.UnaryOp)
	if !ok || inner.Op != pyast.OpUAdd {
		return nil
	}
	return []lint.Violation{{
		Code: "B002",
		Message: "Python does not support the unary prefix increment. Writing " +
			"++n is equivalent to +(+(n)), which equals n. You meant n += 1.",
		Pos: outer.Span.Start,
	}}
}

package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// AssertTuple flags assertions on non-empty tuple literals, which are
// always true.
var AssertTuple = lint.RuleDef{
	Code:        "B011",
	Name:        "asserts.assert_tuple",
	Group:       "asserts",
	Description: "Assertion on a non-empty tuple literal is always true.",
	Severity:    lint.SeverityError,
	Kinds:       []pyast.Kind{pyast.KindAssert},
	Check:       checkAssertTuple,
	Rationale: "Wrapping an assert condition and its message in parentheses " +
		"builds a tuple, and any non-empty tuple is truthy, so the " +
		"assertion can never fire.",
	BadExample:  "assert (value > 0, 'value must be positive')",
	GoodExample: "assert value > 0, 'value must be positive'",
	Fix:         "Remove the parentheses around the condition and message.",
}

func checkAssertTuple(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	assert, ok := node.(*pyast.Assert)
	if !ok {
		return nil
	}
	tup, ok := assert.Test.(*pyast.Tuple)
	if !ok || len(tup.Elts) == 0 {
		return nil
	}
	return []lint.Violation{{
		Code: "B011",
		Message: "Assertion on a non-empty tuple is always true. Remove the " +
			"parentheses, or assert each element separately.",
		Pos: assert.Span.Start,
	}}
}

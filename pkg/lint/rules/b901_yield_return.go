package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// YieldReturn flags `return value` inside a generator. Opt-in: the
// combination is legal and meaningful on Python 3.3+, but surprising in
// code bases that use generators as plain iterators.
var YieldReturn = lint.RuleDef{
	Code:              "B901",
	Name:              "generators.yield_return",
	Group:             "generators",
	Description:       "Using `yield` together with `return value` in one function.",
	Severity:          lint.SeverityWarning,
	Kinds:             []pyast.Kind{pyast.KindFunctionDef},
	Check:             checkYieldReturn,
	DisabledByDefault: true,
	Rationale: "In a generator, `return x` sets StopIteration.value rather " +
		"than producing x. Callers iterating the generator never see the " +
		"value, which usually means the author mixed two protocols.",
	BadExample:  "def gen():\n    yield 1\n    return 2",
	GoodExample: "def gen():\n    yield 1\n    yield 2",
	Fix: "Use native `async def` coroutines, or suppress on the line if the " +
		"StopIteration value is intentional.",
}

func checkYieldReturn(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	def, ok := node.(*pyast.FunctionDef)
	if !ok {
		return nil
	}

	hasYield := false
	var firstReturn *pyast.Return
	var scan func(pyast.Node)
	scan = func(n pyast.Node) {
		if n == nil {
			return
		}
		switch t := n.(type) {
		case *pyast.FunctionDef, *pyast.Lambda:
			return // nested functions are their own generators
		case *pyast.Yield:
			hasYield = true
		case *pyast.Return:
			if t.Value != nil && firstReturn == nil {
				firstReturn = t
			}
		}
		for _, c := range pyast.ChildNodes(n) {
			scan(c)
		}
	}
	for _, st := range def.Body {
		scan(st)
	}

	if !hasYield || firstReturn == nil {
		return nil
	}
	return []lint.Violation{{
		Code: "B901",
		Message: "Using `yield` together with `return x`. Use native " +
			"`async def` coroutines or mark the line as intentional.",
		Pos: firstReturn.Span.Start,
	}}
}

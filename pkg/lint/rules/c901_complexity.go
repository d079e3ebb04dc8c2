package rules

import (
	"fmt"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// Complexity flags functions whose cyclomatic complexity exceeds the
// max-complexity threshold. Inert unless a positive threshold is
// configured, and disabled by default on top of that.
var Complexity = lint.RuleDef{
	Code:              "C901",
	Name:              "complexity.function_complexity",
	Group:             "complexity",
	Description:       "Function is more complex than the configured threshold.",
	Severity:          lint.SeverityWarning,
	Kinds:             []pyast.Kind{pyast.KindFunctionDef},
	Check:             checkComplexity,
	ConfigKeys:        []string{"max-complexity"},
	DisabledByDefault: true,
	Rationale: "Deeply branching functions are hard to test exhaustively; " +
		"the count approximates the number of independent paths.",
	Fix: "Extract branches into helper functions until the count drops " +
		"below the threshold.",
}

func checkComplexity(node pyast.Node, _ *lint.Scopes, opts map[string]any) []lint.Violation {
	def, ok := node.(*pyast.FunctionDef)
	if !ok {
		return nil
	}
	threshold := lint.GetIntOption(opts, "max-complexity", 0)
	if threshold <= 0 {
		return nil
	}

	complexity := 1
	var scan func(pyast.Node)
	scan = func(n pyast.Node) {
		if n == nil {
			return
		}
		switch t := n.(type) {
		case *pyast.FunctionDef, *pyast.Lambda:
			return // nested definitions are measured on their own
		case *pyast.If, *pyast.For, *pyast.While:
			complexity++
		case *pyast.Try:
			complexity += len(t.Handlers)
		case *pyast.BoolOp:
			if len(t.Values) > 1 {
				complexity += len(t.Values) - 1
			}
		case *pyast.Comprehension:
			complexity += 1 + len(t.Ifs)
		}
		for _, c := range pyast.ChildNodes(n) {
			scan(c)
		}
	}
	for _, st := range def.Body {
		scan(st)
	}

	if complexity <= threshold {
		return nil
	}
	return []lint.Violation{{
		Code:    "C901",
		Message: fmt.Sprintf("%q is too complex (%d > %d)", def.Name, complexity, threshold),
		Pos:     def.Span.Start,
	}}
}

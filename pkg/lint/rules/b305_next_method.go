package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// NextMethod flags Python 2 style .next() calls on iterators.
var NextMethod = lint.RuleDef{
	Code:        "B305",
	Name:        "compat.next_method",
	Group:       "compat",
	Description: "`.next()` is not a thing on Python 3.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindCall},
	Check:       checkNextMethod,
	Rationale: "Iterators renamed next to __next__ in Python 3; the " +
		"next() builtin is the portable spelling.",
	BadExample:  "value = it.next()",
	GoodExample: "value = next(it)",
	Fix:         "Use the `next()` builtin. For Python 2 compatibility, use `six.next()`.",
}

var nextMethods = map[string]bool{"next": true}

func checkNextMethod(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	call, ok := py2MethodCall(node, nextMethods)
	if !ok {
		return nil
	}
	return []lint.Violation{{
		Code: "B305",
		Message: "`.next()` is not a thing on Python 3. Use the `next()` " +
			"builtin. For Python 2 compatibility, use `six.next()`.",
		Pos: call.Span.Start,
	}}
}

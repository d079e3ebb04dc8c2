package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// HasattrCall flags hasattr(x, "__call__") and getattr(x, "__call__")
// used as callable tests.
var HasattrCall = lint.RuleDef{
	Code:        "B004",
	Name:        "general.hasattr_call",
	Group:       "general",
	Description: "Use `callable(x)` instead of `hasattr(x, '__call__')`.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindCall},
	Check:       checkHasattrCall,
	Rationale: "If x implements a custom __getattr__, or its __call__ is " +
		"itself not callable, the hasattr probe gives misleading results.",
	BadExample:  "if hasattr(fn, '__call__'): fn()",
	GoodExample: "if callable(fn): fn()",
}

func checkHasattrCall(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	call, ok := node.(*pyast.Call)
	if !ok || len(call.Args) < 2 {
		return nil
	}
	fn, ok := call.Func.(*pyast.Name)
	if !ok || (fn.ID != "hasattr" && fn.ID != "getattr") {
		return nil
	}
	arg, ok := call.Args[1].(*pyast.Str)
	if !ok || arg.Value != "__call__" {
		return nil
	}
	return []lint.Violation{{
		Code: "B004",
		Message: "Using `hasattr(x, '__call__')` to test if `x` is callable " +
			"is unreliable. If `x` implements custom `__getattr__` or its " +
			"`__call__` is itself not callable, you might get misleading " +
			"results. Use `callable(x)` for consistent results.",
		Pos: call.Span.Start,
	}}
}

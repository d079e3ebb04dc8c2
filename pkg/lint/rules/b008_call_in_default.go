package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// CallInDefault flags function calls used as parameter defaults. Calls
// the mutable-defaults rule already covers are skipped, as are known
// immutable constructors and anything listed in the
// extend-immutable-calls option.
var CallInDefault = lint.RuleDef{
	Code:        "B008",
	Name:        "defaults.call_in_default",
	Group:       "defaults",
	Description: "Do not perform function calls in argument defaults.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindFunctionDef},
	Check:       checkCallInDefault,
	ConfigKeys:  []string{"extend-immutable-calls"},
	Rationale: "The call runs once, at definition time. Every invocation " +
		"then shares its single result, which is almost never what a " +
		"default like `now=datetime.now()` intends.",
	BadExample:  "def log(msg, when=datetime.now()): ...",
	GoodExample: "def log(msg, when=None):\n    when = when or datetime.now()",
	Fix: "Call the function inside the body, or add the constructor to " +
		"extend-immutable-calls if its result really is shared on purpose.",
}

var immutableCalls = map[string]bool{
	"tuple":     true,
	"frozenset": true,
}

func checkCallInDefault(node pyast.Node, _ *lint.Scopes, opts map[string]any) []lint.Violation {
	def, ok := node.(*pyast.FunctionDef)
	if !ok || def.Args == nil {
		return nil
	}

	extra := lint.GetStringSliceOption(opts, "extend-immutable-calls", nil)
	exempt := func(path string) bool {
		if path == "" {
			return false
		}
		if immutableCalls[path] || mutableCalls[path] {
			return true
		}
		for _, p := range extra {
			if p == path {
				return true
			}
		}
		return false
	}

	var violations []lint.Violation
	for _, dflt := range allDefaults(def.Args) {
		call, ok := dflt.(*pyast.Call)
		if !ok {
			continue
		}
		if exempt(astutil.CallPath(call.Func)) {
			continue
		}
		violations = append(violations, lint.Violation{
			Code: "B008",
			Message: "Do not perform function calls in argument defaults. The " +
				"call is performed only once at function definition time; all " +
				"calls to your function will reuse the result.",
			Pos: call.Span.Start,
		})
	}
	return violations
}

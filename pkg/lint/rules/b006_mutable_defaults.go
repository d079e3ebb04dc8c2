package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// MutableDefaults flags mutable data structures used as parameter
// defaults. One violation per function definition.
var MutableDefaults = lint.RuleDef{
	Code:        "B006",
	Name:        "defaults.mutable_default",
	Group:       "defaults",
	Description: "Do not use mutable data structures for argument defaults.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindFunctionDef},
	Check:       checkMutableDefaults,
	Rationale: "Defaults are created once, at function definition time. All " +
		"calls reuse that one instance, persisting changes between them.",
	BadExample:  "def add(item, acc=[]):\n    acc.append(item)\n    return acc",
	GoodExample: "def add(item, acc=None):\n    if acc is None:\n        acc = []\n    acc.append(item)\n    return acc",
}

// mutableCalls are constructors whose result is mutable. Shared with the
// call-in-default rule, which skips these so each default gets one code.
var mutableCalls = map[string]bool{
	"dict":                    true,
	"list":                    true,
	"set":                     true,
	"Counter":                 true,
	"OrderedDict":             true,
	"defaultdict":             true,
	"deque":                   true,
	"collections.Counter":     true,
	"collections.OrderedDict": true,
	"collections.defaultdict": true,
	"collections.deque":       true,
}

func checkMutableDefaults(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	def, ok := node.(*pyast.FunctionDef)
	if !ok || def.Args == nil {
		return nil
	}
	for _, dflt := range allDefaults(def.Args) {
		if isMutableDefault(dflt) {
			return []lint.Violation{{
				Code: "B006",
				Message: "Do not use mutable data structures for argument defaults. " +
					"All calls reuse one instance of that data structure, persisting " +
					"changes between them.",
				Pos: dflt.GetSpan().Start,
			}}
		}
	}
	return nil
}

func isMutableDefault(e pyast.Expr) bool {
	switch t := e.(type) {
	case *pyast.List, *pyast.Dict, *pyast.Set:
		return true
	case *pyast.ListComp, *pyast.SetComp, *pyast.DictComp:
		return true
	case *pyast.Call:
		return mutableCalls[astutil.CallPath(t.Func)]
	}
	return false
}

// allDefaults returns positional then keyword-only defaults, in source
// order, skipping absent slots.
func allDefaults(args *pyast.Arguments) []pyast.Expr {
	out := make([]pyast.Expr, 0, len(args.Defaults)+len(args.KwDefaults))
	for _, d := range args.Defaults {
		if d != nil {
			out = append(out, d)
		}
	}
	for _, d := range args.KwDefaults {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

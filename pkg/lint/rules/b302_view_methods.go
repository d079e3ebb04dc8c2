package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// ViewMethods flags Python 2 dictionary .view* method calls.
var ViewMethods = lint.RuleDef{
	Code:        "B302",
	Name:        "compat.view_methods",
	Group:       "compat",
	Description: "Python 3 does not include `.view*` methods on dictionaries.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindCall},
	Check:       checkViewMethods,
	Rationale: "dict.viewkeys and friends were removed in Python 3; the " +
		"plain keys/values/items methods already return views.",
	BadExample:  "shared = a.viewkeys() & b.viewkeys()",
	GoodExample: "shared = a.keys() & b.keys()",
	Fix: "Remove the `view` prefix. For code that must also run on Python 2 " +
		"with large containers, use `six.view*` or `future.utils.view*`.",
}

var viewMethods = map[string]bool{
	"viewkeys":   true,
	"viewvalues": true,
	"viewitems":  true,
	"viewlists":  true,
}

func checkViewMethods(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	call, ok := py2MethodCall(node, viewMethods)
	if !ok {
		return nil
	}
	return []lint.Violation{{
		Code: "B302",
		Message: "Python 3 does not include `.view*` methods on dictionaries. " +
			"Remove the `view` prefix from the method name. For Python 2 " +
			"compatibility, prefer the Python 3 equivalent unless you expect " +
			"the size of the container to be large or unbounded. Then use " +
			"`six.view*` or `future.utils.view*`.",
		Pos: call.Span.Start,
	}}
}

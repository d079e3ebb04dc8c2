package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// IterMethods flags Python 2 dictionary .iter* method calls.
var IterMethods = lint.RuleDef{
	Code:        "B301",
	Name:        "compat.iter_methods",
	Group:       "compat",
	Description: "Python 3 does not include `.iter*` methods on dictionaries.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindCall},
	Check:       checkIterMethods,
	Rationale: "dict.iterkeys and friends were removed in Python 3; the " +
		"plain keys/values/items methods return views with the same lazy " +
		"behavior.",
	BadExample:  "for k, v in d.iteritems(): ...",
	GoodExample: "for k, v in d.items(): ...",
	Fix: "Remove the `iter` prefix. For code that must also run on Python 2 " +
		"with large containers, use `six.iter*` or `future.utils.iter*`.",
}

var iterMethods = map[string]bool{
	"iterkeys":   true,
	"itervalues": true,
	"iteritems":  true,
	"iterlists":  true,
}

// compatExemptPaths are receivers that deliberately provide the Python 2
// spellings.
var compatExemptPaths = map[string]bool{
	"six":          true,
	"future.utils": true,
	"builtins":     true,
}

func checkIterMethods(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	call, ok := py2MethodCall(node, iterMethods)
	if !ok {
		return nil
	}
	return []lint.Violation{{
		Code: "B301",
		Message: "Python 3 does not include `.iter*` methods on dictionaries. " +
			"Remove the `iter` prefix from the method name. For Python 2 " +
			"compatibility, prefer the Python 3 equivalent unless you expect " +
			"the size of the container to be large or unbounded. Then use " +
			"`six.iter*` or `future.utils.iter*`.",
		Pos: call.Span.Start,
	}}
}

// py2MethodCall matches a method call whose attribute name is in the set
// and whose receiver path is not one of the compat-library exemptions.
func py2MethodCall(node pyast.Node, methods map[string]bool) (*pyast.Call, bool) {
	call, ok := node.(*pyast.Call)
	if !ok {
		return nil, false
	}
	attr, ok := call.Func.(*pyast.Attribute)
	if !ok || !methods[attr.Attr] {
		return nil, false
	}
	if compatExemptPaths[astutil.CallPath(attr.Value)] {
		return nil, false
	}
	return call, true
}

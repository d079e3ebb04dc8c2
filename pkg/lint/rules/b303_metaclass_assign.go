package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// MetaclassAssign flags `__metaclass__` assignments in class bodies.
var MetaclassAssign = lint.RuleDef{
	Code:        "B303",
	Name:        "compat.metaclass_assign",
	Group:       "compat",
	Description: "`__metaclass__` does nothing on Python 3.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindAssign},
	Check:       checkMetaclassAssign,
	Rationale: "Python 3 ignores the __metaclass__ class attribute; the " +
		"class silently gets the default metaclass.",
	BadExample:  "class Model:\n    __metaclass__ = Meta",
	GoodExample: "class Model(metaclass=Meta): ...",
	Fix: "Use `class MyClass(BaseClass, metaclass=...)`. For Python 2 " +
		"compatibility, use `six.add_metaclass`.",
}

func checkMetaclassAssign(node pyast.Node, scopes *lint.Scopes, _ map[string]any) []lint.Violation {
	assign, ok := node.(*pyast.Assign)
	if !ok || scopes.CurrentKind() != lint.ScopeClass {
		return nil
	}
	for _, target := range assign.Targets {
		if name, ok := target.(*pyast.Name); ok && name.ID == "__metaclass__" {
			return []lint.Violation{{
				Code: "B303",
				Message: "`__metaclass__` does nothing on Python 3. Use " +
					"`class MyClass(BaseClass, metaclass=...)`. For Python 2 " +
					"compatibility, use `six.add_metaclass`.",
				Pos: assign.Span.Start,
			}}
		}
	}
	return nil
}

package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// SysMaxint flags references to sys.maxint.
var SysMaxint = lint.RuleDef{
	Code:        "B304",
	Name:        "compat.sys_maxint",
	Group:       "compat",
	Description: "`sys.maxint` is not a thing on Python 3.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindAttribute},
	Check:       checkSysMaxint,
	Rationale: "Python 3 integers are unbounded, so sys.maxint was removed. " +
		"sys.maxsize is the closest practical limit.",
	BadExample:  "largest = sys.maxint",
	GoodExample: "largest = sys.maxsize",
}

func checkSysMaxint(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	attr, ok := node.(*pyast.Attribute)
	if !ok || astutil.CallPath(attr) != "sys.maxint" {
		return nil
	}
	return []lint.Violation{{
		Code:    "B304",
		Message: "`sys.maxint` is not a thing on Python 3. Use `sys.maxsize`.",
		Pos:     attr.Span.Start,
	}}
}

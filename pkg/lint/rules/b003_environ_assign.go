package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// EnvironAssign flags wholesale assignment to os.environ.
var EnvironAssign = lint.RuleDef{
	Code:        "B003",
	Name:        "general.environ_assign",
	Group:       "general",
	Description: "Assigning to `os.environ` does not clear the environment.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindAssign},
	Check:       checkEnvironAssign,
	Rationale: "Replacing the os.environ mapping leaves the real process " +
		"environment untouched, so subprocesses see outdated variables in " +
		"disagreement with the current process.",
	BadExample:  "os.environ = {'PATH': '/usr/bin'}",
	GoodExample: "os.environ.clear()\nos.environ['PATH'] = '/usr/bin'",
	Fix:         "Use `os.environ.clear()` or the `env=` argument to Popen.",
}

func checkEnvironAssign(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	assign, ok := node.(*pyast.Assign)
	if !ok || len(assign.Targets) != 1 {
		return nil
	}
	attr, ok := assign.Targets[0].(*pyast.Attribute)
	if !ok || attr.Attr != "environ" {
		return nil
	}
	base, ok := attr.Value.(*pyast.Name)
	if !ok || base.ID != "os" {
		return nil
	}
	return []lint.Violation{{
		Code: "B003",
		Message: "Assigning to `os.environ` doesn't clear the environment. " +
			"Subprocesses are going to see outdated variables, in disagreement " +
			"with the current process. Use `os.environ.clear()` or the `env=` " +
			"argument to Popen.",
		Pos: assign.Span.Start,
	}}
}

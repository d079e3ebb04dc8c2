package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// ExceptionMessage flags `.message` access on a name bound by an
// enclosing `except ... as name` clause.
var ExceptionMessage = lint.RuleDef{
	Code:        "B306",
	Name:        "compat.exception_message",
	Group:       "compat",
	Description: "`BaseException.message` was removed in Python 3.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindAttribute},
	Check:       checkExceptionMessage,
	Rationale: "The message attribute was deprecated in Python 2.6 and " +
		"removed in Python 3; reading it raises AttributeError.",
	BadExample:  "except ValueError as e:\n    log(e.message)",
	GoodExample: "except ValueError as e:\n    log(str(e))",
	Fix: "Use `str(e)` for the user-readable message, or `e.args` for the " +
		"arguments passed to the exception.",
}

func checkExceptionMessage(node pyast.Node, scopes *lint.Scopes, _ map[string]any) []lint.Violation {
	attr, ok := node.(*pyast.Attribute)
	if !ok || attr.Attr != "message" {
		return nil
	}
	base, ok := attr.Value.(*pyast.Name)
	if !ok {
		return nil
	}
	if _, caught := scopes.CaughtException(base.ID); !caught {
		return nil
	}
	return []lint.Violation{{
		Code: "B306",
		Message: "`BaseException.message` has been deprecated as of Python " +
			"2.6 and is removed in Python 3. Use `str(e)` to access the " +
			"user-readable message. Use `e.args` to access arguments passed " +
			"to the exception.",
		Pos: attr.Span.Start,
	}}
}

package rules

import (
	"fmt"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// RedundantHandlers flags except clauses that can never run because an
// earlier clause of the same try statement already catches their
// exceptions. The subtype relation is the conservative builtin hierarchy:
// user-defined classes only match by exact name.
var RedundantHandlers = lint.RuleDef{
	Code:        "B014",
	Name:        "except.redundant_handlers",
	Group:       "except",
	Description: "Exception handler is unreachable or lists redundant types.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindTry},
	Check:       checkRedundantHandlers,
	Rationale: "Handlers run in order and only the first match fires. A " +
		"clause shadowed by an earlier broader clause is dead code, usually " +
		"hiding a mistake in handler ordering.",
	BadExample:  "try:\n    work()\nexcept Exception:\n    pass\nexcept ValueError:\n    recover()",
	GoodExample: "try:\n    work()\nexcept ValueError:\n    recover()\nexcept Exception:\n    pass",
	Fix:         "Reorder handlers from most to least specific, or delete the dead clause.",
}

func checkRedundantHandlers(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	try, ok := node.(*pyast.Try)
	if !ok || len(try.Handlers) < 1 {
		return nil
	}

	var violations []lint.Violation
	var covered []string
	bareSeen := false

	for _, h := range try.Handlers {
		if h == nil {
			continue
		}
		pos := h.Span.Start
		if bareSeen {
			violations = append(violations, lint.Violation{
				Code: "B014",
				Message: "Exception handler is unreachable. An earlier bare " +
					"`except:` already catches everything.",
				Pos: pos,
			})
			continue
		}
		if h.Type == nil {
			bareSeen = true
			continue
		}

		names := lint.HandlerTypeNames(h.Type)
		var kept []string
		for _, name := range names {
			catcher, redundant := coveredBy(name, covered, kept)
			if redundant {
				violations = append(violations, lint.Violation{
					Code: "B014",
					Message: fmt.Sprintf("Exception `%s` can never be caught "+
						"here. An earlier handler for `%s` already catches it.",
						name, catcher),
					Pos: pos,
				})
				continue
			}
			kept = append(kept, name)
		}
		covered = append(covered, kept...)
	}
	return violations
}

// coveredBy reports whether an earlier name, from a previous handler or
// from the same tuple, already covers name.
func coveredBy(name string, covered, sameTuple []string) (string, bool) {
	for _, c := range covered {
		if lint.CoversException(c, name) {
			return c, true
		}
	}
	for _, c := range sameTuple {
		if lint.CoversException(c, name) {
			return c, true
		}
	}
	return "", false
}

package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// JumpInFinally flags return, break and continue statements inside a
// finally block. Such a jump discards any exception in flight.
var JumpInFinally = lint.RuleDef{
	Code:        "B012",
	Name:        "except.jump_in_finally",
	Group:       "except",
	Description: "return/break/continue in a finally block swallows exceptions.",
	Severity:    lint.SeverityError,
	Kinds:       []pyast.Kind{pyast.KindTry},
	Check:       checkJumpInFinally,
	Rationale: "When a finally block exits through return, break or " +
		"continue, the exception that was propagating is silently dropped.",
	BadExample:  "try:\n    work()\nfinally:\n    return 'done'",
	GoodExample: "try:\n    work()\nfinally:\n    cleanup()",
	Fix:         "Move the jump statement out of the finally block.",
}

func checkJumpInFinally(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	try, ok := node.(*pyast.Try)
	if !ok || len(try.Final) == 0 {
		return nil
	}
	var violations []lint.Violation
	for _, jump := range finallyJumps(try.Final, false) {
		violations = append(violations, lint.Violation{
			Code: "B012",
			Message: "return/continue/break inside finally blocks cause " +
				"exceptions to be silenced. Exceptions should be silenced in " +
				"except blocks. Control statements can be moved outside the " +
				"finally block.",
			Pos: jump.GetSpan().Start,
		})
	}
	return violations
}

// finallyJumps collects jumps that leave the finally block. break and
// continue belonging to a loop defined inside the block stay local and do
// not count; return always leaves. Nested function and class bodies are
// their own control-flow worlds and are not entered.
func finallyJumps(stmts []pyast.Stmt, inLoop bool) []pyast.Node {
	var jumps []pyast.Node
	for _, st := range stmts {
		switch t := st.(type) {
		case *pyast.Return:
			jumps = append(jumps, t)
		case *pyast.Break:
			if !inLoop {
				jumps = append(jumps, t)
			}
		case *pyast.Continue:
			if !inLoop {
				jumps = append(jumps, t)
			}
		case *pyast.For:
			jumps = append(jumps, finallyJumps(t.Body, true)...)
			jumps = append(jumps, finallyJumps(t.Else, inLoop)...)
		case *pyast.While:
			jumps = append(jumps, finallyJumps(t.Body, true)...)
			jumps = append(jumps, finallyJumps(t.Else, inLoop)...)
		case *pyast.If:
			jumps = append(jumps, finallyJumps(t.Body, inLoop)...)
			jumps = append(jumps, finallyJumps(t.Else, inLoop)...)
		case *pyast.With:
			jumps = append(jumps, finallyJumps(t.Body, inLoop)...)
		case *pyast.Try:
			jumps = append(jumps, finallyJumps(t.Body, inLoop)...)
			for _, h := range t.Handlers {
				if h != nil {
					jumps = append(jumps, finallyJumps(h.Body, inLoop)...)
				}
			}
			jumps = append(jumps, finallyJumps(t.Else, inLoop)...)
			jumps = append(jumps, finallyJumps(t.Final, inLoop)...)
		}
	}
	return jumps
}

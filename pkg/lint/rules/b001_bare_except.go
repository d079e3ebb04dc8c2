package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// BareExcept flags `except:` clauses with no exception class.
var BareExcept = lint.RuleDef{
	Code:        "B001",
	Name:        "except.bare_except",
	Group:       "except",
	Description: "Do not use bare `except:`.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindExceptHandler},
	Check:       checkBareExcept,
	Rationale: "A bare `except:` also catches unexpected events like memory " +
		"errors, interrupts and system exit, hiding problems the program " +
		"should not survive.",
	BadExample:  "try:\n    work()\nexcept:\n    pass",
	GoodExample: "try:\n    work()\nexcept Exception:\n    pass",
	Fix: "Write `except Exception:`. If you really mean to catch everything, " +
		"be explicit and write `except BaseException:`.",
}

func checkBareExcept(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	h, ok := node.(*pyast.ExceptHandler)
	if !ok || h.Type != nil {
		return nil
	}
	return []lint.Violation{{
		Code: "B001",
		Message: "Do not use bare `except:`, it also catches unexpected events " +
			"like memory errors, interrupts, system exit, and so on. " +
			"Prefer `except Exception:`. If you're sure what you're doing, " +
			"be explicit and write `except BaseException:`.",
		Pos: h.Span.Start,
	}}
}

package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// UnusedLoopVar flags for-loop control variables never read in the loop
// body. Underscore-prefixed names are exempt.
var UnusedLoopVar = lint.RuleDef{
	Code:        "B007",
	Name:        "loops.unused_loop_var",
	Group:       "loops",
	Description: "Loop control variable not used within the loop body.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindFor},
	Check:       checkUnusedLoopVar,
	Rationale: "An unused control variable usually means the author wanted " +
		"to iterate over values and unpacked the wrong thing, or the body " +
		"silently stopped using it.",
	BadExample:  "for i in range(10):\n    print('hello')",
	GoodExample: "for _ in range(10):\n    print('hello')",
	Fix:         "If this is intended, start the name with an underscore.",
}

func checkUnusedLoopVar(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	loop, ok := node.(*pyast.For)
	if !ok {
		return nil
	}

	// First binding per name wins, for stable reporting positions.
	ctrl := make(map[string]*pyast.Name)
	for _, n := range astutil.BoundNames(loop.Target) {
		if strings.HasPrefix(n.ID, "_") {
			continue
		}
		if _, seen := ctrl[n.ID]; !seen {
			ctrl[n.ID] = n
		}
	}
	if len(ctrl) == 0 {
		return nil
	}

	used := make(map[string]bool)
	for _, st := range loop.Body {
		for _, n := range astutil.CollectNames(st) {
			used[n.ID] = true
		}
	}

	var unused []string
	for name := range ctrl {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)

	var violations []lint.Violation
	for _, name := range unused {
		violations = append(violations, lint.Violation{
			Code: "B007",
			Message: fmt.Sprintf("Loop control variable %q not used within the "+
				"loop body. If this is intended, start the name with an "+
				"underscore.", name),
			Pos: ctrl[name].Span.Start,
		})
	}
	return violations
}

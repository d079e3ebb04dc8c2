package rules

import (
	"fmt"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/internal/astutil"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// LoopClosure flags functions and lambdas defined inside a loop body that
// read a loop control variable without capturing it. One violation per
// closure, at the closure's position.
var LoopClosure = lint.RuleDef{
	Code:        "B023",
	Name:        "loops.loop_closure",
	Group:       "loops",
	Description: "Function definition inside a loop does not bind the loop variable.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindFunctionDef, pyast.KindLambda},
	Check:       checkLoopClosure,
	Rationale: "Closures capture variables by reference. Every closure " +
		"created in the loop sees the control variable's final value, not " +
		"the value at creation time.",
	BadExample:  "for i in range(3):\n    fns.append(lambda: i)",
	GoodExample: "for i in range(3):\n    fns.append(lambda i=i: i)",
	Fix:         "Bind the loop variable with a default argument, e.g. `lambda i=i: ...`.",
}

func checkLoopClosure(node pyast.Node, scopes *lint.Scopes, _ map[string]any) []lint.Violation {
	if !scopes.InLoop() {
		return nil
	}

	var args *pyast.Arguments
	var body []pyast.Node
	switch t := node.(type) {
	case *pyast.FunctionDef:
		args = t.Args
		for _, st := range t.Body {
			body = append(body, st)
		}
	case *pyast.Lambda:
		args = t.Args
		if t.Body != nil {
			body = append(body, t.Body)
		}
	default:
		return nil
	}
	if args == nil {
		return nil
	}

	// A parameter shadows the loop variable; the `x=x` capture idiom is
	// exactly a parameter named after it. Local assignments inside the
	// body shadow it too.
	shadowed := paramNames(args)
	for _, n := range body {
		for name := range locallyBound(n) {
			shadowed[name] = true
		}
	}

	for _, n := range body {
		for _, used := range astutil.CollectNames(n) {
			if shadowed[used.ID] {
				continue
			}
			_, loop, ok := scopes.LoopControl(used.ID)
			if !ok {
				continue
			}
			// The name must still resolve to the loop's own scope. A
			// local of an enclosing function defined in the loop body
			// shadows the control variable for this closure.
			res := scopes.Lookup(used.ID)
			if res.Status != lint.LookupBound || scopes.Depth()-res.Level > loop.Depth {
				continue
			}
			return []lint.Violation{{
				Code: "B023",
				Message: fmt.Sprintf("Function definition inside a loop "+
					"reads loop variable %q by reference and will see its "+
					"final value. Bind it with a default argument instead.",
					used.ID),
				Pos: node.GetSpan().Start,
			}}
		}
	}
	return nil
}

func paramNames(args *pyast.Arguments) map[string]bool {
	names := make(map[string]bool)
	for _, a := range args.Args {
		if a != nil {
			names[a.Name] = true
		}
	}
	for _, a := range args.KwOnlyArgs {
		if a != nil {
			names[a.Name] = true
		}
	}
	if args.Vararg != nil {
		names[args.Vararg.Name] = true
	}
	if args.Kwarg != nil {
		names[args.Kwarg.Name] = true
	}
	return names
}

// locallyBound collects names the closure body assigns in its own scope.
// Nested scope-introducing nodes contribute only the name they bind, not
// their contents.
func locallyBound(n pyast.Node) map[string]bool {
	bound := make(map[string]bool)
	record := func(target pyast.Expr) {
		for _, name := range astutil.BoundNames(target) {
			bound[name.ID] = true
		}
	}
	var scan func(pyast.Node)
	scan = func(c pyast.Node) {
		if c == nil {
			return
		}
		switch t := c.(type) {
		case *pyast.FunctionDef:
			bound[t.Name] = true
			return
		case *pyast.ClassDef:
			bound[t.Name] = true
			return
		case *pyast.Lambda, *pyast.ListComp, *pyast.SetComp, *pyast.DictComp, *pyast.GeneratorExp:
			return
		case *pyast.Assign:
			for _, tgt := range t.Targets {
				record(tgt)
			}
		case *pyast.AugAssign:
			record(t.Target)
		case *pyast.For:
			record(t.Target)
		case *pyast.With:
			for _, item := range t.Items {
				if item != nil && item.As != nil {
					record(item.As)
				}
			}
		}
		for _, child := range pyast.ChildNodes(c) {
			scan(child)
		}
	}
	scan(n)
	return bound
}

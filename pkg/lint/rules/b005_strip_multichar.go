package rules

import (
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// StripMultichar flags .strip() calls whose argument is a multi-character
// string with repeated characters, a pattern that reads like substring
// removal but is not.
var StripMultichar = lint.RuleDef{
	Code:        "B005",
	Name:        "general.strip_multichar",
	Group:       "general",
	Description: "Using .strip() with a repeated multi-character string is misleading.",
	Severity:    lint.SeverityWarning,
	Kinds:       []pyast.Kind{pyast.KindCall},
	Check:       checkStripMultichar,
	Rationale: "strip treats its argument as a character set, not a " +
		"substring. Repeated characters in the argument suggest the author " +
		"expected substring semantics.",
	BadExample:  "filename.strip('.txt')",
	GoodExample: "filename.removesuffix('.txt')",
	Fix: "Move your character set to a constant if this is deliberate. Use " +
		".replace() or regular expressions to remove string fragments.",
}

var stripMethods = map[string]bool{
	"strip":  true,
	"lstrip": true,
	"rstrip": true,
}

func checkStripMultichar(node pyast.Node, _ *lint.Scopes, _ map[string]any) []lint.Violation {
	call, ok := node.(*pyast.Call)
	if !ok {
		return nil
	}
	attr, ok := call.Func.(*pyast.Attribute)
	if !ok || !stripMethods[attr.Attr] {
		return nil
	}
	if len(call.Args) != 1 || len(call.Keywords) != 0 {
		return nil
	}
	arg, ok := call.Args[0].(*pyast.Str)
	if !ok {
		return nil
	}
	chars := []rune(arg.Value)
	if len(chars) <= 1 {
		return nil
	}
	seen := make(map[rune]bool, len(chars))
	repeated := false
	for _, r := range chars {
		if seen[r] {
			repeated = true
			break
		}
		seen[r] = true
	}
	if !repeated {
		return nil
	}
	return []lint.Violation{{
		Code: "B005",
		Message: "Using .strip() with multi-character strings is misleading " +
			"the reader. It looks like stripping a substring. Move your " +
			"character set to a constant if this is deliberate. Use " +
			".replace() or regular expressions to remove string fragments.",
		Pos: call.Span.Start,
	}}
}

package rules

import "github.com/leapstack-labs/bearlint/pkg/lint"

// All returns the stock rule definitions in code order. The slice is
// freshly allocated on every call; callers may reorder or filter it
// before building a registry.
func All() []lint.RuleDef {
	return []lint.RuleDef{
		BareExcept,
		UnaryPrefixIncrement,
		EnvironAssign,
		HasattrCall,
		StripMultichar,
		MutableDefaults,
		UnusedLoopVar,
		CallInDefault,
		AssertTuple,
		JumpInFinally,
		RedundantHandlers,
		LoopClosure,
		IterMethods,
		ViewMethods,
		MetaclassAssign,
		SysMaxint,
		NextMethod,
		ExceptionMessage,
		YieldReturn,
		Complexity,
	}
}

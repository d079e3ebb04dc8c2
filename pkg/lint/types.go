package lint

import (
	"github.com/leapstack-labs/bearlint/pkg/pyast"
	"github.com/leapstack-labs/bearlint/pkg/token"
)

// Violation is one reported instance of a rule matching the tree.
// Two violations with identical (Code, Line, Col) are duplicates and are
// collapsed by the collector.
type Violation struct {
	Code     string
	Severity Severity
	Message  string
	Pos      token.Position
}

// Fault reports an internal failure of a single rule on a single node.
// Faults are kept apart from violations so host tooling can distinguish
// "your code has a bug" from "the checker itself failed".
type Fault struct {
	RuleCode string
	Pos      token.Position
	Err      error
}

// Report is the result of analyzing one tree: the ordered, deduplicated,
// suppression-filtered violations plus any rule-internal faults.
type Report struct {
	Violations []Violation
	Faults     []Fault
}

// CheckFunc inspects one matched node and returns zero or more violations.
// Implementations must be pure per invocation: all context comes through
// the parameters, and nothing may be retained across separate Analyze
// calls. The scope view is read-only.
type CheckFunc func(node pyast.Node, scopes *Scopes, opts map[string]any) []Violation

// RuleDef is a data-driven rule definition. Rules are stateless; the
// walker invokes Check for every visited node whose kind appears in Kinds.
type RuleDef struct {
	Code        string       // Unique violation code, e.g. "B006"
	Name        string       // Human-readable name, e.g. "defaults.mutable_default"
	Group       string       // Category, e.g. "defaults", "except", "loops"
	Description string       // One-line description
	Severity    Severity     // Default severity
	Kinds       []pyast.Kind // Node kinds this rule subscribes to
	Check       CheckFunc    // The check function
	ConfigKeys  []string     // Configuration keys this rule accepts

	// DisabledByDefault marks opinionated rules that only run when
	// force-enabled through the extend-select configuration set.
	DisabledByDefault bool

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

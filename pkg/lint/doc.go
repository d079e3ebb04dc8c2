// Package lint implements a single-pass rule engine over host-provided
// Python syntax trees.
//
// # Architecture
//
// The engine has five cooperating parts:
//
//  1. Registry: an immutable set of rule definitions with a per-node-kind
//     dispatch index, built explicitly via NewRegistry (no init()-time
//     side effects).
//  2. Scope tracker: an arena of lexical scope records maintained during
//     traversal, answering binding, loop and exception-handler queries.
//  3. Walker: one deterministic depth-first traversal that pushes and pops
//     scope state and invokes every rule subscribed to each node's kind.
//  4. Collector: deduplicates identical (code, line, column) findings and
//     imposes the (line, column, code) total order.
//  5. Suppression filter: drops violations covered by the host-supplied
//     suppression map, strictly after collection.
//
// # Usage
//
//	reg, err := lint.NewRegistry(rules.All())
//	if err != nil {
//	    // duplicate or malformed rule definitions
//	}
//	analyzer := lint.NewAnalyzer(reg, lint.NewConfig())
//	report, err := analyzer.Analyze(tree, suppressions)
//
// The analyzer holds no per-run state: one Analyzer may serve concurrent
// Analyze calls, one per file, without locking.
//
// The engine never parses source text, never mutates the tree, and keeps
// no state across files. Inline "# noqa" comment scanning is the host's
// job; the engine only consumes the resolved SuppressionMap.
package lint

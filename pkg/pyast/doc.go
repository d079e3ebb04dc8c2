// Package pyast defines the node model for host-provided Python syntax
// trees.
//
// The engine does not parse Python source; the host parses a file and hands
// over a tree of these nodes. Each node carries a kind tag, a source span,
// and kind-specific children. The tree is owned by the host and is never
// mutated here.
//
// Node kinds mirror the subset of the CPython ast module that the lint
// rules inspect. Traversal order over children is fixed by ChildNodes,
// which is the single source of determinism for the whole engine.
package pyast

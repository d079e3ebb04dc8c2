// Package rules provides the stock bearlint rule implementations.
//
// Rules are grouped loosely by theme:
//   - general bug likelihoods (B001-B014)
//   - loop and closure pitfalls (B007, B023)
//   - Python 2 leftovers that break on Python 3 (B301-B306)
//   - opinionated, opt-in checks (B901, C901)
//
// Each rule lives in its own file as an exported RuleDef plus a private
// check function. Nothing here registers itself; callers build a registry
// explicitly:
//
//	reg := lint.MustNewRegistry(rules.All())
package rules

package lint

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// Registry is an immutable, ordered set of rule definitions with a
// per-node-kind dispatch index. Build one with NewRegistry at startup and
// share it freely: it is never mutated afterwards, so concurrent per-file
// runs need no locking.
type Registry struct {
	defs   []RuleDef
	byCode map[string]*RuleDef
	byKind map[pyast.Kind][]*RuleDef
}

// NewRegistry builds a registry from an explicit list of definitions.
// Definition order is preserved; it determines the order rules fire on a
// node, though the collector's total order makes output independent of it.
func NewRegistry(defs []RuleDef) (*Registry, error) {
	r := &Registry{
		defs:   make([]RuleDef, len(defs)),
		byCode: make(map[string]*RuleDef, len(defs)),
		byKind: make(map[pyast.Kind][]*RuleDef),
	}
	copy(r.defs, defs)

	for i := range r.defs {
		def := &r.defs[i]
		if def.Code == "" || def.Check == nil || len(def.Kinds) == 0 {
			return nil, fmt.Errorf("%w: %q needs a code, a check function and at least one kind", ErrInvalidRule, def.Code)
		}
		if _, exists := r.byCode[def.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, def.Code)
		}
		r.byCode[def.Code] = def
		seen := make(map[pyast.Kind]bool, len(def.Kinds))
		for _, k := range def.Kinds {
			if seen[k] {
				continue
			}
			seen[k] = true
			r.byKind[k] = append(r.byKind[k], def)
		}
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error. Intended for
// wiring up the stock rule set at process startup.
func MustNewRegistry(defs []RuleDef) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Rules returns the definitions in registration order.
func (r *Registry) Rules() []RuleDef {
	out := make([]RuleDef, len(r.defs))
	copy(out, r.defs)
	return out
}

// ByCode returns the definition for a violation code.
func (r *Registry) ByCode(code string) (RuleDef, bool) {
	def, ok := r.byCode[code]
	if !ok {
		return RuleDef{}, false
	}
	return *def, true
}

// Codes returns all registered codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	return len(r.defs)
}

// forKind returns the definitions subscribed to a node kind, in
// registration order. Internal: the slice aliases registry storage.
func (r *Registry) forKind(k pyast.Kind) []*RuleDef {
	return r.byKind[k]
}

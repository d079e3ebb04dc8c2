package lint

// Suppression describes the inline disable directive for one line, as
// resolved by the host from "# noqa" style comments. Either all codes on
// the line are suppressed, or only the listed ones.
type Suppression struct {
	All   bool
	Codes []string
}

// Covers reports whether the directive suppresses the given code.
func (s Suppression) Covers(code string) bool {
	if s.All {
		return true
	}
	for _, c := range s.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// SuppressionMap maps line numbers to their suppression directives.
// It is host-supplied input, read-only during a run.
type SuppressionMap map[int]Suppression

// Filter removes violations covered by the suppression map. It runs
// strictly after collection and sorting; relative order of the survivors
// is preserved. The input slice is not modified.
func Filter(violations []Violation, m SuppressionMap) []Violation {
	if len(m) == 0 {
		out := make([]Violation, len(violations))
		copy(out, violations)
		return out
	}
	out := make([]Violation, 0, len(violations))
	for _, v := range violations {
		if sup, ok := m[v.Pos.Line]; ok && sup.Covers(v.Code) {
			continue
		}
		out = append(out, v)
	}
	return out
}

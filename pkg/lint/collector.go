package lint

import "sort"

// collector accumulates raw violations during a traversal and produces
// the final ordered sequence. The (line, column, code) ordering is
// load-bearing: host tooling and tests assert on it.
type collector struct {
	raw []Violation
}

func (c *collector) add(vs ...Violation) {
	c.raw = append(c.raw, vs...)
}

// finalize sorts by (line, column, code) ascending and collapses exact
// (code, line, column) duplicates. A single node may trigger overlapping
// matches across sub-rules that should be reported once.
func (c *collector) finalize() []Violation {
	out := make([]Violation, len(c.raw))
	copy(out, c.raw)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		if a.Pos.Col != b.Pos.Col {
			return a.Pos.Col < b.Pos.Col
		}
		return a.Code < b.Code
	})

	deduped := out[:0]
	for i, v := range out {
		if i > 0 {
			prev := out[i-1]
			if prev.Code == v.Code && prev.Pos.Line == v.Pos.Line && prev.Pos.Col == v.Pos.Col {
				continue
			}
		}
		deduped = append(deduped, v)
	}
	return deduped
}

package token

// Position represents a location in the analyzed source file, as reported
// by the host parser. Python parsers report 1-based lines and 0-based
// columns; positions are carried through unchanged.
type Position struct {
	Line   int // 1-based line number
	Col    int // 0-based column offset
	Offset int // 0-based byte offset; -1 when the host did not supply one
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p is strictly before q in source order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given position.
// The end position is exclusive.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

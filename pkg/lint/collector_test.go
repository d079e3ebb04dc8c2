package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/bearlint/pkg/token"
)

func v(code string, line, col int) Violation {
	return Violation{Code: code, Pos: token.Position{Line: line, Col: col, Offset: -1}}
}

func TestCollectorOrdering(t *testing.T) {
	var c collector
	c.add(v("B007", 9, 4))
	c.add(v("B001", 3, 0), v("B006", 3, 0))
	c.add(v("B002", 3, 8))
	c.add(v("B001", 1, 0))

	got := c.finalize()
	want := []Violation{
		v("B001", 1, 0),
		v("B001", 3, 0),
		v("B006", 3, 0),
		v("B002", 3, 8),
		v("B007", 9, 4),
	}
	assert.Equal(t, want, got)
}

func TestCollectorDedupesExactTriples(t *testing.T) {
	var c collector
	c.add(v("B006", 5, 4))
	c.add(v("B006", 5, 4)) // same rule, same spot, reported twice
	c.add(v("B008", 5, 4)) // different code survives
	c.add(v("B006", 5, 9)) // different column survives

	got := c.finalize()
	assert.Equal(t, []Violation{
		v("B006", 5, 4),
		v("B008", 5, 4),
		v("B006", 5, 9),
	}, got)
}

func TestCollectorEmpty(t *testing.T) {
	var c collector
	assert.Empty(t, c.finalize())
}

func TestFilterSuppressions(t *testing.T) {
	input := []Violation{
		v("B006", 5, 4),
		v("B008", 5, 10),
		v("B001", 7, 0),
	}

	t.Run("matching code on line", func(t *testing.T) {
		got := Filter(input, SuppressionMap{5: {Codes: []string{"B006"}}})
		assert.Equal(t, []Violation{v("B008", 5, 10), v("B001", 7, 0)}, got)
	})

	t.Run("non-matching code leaves line alone", func(t *testing.T) {
		got := Filter(input, SuppressionMap{5: {Codes: []string{"B950"}}})
		assert.Equal(t, input, got)
	})

	t.Run("blanket suppression", func(t *testing.T) {
		got := Filter(input, SuppressionMap{5: {All: true}})
		assert.Equal(t, []Violation{v("B001", 7, 0)}, got)
	})

	t.Run("empty map copies input", func(t *testing.T) {
		got := Filter(input, nil)
		assert.Equal(t, input, got)
		assert.NotSame(t, &input[0], &got[0])
	})
}

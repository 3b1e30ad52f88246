package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Stacks:  [][]string{{"e"}, {"g", "l"}, {"k", "m", "f"}, {"b", "p"}},
		Holding: "",
		Arm:     0,
		Objects: testObjects(),
	}
}

func TestRelated_Ontop(t *testing.T) {
	s := testSnapshot()

	related, ok := Related(s, "l", RelOntop)
	assert.True(t, ok)
	assert.True(t, related.Contains("g"))
	assert.Equal(t, 1, related.Len())

	related, ok = Related(s, "e", RelOntop)
	assert.True(t, ok)
	assert.True(t, related.Contains(Floor))
}

func TestRelated_Inside(t *testing.T) {
	s := testSnapshot()

	related, ok := Related(s, "m", RelInside)
	assert.True(t, ok)
	assert.True(t, related.Contains("k"))
}

func TestRelated_LeftofRightofBeside(t *testing.T) {
	s := testSnapshot()

	related, ok := Related(s, "l", RelLeftof) // column 1
	assert.True(t, ok)
	assert.True(t, related.Contains("k"))
	assert.True(t, related.Contains("m"))
	assert.True(t, related.Contains("f"))
	assert.True(t, related.Contains("b"))
	assert.True(t, related.Contains("p"))
	assert.False(t, related.Contains("e"))

	related, ok = Related(s, "l", RelRightof)
	assert.True(t, ok)
	assert.True(t, related.Contains("e"))
	assert.False(t, related.Contains("k"))

	related, ok = Related(s, "l", RelBeside) // columns 0 and 2
	assert.True(t, ok)
	assert.True(t, related.Contains("e"))
	assert.True(t, related.Contains("k"))
	assert.False(t, related.Contains("b"))
}

func TestRelated_AboveUnder(t *testing.T) {
	s := testSnapshot()

	related, ok := Related(s, "m", RelAbove) // column 2, row 1: floor + k
	assert.True(t, ok)
	assert.True(t, related.Contains(Floor))
	assert.True(t, related.Contains("k"))
	assert.False(t, related.Contains("f"))

	related, ok = Related(s, "k", RelUnder) // everything above k: m, f
	assert.True(t, ok)
	assert.True(t, related.Contains("m"))
	assert.True(t, related.Contains("f"))
}

func TestRelated_HeldObjectNotLocatable(t *testing.T) {
	s := testSnapshot()
	s.Holding = "l"

	_, ok := Related(s, "l", RelOntop)
	assert.False(t, ok, "a held object participates only in holding goals, per spec.md §9")
}

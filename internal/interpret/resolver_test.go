package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/creachadair/stringset"

	"shrdlite/internal/world"
)

// w1 is the world used throughout spec.md §8's end-to-end scenarios: four
// columns, a large yellow box k, a small white ball l, a large green brick
// g, a small red pyramid m.
func w1() world.Snapshot {
	return world.Snapshot{
		Stacks:  [][]string{{"e"}, {"g", "l"}, {"k", "m", "f"}, {"b", "p"}},
		Holding: "",
		Arm:     0,
		Objects: map[string]world.Object{
			"e": {Form: world.FormTable, Size: world.SizeSmall, Color: "green"},
			"g": {Form: world.FormBrick, Size: world.SizeLarge, Color: "green"},
			"l": {Form: world.FormBall, Size: world.SizeSmall, Color: "white"},
			"k": {Form: world.FormBox, Size: world.SizeLarge, Color: "yellow"},
			"m": {Form: world.FormPyramid, Size: world.SizeSmall, Color: "red"},
			"f": {Form: world.FormBall, Size: world.SizeLarge, Color: "black"},
			"b": {Form: world.FormBox, Size: world.SizeSmall, Color: "blue"},
			"p": {Form: world.FormPlank, Size: world.SizeLarge, Color: "red"},
		},
	}
}

func TestFindCandidates_SimpleMatch(t *testing.T) {
	snap := w1()
	ent := Entity{Quantifier: QuantifierThe, Object: Object{Color: "white", Form: world.FormBall}}

	got, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.NoError(t, err)
	assert.Equal(t, stringset.New("l"), got)
}

func TestFindCandidates_Ambiguous(t *testing.T) {
	snap := w1()
	snap.Objects["l2"] = world.Object{Form: world.FormBall, Size: world.SizeSmall, Color: "white"}
	snap.Stacks[0] = append(snap.Stacks[0], "l2")

	ent := Entity{Quantifier: QuantifierThe, Object: Object{Color: "white", Form: world.FormBall}}
	_, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.Error(t, err)
	assert.Equal(t, KindAmbiguous, err.(*Error).Kind)
}

func TestFindCandidates_AnyAllowsMultiple(t *testing.T) {
	snap := w1()
	ent := Entity{Quantifier: QuantifierAny, Object: Object{Form: world.FormBox}}

	got, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.NoError(t, err)
	assert.Equal(t, stringset.New("k", "b"), got)
}

func TestFindCandidates_NestedLocationAny(t *testing.T) {
	snap := w1()
	// "the pyramid inside a box": m sits directly on the box k, so it is
	// inside k.
	ent := Entity{
		Quantifier: QuantifierThe,
		Object: Object{
			Form: world.FormPyramid,
			Location: &Location{
				Relation: world.RelInside,
				Entity:   Entity{Quantifier: QuantifierAny, Object: Object{Form: world.FormBox}},
			},
		},
	}
	got, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.NoError(t, err)
	assert.Equal(t, stringset.New("m"), got)
}

func TestFindCandidates_AllQuantifierInLocation(t *testing.T) {
	// A world with a single box "k": "the pyramid above all boxes" holds
	// for m trivially, since the only box in the world sits below it.
	snap := world.Snapshot{
		Stacks: [][]string{{"k", "m"}},
		Arm:    0,
		Objects: map[string]world.Object{
			"k": {Form: world.FormBox, Size: world.SizeLarge, Color: "yellow"},
			"m": {Form: world.FormPyramid, Size: world.SizeSmall, Color: "red"},
		},
	}
	ent := Entity{
		Quantifier: QuantifierThe,
		Object: Object{
			Form: world.FormPyramid,
			Location: &Location{
				Relation: world.RelAbove,
				Entity:   Entity{Quantifier: QuantifierAll, Object: Object{Form: world.FormBox}},
			},
		},
	}
	got, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.NoError(t, err)
	assert.Equal(t, stringset.New("m"), got)
}

func TestFindCandidates_AllQuantifierFailsWhenNotRelatedToEveryMatch(t *testing.T) {
	snap := w1()
	// "m" (column 2) sits above k only; b (the other box) is in a
	// different column, so m is not above *all* boxes in the world.
	ent := Entity{
		Quantifier: QuantifierThe,
		Object: Object{
			Form: world.FormPyramid,
			Location: &Location{
				Relation: world.RelAbove,
				Entity:   Entity{Quantifier: QuantifierAll, Object: Object{Form: world.FormBox}},
			},
		},
	}
	got, err := FindCandidates(ent, snap, stringset.Set{}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestFindCandidates_RestrictNarrowsSearch(t *testing.T) {
	snap := w1()
	restrict := stringset.New("k")
	ent := Entity{Quantifier: QuantifierAny, Object: Object{Form: world.FormBox}}

	got, err := FindCandidates(ent, snap, restrict, true)
	require.NoError(t, err)
	assert.Equal(t, stringset.New("k"), got)
}

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testObjects() map[string]Object {
	return map[string]Object{
		"k": {Form: FormBox, Size: SizeLarge, Color: "yellow"},
		"l": {Form: FormBall, Size: SizeSmall, Color: "white"},
		"g": {Form: FormBrick, Size: SizeLarge, Color: "green"},
		"m": {Form: FormPyramid, Size: SizeSmall, Color: "red"},
		"b": {Form: FormBox, Size: SizeSmall, Color: "blue"},
		"p": {Form: FormPlank, Size: SizeLarge, Color: "red"},
		"e": {Form: FormTable, Size: SizeSmall, Color: "green"},
		"f": {Form: FormBall, Size: SizeLarge, Color: "black"},
	}
}

func TestCanSupport_Ontop(t *testing.T) {
	objs := testObjects()

	assert.False(t, CanSupport(objs, "g", RelOntop, "k"), "nothing goes ontop a box")
	assert.False(t, CanSupport(objs, "g", RelOntop, "l"), "nothing goes ontop a ball")
	assert.False(t, CanSupport(objs, "l", RelOntop, "g"), "a ball can only be ontop the floor")
	assert.True(t, CanSupport(objs, "l", RelOntop, Floor), "a ball ontop the floor is fine")
	assert.False(t, CanSupport(objs, "g", RelOntop, "m"), "large cannot sit ontop small")
	assert.False(t, CanSupport(objs, "b", RelOntop, "m"), "small box cannot support a small pyramid")
}

func TestCanSupport_Inside(t *testing.T) {
	objs := testObjects()

	assert.False(t, CanSupport(objs, "g", RelInside, "m"), "rhs must be a box")
	assert.False(t, CanSupport(objs, "g", RelInside, Floor), "floor is never inside's rhs")
	assert.False(t, CanSupport(objs, "g", RelInside, "b"), "large brick cannot fit a small box")
	assert.True(t, CanSupport(objs, "l", RelInside, "k"), "small ball fits a large box")
	assert.False(t, CanSupport(objs, "p", RelInside, "k"), "same-size non-ball/brick/table is forbidden")
}

func TestCanSupport_Above(t *testing.T) {
	objs := testObjects()

	assert.False(t, CanSupport(objs, "g", RelAbove, "l"), "nothing is above a ball")
	assert.False(t, CanSupport(objs, "g", RelAbove, "m"), "large cannot be above small")
	assert.True(t, CanSupport(objs, "m", RelAbove, "g"), "small above large is fine")
}

func TestCanSupport_UnderIsAboveSymmetric(t *testing.T) {
	objs := testObjects()

	for _, pair := range [][2]string{{"g", "k"}, {"m", "g"}, {"l", "g"}, {"k", "m"}} {
		a, b := pair[0], pair[1]
		assert.Equal(t, CanSupport(objs, a, RelUnder, b), CanSupport(objs, b, RelAbove, a),
			"can_support(%s,under,%s) must mirror can_support(%s,above,%s)", a, b, b, a)
	}
}

func TestCanSupport_LeftRightBesideAlwaysFeasibleExceptFloor(t *testing.T) {
	objs := testObjects()

	assert.True(t, CanSupport(objs, "g", RelLeftof, "k"))
	assert.True(t, CanSupport(objs, "g", RelBeside, "k"))
	assert.False(t, CanSupport(objs, Floor, RelLeftof, "k"))
	assert.False(t, CanSupport(objs, "g", RelRightof, Floor))
}

package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"shrdlite/internal/world"
)

func snap1() world.Snapshot {
	return world.Snapshot{
		Stacks: [][]string{{"e"}, {"g", "l"}, {"k", "m", "f"}, {"b", "p"}},
		Arm:    0,
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

func TestState_KeyDistinguishesAllThreeFields(t *testing.T) {
	base := NewState(snap1())

	armMoved := base.clone()
	armMoved.Arm = 1
	assert.NotEqual(t, base.Key(), armMoved.Key())

	held := base.clone()
	held.Holding = "x"
	assert.NotEqual(t, base.Key(), held.Key())

	stackChanged := base.clone()
	stackChanged.Stacks[0] = append(stackChanged.Stacks[0], "extra")
	assert.NotEqual(t, base.Key(), stackChanged.Key())
}

func TestState_CloneIsIndependent(t *testing.T) {
	base := NewState(snap1())
	clone := base.clone()
	clone.Stacks[1] = append(clone.Stacks[1], "z")

	assert.NotEqual(t, base.Stacks[1], clone.Stacks[1], "mutating a clone must not affect the original")
}

func TestState_CloneStartsIdenticalToOriginal(t *testing.T) {
	base := NewState(snap1())
	clone := base.clone()

	if diff := cmp.Diff(base, clone); diff != "" {
		t.Errorf("clone diverged from original before any mutation (-want +got):\n%s", diff)
	}
}

package render

import (
	"fmt"

	"shrdlite/internal/planner"
	"shrdlite/internal/world"
)

// AlreadyTrue is the whole-plan message emitted when the initial state
// already satisfies the goal (spec.md §6.2).
const AlreadyTrue = "That is already true!"

// Render walks the states/actions of a planner.Result and produces the
// external token stream: primitive actions interleaved with the
// "Taking"/"Moving"/"Dropping" utterances of spec.md §4.5. actions and
// states must satisfy len(states) == len(actions)+1.
func Render(objects map[string]world.Object, actions []planner.Action, states []planner.State) []string {
	if len(actions) == 0 {
		return []string{AlreadyTrue}
	}

	lastPick := -1
	for i, a := range actions {
		if a == planner.ActionPick {
			lastPick = i
		}
	}

	tokens := make([]string, 0, len(actions)*2)
	messageEmitted := false

	for i, a := range actions {
		switch a {
		case planner.ActionArmLeft:
			tokens = append(tokens, "l")
		case planner.ActionArmRight:
			tokens = append(tokens, "r")
		case planner.ActionPick:
			target := states[i+1].Holding
			desc := ShortestDescription(objects, present(states[i]), target)
			if i == lastPick {
				tokens = append(tokens, fmt.Sprintf("Taking the %s", desc))
			} else {
				tokens = append(tokens, fmt.Sprintf("Moving the %s", desc))
			}
			tokens = append(tokens, "p")
			messageEmitted = true
		case planner.ActionDrop:
			if !messageEmitted {
				target := states[i].Holding
				desc := ShortestDescription(objects, present(states[i]), target)
				tokens = append(tokens, fmt.Sprintf("Dropping the %s", desc))
			}
			tokens = append(tokens, "d")
			messageEmitted = false
		}
	}
	return tokens
}

// present flattens s's stacks into the identifier set ShortestDescription
// compares against; a held object is never "present" in the stacks.
func present(s planner.State) []string {
	var ids []string
	for _, col := range s.Stacks {
		ids = append(ids, col...)
	}
	return ids
}

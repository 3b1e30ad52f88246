// -*- Mode: Go -*-

// Search state: {stacks, holding, arm} (spec.md §3.4).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package planner

import (
	"strconv"
	"strings"

	"shrdlite/internal/world"
)

// State is one configuration of stacks, arm and holding. Two states are
// equal iff all three fields compare equal element-wise; Key canonicalizes
// that comparison for the closed set (spec.md §3.4, §9).
type State struct {
	Stacks  [][]string
	Holding string
	Arm     int
}

// NewState builds the initial search state from a world snapshot.
func NewState(snap world.Snapshot) State {
	stacks := make([][]string, len(snap.Stacks))
	for i, col := range snap.Stacks {
		stacks[i] = append([]string(nil), col...)
	}
	return State{Stacks: stacks, Holding: snap.Holding, Arm: snap.Arm}
}

// Key returns a canonical serialization used for closed-set membership and
// hashing. It is not meant to be human-readable, only collision-free for
// distinct (stacks, holding, arm) triples.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Arm))
	b.WriteByte('|')
	b.WriteString(s.Holding)
	for _, col := range s.Stacks {
		b.WriteByte('|')
		b.WriteString(strings.Join(col, ","))
	}
	return b.String()
}

// clone returns a deep, independent copy of s. The state graph never
// mutates a predecessor state in place — every successor gets its own
// freshly copied stacks, per spec.md §5's copy-on-write memory model.
func (s State) clone() State {
	stacks := make([][]string, len(s.Stacks))
	for i, col := range s.Stacks {
		stacks[i] = append([]string(nil), col...)
	}
	return State{Stacks: stacks, Holding: s.Holding, Arm: s.Arm}
}

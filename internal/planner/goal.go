// -*- Mode: Go -*-

// Goal test: does a state satisfy a DNF goal formula (spec.md §4.4).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package planner

import (
	"shrdlite/internal/dnf"
	"shrdlite/internal/world"
)

// Satisfied reports whether s satisfies one literal. A state can never
// satisfy a positional literal about an object it currently holds — the
// held object participates only in "holding" goals (spec.md §4.4, §9).
func Satisfied(s State, lit dnf.Literal) bool {
	if lit.Relation == world.RelHolding {
		return s.Holding == lit.Args[0]
	}
	if len(lit.Args) != 2 {
		return false
	}
	id1, id2 := lit.Args[0], lit.Args[1]
	if s.Holding == id1 {
		return false
	}
	snap := world.Snapshot{Stacks: s.Stacks, Holding: s.Holding, Arm: s.Arm}
	related, ok := world.Related(snap, id1, lit.Relation)
	if !ok {
		return false
	}
	return related.Contains(id2)
}

// SatisfiedConjunction reports whether every literal of c holds in s.
func SatisfiedConjunction(s State, c dnf.Conjunction) bool {
	for _, lit := range c {
		if !Satisfied(s, lit) {
			return false
		}
	}
	return true
}

// GoalTest returns a predicate reporting whether a state satisfies at least
// one conjunction of f. It stops at the first satisfied conjunction and does
// not report which one that was.
func GoalTest(f dnf.Formula) func(State) bool {
	return func(s State) bool {
		for _, c := range f {
			if SatisfiedConjunction(s, c) {
				return true
			}
		}
		return false
	}
}

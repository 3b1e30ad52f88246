// -*- Mode: Go -*-

// The relation extensor: maps (object, relation) to the set of identifiers
// that stand in that relation to the object in the current world. Shared by
// the referring-expression resolver and the goal test (spec.md §9).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package world

import "bitbucket.org/creachadair/stringset"

// Related returns the set of identifiers positionally related to id via
// rel, and ok=false if id cannot be positioned at all (it is held, unknown,
// or the floor sentinel) or if rel is not one of the extensor's seven
// positional relations.
//
// A held object is deliberately excluded here rather than given the
// nonsensical stacks[-1][...] reading spec.md §9 warns about: it never
// participates in a positional relation, only in a "holding" goal literal.
func Related(s Snapshot, id string, rel Relation) (stringset.Set, bool) {
	pos, locatable := s.Locate(id)
	if !locatable {
		return nil, false
	}
	col := s.Stacks[pos.Col]

	switch rel {
	case RelLeftof:
		out := stringset.New()
		for c := pos.Col + 1; c < len(s.Stacks); c++ {
			out.Add(s.Stacks[c]...)
		}
		return out, true
	case RelRightof:
		out := stringset.New()
		for c := 0; c < pos.Col; c++ {
			out.Add(s.Stacks[c]...)
		}
		return out, true
	case RelBeside:
		out := stringset.New()
		if pos.Col-1 >= 0 {
			out.Add(s.Stacks[pos.Col-1]...)
		}
		if pos.Col+1 < len(s.Stacks) {
			out.Add(s.Stacks[pos.Col+1]...)
		}
		return out, true
	case RelInside:
		if pos.Row == 0 {
			return stringset.New(), true
		}
		return stringset.New(col[pos.Row-1]), true
	case RelOntop:
		if pos.Row == 0 {
			return stringset.New(Floor), true
		}
		return stringset.New(col[pos.Row-1]), true
	case RelUnder:
		out := stringset.New()
		for r := pos.Row + 1; r < len(col); r++ {
			out.Add(col[r])
		}
		return out, true
	case RelAbove:
		out := stringset.New(Floor)
		for r := 0; r < pos.Row; r++ {
			out.Add(col[r])
		}
		return out, true
	default:
		// UnsupportedRelation: a relation tag outside the extensor's table
		// reached this call. Per spec.md §7 this is a fatal bug in the
		// caller, not a user-visible condition.
		return nil, false
	}
}

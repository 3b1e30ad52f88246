// -*- Mode: Go -*-

// Referring-expression resolver: find_candidates (spec.md §4.1a).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package interpret

import (
	"bitbucket.org/creachadair/stringset"

	"shrdlite/internal/world"
)

// FindCandidates resolves ent against snap, restricted to the identifiers in
// restrict when hasRestrict is true. It returns the full matching set for quantifiers
// "any" and "all", or the single match for "the" — and a *Error of kind
// Ambiguous if "the" matches more than one candidate, at any nesting depth.
//
// It never returns NoSuchEntity: an empty result is a legitimate answer at
// every level except the top of a take/put/move command, where the caller
// (Interpret) is responsible for turning "empty" into that error.
func FindCandidates(ent Entity, snap world.Snapshot, restrict stringset.Set, hasRestrict bool) (stringset.Set, error) {
	matches := stringset.New()
	for _, id := range candidateIDs(snap) {
		if hasRestrict && !restrict.Contains(id) {
			continue
		}
		ok, err := matchesObject(id, ent.Object, snap)
		if err != nil {
			return nil, err
		}
		if ok {
			matches.Add(id)
		}
	}
	if ent.Quantifier == QuantifierThe && matches.Len() > 1 {
		return nil, errAmbiguous(describeObject(ent.Object), matches.Len())
	}
	return matches, nil
}

// candidateIDs lists every identifier eligible for referring-expression
// resolution: every real object plus the implicit floor sentinel, which
// spec.md §4.1a calls out explicitly ("'floor' form is a terminal
// sentinel") even though it is never a key of Objects.
func candidateIDs(snap world.Snapshot) []string {
	ids := make([]string, 0, len(snap.Objects)+1)
	for id := range snap.Objects {
		ids = append(ids, id)
	}
	if _, ok := snap.Objects[world.Floor]; !ok {
		ids = append(ids, world.Floor)
	}
	return ids
}

// matchesObject tests every explicitly given scalar property at every
// nesting level of obj, then every nested location clause.
func matchesObject(id string, obj Object, snap world.Snapshot) (bool, error) {
	def := world.Object{Form: world.FormFloor}
	if id != world.Floor {
		var ok bool
		def, ok = snap.Objects[id]
		if !ok {
			return false, nil
		}
	}
	if obj.Form != "" && obj.Form != world.FormAny && def.Form != obj.Form {
		return false, nil
	}
	if obj.Size != "" && string(def.Size) != obj.Size {
		return false, nil
	}
	if obj.Color != "" && def.Color != obj.Color {
		return false, nil
	}
	if obj.Object != nil {
		ok, err := matchesObject(id, *obj.Object, snap)
		if err != nil || !ok {
			return false, err
		}
	}
	if obj.Location != nil {
		ok, err := matchesLocation(id, *obj.Location, snap)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// matchesLocation evaluates one nested location clause for candidate id, as
// described in spec.md §4.1a: compute the positionally related set, then
// recursively resolve the clause's inner entity.
//
// For quantifier != "all" the inner entity is resolved restricted to the
// related set, and the clause holds iff that yields a non-empty result.
// For quantifier == "all" the inner entity is resolved over the whole
// world (every object matching its description, unrestricted) and the
// clause holds iff that set is non-empty and every element of it lies in
// the related set — i.e. id is related to all of them.
func matchesLocation(id string, loc Location, snap world.Snapshot) (bool, error) {
	related, locatable := world.Related(snap, id, loc.Relation)
	if !locatable {
		return false, nil
	}

	if loc.Entity.Quantifier == QuantifierAll {
		all, err := FindCandidates(loc.Entity, snap, stringset.Set{}, false)
		if err != nil {
			return false, err
		}
		if all.Len() == 0 {
			return false, nil
		}
		for elem := range all {
			if !related.Contains(elem) {
				return false, nil
			}
		}
		return true, nil
	}

	sub, err := FindCandidates(loc.Entity, snap, related, true)
	if err != nil {
		return false, err
	}
	return sub.Len() > 0, nil
}

func describeObject(obj Object) string {
	desc := string(obj.Form)
	if obj.Color != "" {
		desc = obj.Color + " " + desc
	}
	if obj.Size != "" {
		desc = obj.Size + " " + desc
	}
	return desc
}

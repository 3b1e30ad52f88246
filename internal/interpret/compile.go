// -*- Mode: Go -*-

// Goal compiler: interpret(command, world) -> DNF (spec.md §4.1b).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package interpret

import (
	"bitbucket.org/creachadair/stringset"

	"shrdlite/internal/dnf"
	"shrdlite/internal/world"
)

// Interpret compiles one parsed command against snap into a goal DNF.
func Interpret(cmd Command, snap world.Snapshot) (dnf.Formula, error) {
	switch cmd.Command {
	case "take":
		return interpretTake(cmd, snap)
	case "put":
		return interpretPut(cmd, snap)
	case "move":
		return interpretMove(cmd, snap)
	default:
		return nil, newError(KindNoEntity, "unknown command %q", cmd.Command)
	}
}

func interpretTake(cmd Command, snap world.Snapshot) (dnf.Formula, error) {
	if cmd.Entity == nil {
		return nil, errNoEntity("take")
	}
	cands, err := FindCandidates(*cmd.Entity, snap, stringset.Set{}, false)
	if err != nil {
		return nil, err
	}
	if cands.Len() == 0 {
		return nil, errNoSuchEntity(describeObject(cmd.Entity.Object))
	}
	if cands.Contains(world.Floor) {
		return nil, errCannotPickUpFloor()
	}
	if cmd.Entity.Quantifier == QuantifierAll && cands.Len() > 1 {
		return nil, errUnsupportedAll("take")
	}
	var f dnf.Formula
	for id := range cands {
		f = append(f, dnf.Conjunction{{Polarity: true, Relation: world.RelHolding, Args: []string{id}}})
	}
	return f, nil
}

func interpretPut(cmd Command, snap world.Snapshot) (dnf.Formula, error) {
	if snap.Holding == "" {
		return nil, errNotHolding()
	}
	if cmd.Location == nil {
		return nil, errNoEntity("put")
	}
	rel := cmd.Location.Relation
	destRestrict, hasRestrict := floorRestriction(cmd.Location.Entity.Object)
	dests, err := FindCandidates(cmd.Location.Entity, snap, destRestrict, hasRestrict)
	if err != nil {
		return nil, err
	}
	if dests.Len() == 0 {
		return nil, errNoSuchEntity(describeObject(cmd.Location.Entity.Object))
	}

	held := snap.Holding
	if cmd.Location.Entity.Quantifier == QuantifierAll {
		f := buildAllDNF([]string{held}, dests.Elements(), rel, snap, false, true)
		if len(f) == 0 {
			return nil, errNoValidSolution()
		}
		return f, nil
	}

	var f dnf.Formula
	for d := range dests {
		if world.CanSupport(snap.Objects, held, rel, d) {
			f = append(f, dnf.Conjunction{{Polarity: true, Relation: rel, Args: []string{held, d}}})
		}
	}
	if len(f) == 0 {
		return nil, errNoValidSolution()
	}
	return f, nil
}

func interpretMove(cmd Command, snap world.Snapshot) (dnf.Formula, error) {
	if cmd.Entity == nil || cmd.Location == nil {
		return nil, errNoEntity("move")
	}
	sources, err := FindCandidates(*cmd.Entity, snap, stringset.Set{}, false)
	if err != nil {
		return nil, err
	}
	if sources.Len() == 0 {
		return nil, errNoSuchEntity(describeObject(cmd.Entity.Object))
	}
	dests, err := FindCandidates(cmd.Location.Entity, snap, stringset.Set{}, false)
	if err != nil {
		return nil, err
	}
	if dests.Len() == 0 {
		return nil, errNoSuchEntity(describeObject(cmd.Location.Entity.Object))
	}

	rel := cmd.Location.Relation
	sourceAll := cmd.Entity.Quantifier == QuantifierAll
	destAll := cmd.Location.Entity.Quantifier == QuantifierAll

	var f dnf.Formula
	if !sourceAll && !destAll {
		for s := range sources {
			for d := range dests {
				if s == d {
					continue
				}
				if world.CanSupport(snap.Objects, s, rel, d) {
					f = append(f, dnf.Conjunction{{Polarity: true, Relation: rel, Args: []string{s, d}}})
				}
			}
		}
	} else {
		f = buildAllDNF(sources.Elements(), dests.Elements(), rel, snap, sourceAll, destAll)
	}

	if len(f) == 0 {
		return nil, errNoValidSolution()
	}
	return f, nil
}

// floorRestriction restricts destination resolution to {"floor"} when the
// location object's form is explicitly "floor" ("put X on the floor").
func floorRestriction(obj Object) (stringset.Set, bool) {
	if obj.Form == world.FormFloor {
		return stringset.New(world.Floor), true
	}
	return stringset.Set{}, false
}

// buildAllDNF implements the "at least one side is 'all'" branch of
// spec.md §4.1b: build a CNF over relation(s,d) literals, expand it to DNF
// by cross product, flatten if both sides are "all", then filter for
// feasibility and invalid multi-target combinations.
func buildAllDNF(sources, dests []string, rel world.Relation, snap world.Snapshot, sourceAll, destAll bool) dnf.Formula {
	var clauses []dnf.Clause

	if sourceAll {
		for _, s := range sources {
			clause := make(dnf.Clause, 0, len(dests))
			for _, d := range dests {
				if s == d {
					continue
				}
				clause = append(clause, dnf.Literal{Polarity: true, Relation: rel, Args: []string{s, d}})
			}
			clauses = append(clauses, clause)
		}
	}
	if destAll {
		for _, d := range dests {
			clause := make(dnf.Clause, 0, len(sources))
			for _, s := range sources {
				if s == d {
					continue
				}
				clause = append(clause, dnf.Literal{Polarity: true, Relation: rel, Args: []string{s, d}})
			}
			clauses = append(clauses, clause)
		}
	}

	expanded := dnf.CNFToDNF(clauses)

	var result dnf.Formula
	if sourceAll && destAll {
		result = dnf.Formula{dnf.FlattenUnion(expanded)}
	} else {
		result = expanded
	}

	result = dnf.FilterFeasible(snap.Objects, result)
	result = dnf.PruneInvalidMultiTarget(result)
	return dnf.Dedup(result)
}

// Package dnf implements the goal-literal, conjunction and disjunctive
// normal form types of spec.md §3.2-§3.3, and the CNF-to-DNF cross-product
// expansion used by the "all"-quantified branches of the goal compiler.
package dnf

import (
	"fmt"
	"sort"
	"strings"

	"shrdlite/internal/world"
)

// Literal is one relational atom: {polarity, relation, args}. args has
// length 1 for "holding" and length 2 for every other relation.
type Literal struct {
	Polarity bool
	Relation world.Relation
	Args     []string
}

// Key returns a canonical string identity for the literal, used for
// deduplication and closed-set-style membership tests.
func (l Literal) Key() string {
	return fmt.Sprintf("%v|%s|%s", l.Polarity, l.Relation, strings.Join(l.Args, ","))
}

func (l Literal) String() string {
	if len(l.Args) == 1 {
		return fmt.Sprintf("%s(%s)", l.Relation, l.Args[0])
	}
	return fmt.Sprintf("%s(%s,%s)", l.Relation, l.Args[0], l.Args[1])
}

// Conjunction is a list of literals all of which must hold.
type Conjunction []Literal

// Key returns a canonical, order-independent string identity, used to
// deduplicate conjunctions produced by CNF-to-DNF expansion.
func (c Conjunction) Key() string {
	keys := make([]string, len(c))
	for i, l := range c {
		keys[i] = l.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, ";")
}

// Formula is a disjunction of conjunctions: it is satisfied iff any one
// conjunction is satisfied. An empty Formula means "no interpretation".
type Formula []Conjunction

// Clause is one disjunctive clause of a CNF: at least one of its literals
// must hold.
type Clause []Literal

// CNFToDNF performs the iterative cross-product expansion of spec.md §4.1b:
// a new disjunct set grows as {c ∪ {l} | c ∈ cur, l ∈ nextClause}. For n
// non-empty clauses the result has exactly Π|Clause_i| conjunctions, the
// distribution law tested in spec.md §8.
func CNFToDNF(clauses []Clause) Formula {
	cur := Formula{{}}
	for _, clause := range clauses {
		if len(clause) == 0 {
			continue
		}
		next := make(Formula, 0, len(cur)*len(clause))
		for _, c := range cur {
			for _, lit := range clause {
				grown := make(Conjunction, len(c), len(c)+1)
				copy(grown, c)
				grown = append(grown, lit)
				next = append(next, grown)
			}
		}
		cur = next
	}
	return cur
}

// FlattenUnion collapses every conjunction of f into a single conjunction
// holding the deduplicated union of all literals across all of them. This
// implements the "all both sides" combination of spec.md §4.1b, which
// spec.md §9 flags as possibly stronger than intended.
func FlattenUnion(f Formula) Conjunction {
	seen := map[string]bool{}
	var out Conjunction
	for _, c := range f {
		for _, lit := range c {
			k := lit.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, lit)
		}
	}
	return out
}

// FilterFeasible drops every conjunction containing a physically infeasible
// literal, per spec.md §4.1b.
func FilterFeasible(objects map[string]world.Object, f Formula) Formula {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if conjunctionFeasible(objects, c) {
			out = append(out, c)
		}
	}
	return out
}

func conjunctionFeasible(objects map[string]world.Object, c Conjunction) bool {
	for _, lit := range c {
		if lit.Relation == world.RelHolding {
			continue
		}
		if len(lit.Args) != 2 {
			return false
		}
		if !world.CanSupport(objects, lit.Args[0], lit.Relation, lit.Args[1]) {
			return false
		}
	}
	return true
}

// PruneInvalidMultiTarget discards conjunctions in which some non-floor
// identifier appears twice as an ontop/inside lhs, or twice as an ontop/
// inside rhs (floor is exempt from the rhs rule), per spec.md §4.1b: two
// objects cannot simultaneously occupy the same support.
func PruneInvalidMultiTarget(f Formula) Formula {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if multiTargetValid(c) {
			out = append(out, c)
		}
	}
	return out
}

func multiTargetValid(c Conjunction) bool {
	lhsSeen := map[string]bool{}
	rhsSeen := map[string]bool{}
	for _, lit := range c {
		if lit.Relation != world.RelOntop && lit.Relation != world.RelInside {
			continue
		}
		if len(lit.Args) != 2 {
			continue
		}
		lhs, rhs := lit.Args[0], lit.Args[1]
		if lhs != world.Floor {
			if lhsSeen[lhs] {
				return false
			}
			lhsSeen[lhs] = true
		}
		if rhs != world.Floor {
			if rhsSeen[rhs] {
				return false
			}
			rhsSeen[rhs] = true
		}
	}
	return true
}

// Dedup removes duplicate conjunctions (by Key) while preserving order.
func Dedup(f Formula) Formula {
	seen := map[string]bool{}
	out := make(Formula, 0, len(f))
	for _, c := range f {
		k := c.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

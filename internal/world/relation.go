// -*- Mode: Go -*-

// Relation vocabulary shared by goal literals and the referring-expression
// resolver.

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package world

// Relation is one of the eight relation tags of spec.md §3.2.
type Relation string

const (
	RelHolding Relation = "holding"
	RelOntop   Relation = "ontop"
	RelInside  Relation = "inside"
	RelAbove   Relation = "above"
	RelUnder   Relation = "under"
	RelLeftof  Relation = "leftof"
	RelRightof Relation = "rightof"
	RelBeside  Relation = "beside"
)

// IsBinary reports whether the relation takes two arguments. Holding is the
// only unary relation.
func (r Relation) IsBinary() bool {
	return r != RelHolding
}

// -*- Mode: Go -*-

// State graph: lazy successor generator over arm-left, arm-right, pick and
// drop (spec.md §4.2), generalizing the teacher's named Pickup/Putdown/
// Stack/Unstack operators to an arm that travels between columns instead of
// a single fixed table.

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package planner

import (
	"shrdlite/internal/search"
	"shrdlite/internal/world"
)

// Action names the four primitive moves of spec.md §4.2/§6.2.
type Action string

const (
	ActionArmLeft  Action = "l"
	ActionArmRight Action = "r"
	ActionPick     Action = "p"
	ActionDrop     Action = "d"
)

// CostModel holds the tunable constants of spec.md §4.2. Defaults produce
// exactly the values spec.md names.
type CostModel struct {
	Move       float64
	Carry      float64
	CarryLarge float64
	MaxPickup  float64
}

// DefaultCostModel returns the cost constants named in spec.md §4.2.
func DefaultCostModel() CostModel {
	return CostModel{Move: 1, Carry: 2, CarryLarge: 2, MaxPickup: 10}
}

// Graph adapts a fixed object table and cost model into a search.Expand
// over State.
type Graph struct {
	Objects map[string]world.Object
	Costs   CostModel
	N       int // total non-floor objects, used by the pick/drop cost formula
}

// NewGraph builds a Graph for the given world. N is computed once from the
// snapshot's object table.
func NewGraph(snap world.Snapshot) *Graph {
	return &Graph{Objects: snap.Objects, Costs: DefaultCostModel(), N: snap.NumObjects()}
}

// Expand implements search.Expand[State]: the four candidate moves of
// spec.md §4.2, each yielded only when its precondition holds.
func (g *Graph) Expand(s State) []search.Edge[State] {
	var edges []search.Edge[State]

	if s.Arm > 0 {
		edges = append(edges, search.Edge[State]{To: g.moveArm(s, -1), Cost: g.moveCost(s)})
	}
	if s.Arm < len(s.Stacks)-1 {
		edges = append(edges, search.Edge[State]{To: g.moveArm(s, 1), Cost: g.moveCost(s)})
	}
	if next, cost, ok := g.pick(s); ok {
		edges = append(edges, search.Edge[State]{To: next, Cost: cost})
	}
	if next, cost, ok := g.drop(s); ok {
		edges = append(edges, search.Edge[State]{To: next, Cost: cost})
	}
	return edges
}

func (g *Graph) moveArm(s State, delta int) State {
	next := s.clone()
	next.Arm += delta
	return next
}

// moveCost charges for carrying: empty-handed moves cost Move, carrying a
// normal object adds Carry, carrying a large one adds CarryLarge on top.
func (g *Graph) moveCost(s State) float64 {
	if s.Holding == "" {
		return g.Costs.Move
	}
	cost := g.Costs.Move + g.Costs.Carry
	if g.Objects[s.Holding].Size == world.SizeLarge {
		cost += g.Costs.CarryLarge
	}
	return cost
}

func (g *Graph) pick(s State) (State, float64, bool) {
	if s.Holding != "" {
		return State{}, 0, false
	}
	col := s.Stacks[s.Arm]
	if len(col) == 0 {
		return State{}, 0, false
	}
	next := s.clone()
	top := next.Stacks[s.Arm][len(col)-1]
	next.Stacks[s.Arm] = next.Stacks[s.Arm][:len(col)-1]
	next.Holding = top
	return next, g.pickDropCost(len(col)), true
}

func (g *Graph) drop(s State) (State, float64, bool) {
	if s.Holding == "" {
		return State{}, 0, false
	}
	col := s.Stacks[s.Arm]
	if len(col) > 0 {
		top := col[len(col)-1]
		rel := world.RelOntop
		if g.Objects[top].Form == world.FormBox {
			rel = world.RelInside
		}
		if !world.CanSupport(g.Objects, s.Holding, rel, top) {
			return State{}, 0, false
		}
	}
	next := s.clone()
	next.Stacks[s.Arm] = append(next.Stacks[s.Arm], s.Holding)
	next.Holding = ""
	return next, g.pickDropCost(len(col)), true
}

// pickDropCost implements the shared pick/drop cost formula of spec.md
// §4.2: 1 + MaxPickup*(N-h)/N, where h is the column height before the
// action (before removing the top item for a pick, before adding one for a
// drop). A drop onto an empty column has h=0 and costs 1+MaxPickup exactly.
func (g *Graph) pickDropCost(h int) float64 {
	if g.N <= 0 {
		return 1
	}
	return 1 + g.Costs.MaxPickup*float64(g.N-h)/float64(g.N)
}

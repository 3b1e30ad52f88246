// -*- Mode: Go -*-

// Plan wires the state graph, goal test and heuristic into one A* search
// over a world snapshot (spec.md §4.2-§4.4).

// Copyright (c) 1988-1993 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.

// See the file legal.txt for a paragraph stating scope of permission
// and disclaimer of warranty.

package planner

import (
	"errors"
	"fmt"
	"time"

	"shrdlite/internal/dnf"
	"shrdlite/internal/search"
	"shrdlite/internal/world"
)

// Kind tags why a Plan call failed to produce a path.
type Kind string

const (
	KindAlreadyTrue Kind = "AlreadyTrue"
	KindTimeout     Kind = "Timeout"
	KindNoPath      Kind = "NoPath"
)

// Error is a typed planning failure, mirroring interpret.Error's shape so
// both layers surface the same kind of typed condition to the CLI.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Result carries the winning action sequence plus the search statistics
// the ambient logger records per spec.md §7.
type Result struct {
	Actions  []Action
	States   []State
	Cost     float64
	Examined int
}

// Plan searches snap's state space for the cheapest path satisfying goal,
// within timeout. A goal already satisfied by the initial state returns an
// empty Result and a *Error of kind AlreadyTrue, which the CLI renders as
// "That is already true!" (spec.md §4.5).
func Plan(snap world.Snapshot, goal dnf.Formula, costs CostModel, timeout time.Duration) (Result, error) {
	start := NewState(snap)
	graph := NewGraph(snap)
	graph.Costs = costs
	isGoal := GoalTest(goal)
	h := Heuristic(graph, goal)

	if isGoal(start) {
		return Result{}, &Error{Kind: KindAlreadyTrue, Msg: "initial state already satisfies the goal"}
	}

	res, err := search.AStar(start, isGoal, h, graph.Expand, timeout)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrTimeout):
			return Result{}, &Error{Kind: KindTimeout, Msg: "search timed out before finding a plan"}
		case errors.Is(err, search.ErrNoPath):
			return Result{}, &Error{Kind: KindNoPath, Msg: "no sequence of actions satisfies the goal"}
		default:
			return Result{}, err
		}
	}

	actions, err := reconstructActions(graph, res.Path)
	if err != nil {
		return Result{}, err
	}
	return Result{Actions: actions, States: res.Path, Cost: res.Cost, Examined: res.Examined}, nil
}

// reconstructActions re-derives the action label for each consecutive pair
// of states in path, since search.AStar discards edge labels once a path is
// found (it only keeps costs).
func reconstructActions(g *Graph, path []State) ([]Action, error) {
	actions := make([]Action, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		a, ok := classify(g, path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("planner: no single action connects step %d to %d", i, i+1)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func classify(g *Graph, from, to State) (Action, bool) {
	if to.Arm == from.Arm-1 {
		return ActionArmLeft, true
	}
	if to.Arm == from.Arm+1 {
		return ActionArmRight, true
	}
	if from.Holding == "" && to.Holding != "" {
		return ActionPick, true
	}
	if from.Holding != "" && to.Holding == "" {
		return ActionDrop, true
	}
	return "", false
}

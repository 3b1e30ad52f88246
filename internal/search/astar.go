// Package search implements a generic, domain-agnostic A* (spec.md §4.3):
// closed set, priority queue keyed by g+h, and a cooperative wall-clock
// timeout, independent of any particular node type. The blocks-world state
// graph, goal test and heuristic that instantiate it live in
// internal/planner.
package search

import (
	"container/heap"
	"errors"
	"time"
)

// ErrTimeout is returned when the search abandons before exhausting the
// open set because the wall-clock budget ran out.
var ErrTimeout = errors.New("search: wall-clock timeout exceeded")

// ErrNoPath is returned when the open set empties without reaching a goal.
var ErrNoPath = errors.New("search: no path to goal")

// Node is any state with a canonical string identity, used to drive the
// closed set and path reconstruction. Structural equality on the identity
// must imply the states are interchangeable for search purposes
// (spec.md §3.4).
type Node interface {
	Key() string
}

// Edge is one successor of a node together with the cost of the transition
// that produced it.
type Edge[T Node] struct {
	To   T
	Cost float64
}

// Expand returns every successor reachable from n in one step.
type Expand[T Node] func(n T) []Edge[T]

// Result is a cost-optimal path from the start node to a goal node,
// inclusive of both endpoints, plus the total accumulated cost.
type Result[T Node] struct {
	Path     []T
	Cost     float64
	Examined int
}

type openItem[T Node] struct {
	node T
	g, f float64
	seq  int // insertion order, used only to break ties deterministically
}

type openQueue[T Node] []*openItem[T]

func (q openQueue[T]) Len() int { return len(q) }
func (q openQueue[T]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q openQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *openQueue[T]) Push(x any)   { *q = append(*q, x.(*openItem[T])) }
func (q *openQueue[T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

type backEntry[T Node] struct {
	parent    T
	hasParent bool
	edgeCost  float64
}

// AStar searches from start for any node satisfying isGoal, using heuristic
// as the admissible lower-bound estimate and expand to generate successors.
// timeout bounds the wall-clock time spent searching; it is checked on
// every dequeue, matching spec.md §5's "no less often than every dequeue"
// requirement. A timeout or an exhausted open set both abandon the search
// and discard the partial frontier, per spec.md §5.
func AStar[T Node](start T, isGoal func(T) bool, heuristic func(T) float64, expand Expand[T], timeout time.Duration) (Result[T], error) {
	startTime := time.Now()

	open := &openQueue[T]{}
	heap.Init(open)
	seq := 0
	push := func(n T, g float64) {
		heap.Push(open, &openItem[T]{node: n, g: g, f: g + heuristic(n), seq: seq})
		seq++
	}

	closed := map[string]bool{}
	gScore := map[string]float64{start.Key(): 0}
	nodesByKey := map[string]T{start.Key(): start}
	cameFrom := map[string]backEntry[T]{}

	push(start, 0)
	examined := 0

	for open.Len() > 0 {
		if time.Since(startTime) >= timeout {
			return Result[T]{Examined: examined}, ErrTimeout
		}

		cur := heap.Pop(open).(*openItem[T])
		key := cur.node.Key()
		if closed[key] {
			continue
		}
		closed[key] = true
		examined++

		if isGoal(cur.node) {
			return Result[T]{
				Path:     reconstruct(key, nodesByKey, cameFrom),
				Cost:     cur.g,
				Examined: examined,
			}, nil
		}

		for _, edge := range expand(cur.node) {
			childKey := edge.To.Key()
			if closed[childKey] {
				continue
			}
			g := cur.g + edge.Cost
			if existing, ok := gScore[childKey]; ok && existing <= g {
				continue
			}
			gScore[childKey] = g
			nodesByKey[childKey] = edge.To
			cameFrom[childKey] = backEntry[T]{parent: cur.node, hasParent: true, edgeCost: edge.Cost}
			push(edge.To, g)
		}
	}

	return Result[T]{Examined: examined}, ErrNoPath
}

func reconstruct[T Node](goalKey string, nodesByKey map[string]T, cameFrom map[string]backEntry[T]) []T {
	var path []T
	key := goalKey
	for {
		node := nodesByKey[key]
		path = append(path, node)
		entry, ok := cameFrom[key]
		if !ok || !entry.hasParent {
			break
		}
		key = entry.parent.Key()
	}
	// path was built goal-to-start; reverse to start-to-goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Package search implements a generic best-first (A*-style) search over
// comparable states. One call is one synchronous run to completion; all
// bookkeeping is allocated fresh per call and reclaimed when it returns.
package search

import "container/heap"

// Edge is a transition to a neighboring state and its cost.
type Edge[S comparable] struct {
	State S
	Cost  uint32
}

// node is a discovered state with its accumulated and estimated cost.
// Nodes live in a per-run arena slice; the open set and any bookkeeping
// reference them by index, never by pointer.
type node[S comparable] struct {
	state S
	gCost uint32
	fCost uint32
}

// run holds one search invocation's arena and open set. The open set is
// a min-heap of arena indices ordered by fCost; ties break arbitrarily.
type run[S comparable] struct {
	arena []node[S]
	open  []int
}

func (r *run[S]) Len() int { return len(r.open) }

func (r *run[S]) Less(i, j int) bool {
	return r.arena[r.open[i]].fCost < r.arena[r.open[j]].fCost
}

func (r *run[S]) Swap(i, j int) {
	r.open[i], r.open[j] = r.open[j], r.open[i]
}

func (r *run[S]) Push(x any) {
	r.open = append(r.open, x.(int))
}

func (r *run[S]) Pop() any {
	n := len(r.open)
	idx := r.open[n-1]
	r.open = r.open[:n-1]
	return idx
}

func (r *run[S]) alloc(state S, gCost, fCost uint32) int {
	r.arena = append(r.arena, node[S]{state: state, gCost: gCost, fCost: fCost})
	return len(r.arena) - 1
}

// FindPath searches from start until isGoal is satisfied or the open set
// drains. capacity is an upper-bound hint on the number of distinct
// states, used to pre-size the arena and maps. On success it returns the
// state sequence from start to goal and the accumulated cost; ok is
// false when no path exists, which is a normal outcome.
func FindPath[S comparable](
	start S,
	capacity int,
	neighbors func(S) []Edge[S],
	heuristic func(S) uint32,
	isGoal func(S) bool,
) (path []S, total uint32, ok bool) {
	if capacity < 1 {
		capacity = 1
	}
	r := &run[S]{
		arena: make([]node[S], 0, capacity),
		open:  make([]int, 0, capacity),
	}
	cameFrom := make(map[S]S, capacity)
	gScore := make(map[S]uint32, capacity)

	heap.Push(r, r.alloc(start, 0, heuristic(start)))
	gScore[start] = 0

	for r.Len() > 0 {
		current := r.arena[heap.Pop(r).(int)]

		if isGoal(current.state) {
			return reconstruct(cameFrom, current.state), current.gCost, true
		}

		for _, e := range neighbors(current.state) {
			tentative := gScore[current.state] + e.Cost
			if best, seen := gScore[e.State]; seen && tentative >= best {
				continue
			}
			cameFrom[e.State] = current.state
			gScore[e.State] = tentative
			heap.Push(r, r.alloc(e.State, tentative, tentative+heuristic(e.State)))
		}
	}

	return nil, 0, false
}

// reconstruct walks predecessors from the goal back to the start and
// reverses the result into start-to-goal order.
func reconstruct[S comparable](cameFrom map[S]S, goal S) []S {
	path := []S{goal}
	for s := goal; ; {
		prev, found := cameFrom[s]
		if !found {
			break
		}
		path = append(path, prev)
		s = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

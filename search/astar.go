package search

import "github.com/circuitpilot/racepilot/geometry"

// Search runs the A* main loop from start to goal using expander for
// successor generation. start.G is assumed zero and start.Parent nil;
// Search sets start.H before the first iteration.
//
// Returns the reconstructed Path on success, or ErrNoPath once the open
// set empties without reaching goal.
//
// Complexity depends on branching factor and heuristic quality; no
// asymptotic bound is claimed beyond "exponentially worse than Dijkstra's
// V log V only insofar as the kinematic state space is larger than a
// plain grid — see the package doc for the shape of the data structures
// that keep each iteration O(log n)".
func Search(start *State, goal geometry.Vector, expander *Expander) (Path, error) {
	start.H = Heuristic(start.Pos, goal)
	start.Parent = nil
	expander.Goal = goal

	open := NewOpenSet()
	closed := NewClosedSet()
	open.Push(start)

	for !open.Empty() {
		cur := open.PopMin()

		if cur.Pos.Equal(goal) {
			return Reconstruct(cur), nil
		}

		closed.Insert(cur)

		for _, n := range expander.Successors(cur) {
			id := n.Identity()
			if closed.Reject(id, n.F()) {
				continue
			}
			closed.Reopen(id)
			open.Push(n)
		}
	}

	return nil, ErrNoPath
}

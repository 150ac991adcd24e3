package circuit

import "github.com/circuitpilot/racepilot/geometry"

// neighborOffsets is the 8-connected neighborhood used for the reachability
// walk, matching the Conn8 offsets gridgraph.GridGraph precomputes.
var neighborOffsets = [8]geometry.Vector{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Validate performs a BFS connectivity check, adapted from
// gridgraph.GridGraph.ConnectedComponents's region-labeling walk, from
// every start position to the FINISH region. It treats WALL cells as
// impassable and every other cell as traversable, ignoring fuel, sand
// surcharge, and velocity constraints — this is a load-time sanity check,
// not a claim that the pilot can reach the finish under game rules.
//
// Returns ErrUnreachableFinish if any start cannot reach a FINISH cell.
//
// Complexity: O(Width*Height) time and memory.
func (c *Circuit) Validate(starts map[int]geometry.Vector) error {
	finish := make(map[geometry.Vector]bool)
	for _, f := range c.FinishCells() {
		finish[f] = true
	}
	if len(finish) == 0 {
		return nil
	}

	for _, start := range starts {
		if !c.reaches(start, finish) {
			return ErrUnreachableFinish
		}
	}

	return nil
}

// reaches runs a single BFS from start and reports whether it touches any
// cell in finish before exhausting the frontier.
func (c *Circuit) reaches(start geometry.Vector, finish map[geometry.Vector]bool) bool {
	if finish[start] {
		return true
	}

	visited := make(map[geometry.Vector]bool)
	visited[start] = true
	queue := []geometry.Vector{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighborOffsets {
			next := cur.Add(d)
			if visited[next] || !c.InBounds(next) || c.IsWall(next) {
				continue
			}
			if finish[next] {
				return true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return false
}

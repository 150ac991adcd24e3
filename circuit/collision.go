package circuit

import "github.com/circuitpilot/racepilot/geometry"

// Occupied reports whether v coincides with any of the given opponent
// positions. This is the original implementation's dedicated occupancy
// predicate (checkOccupancy in graph.h), kept separate from Collision so
// the destination picker can ask "is this cell occupied" without also
// asking "does a wall lie between here and there".
func Occupied(v geometry.Vector, opponents ...geometry.Vector) bool {
	for _, opp := range opponents {
		if v.Equal(opp) {
			return true
		}
	}
	return false
}

// Collision reports whether travelling in a straight line from a to b
// crosses a WALL cell (including leaving the grid) or an opponent's cell,
// inclusive of both endpoints. Passing no opponents yields the wall-only
// variant used when opponents are known to be behind the pilot.
func Collision(c *Circuit, a, b geometry.Vector, opponents ...geometry.Vector) bool {
	for _, cell := range geometry.Rasterize(a, b) {
		if !c.InBounds(cell) || c.IsWall(cell) {
			return true
		}
		if Occupied(cell, opponents...) {
			return true
		}
	}
	return false
}

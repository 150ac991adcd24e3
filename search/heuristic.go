package search

import "github.com/circuitpilot/racepilot/geometry"

// Heuristic estimates the remaining cost from p to goal as straight-line
// Euclidean distance. It is admissible because every step's cost is at
// least the Euclidean displacement it covers, and a single step's
// displacement is bounded by the post-acceleration velocity magnitude.
func Heuristic(p, goal geometry.Vector) float64 {
	return p.Sub(goal).Norm()
}

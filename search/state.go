package search

import "github.com/circuitpilot/racepilot/geometry"

// Identity is the dedup key for a State: grid position paired with
// velocity. Fuel is deliberately not part of identity: two arrivals at
// the same (pos, vel) with different remaining fuel are treated as the
// same node, and the lower-f one wins.
type Identity struct {
	Pos, Vel geometry.Vector
}

// State is one node of the kinematic search graph expanded by A*.
type State struct {
	Pos    geometry.Vector
	Vel    geometry.Vector
	Fuel   int
	G      float64
	H      float64
	Parent *State

	// Turbo is reserved for forward compatibility with the original
	// source's unused turbo field (graph.h GraphNode.turbo). No current
	// policy reads it.
	Turbo bool

	seq   int // insertion order, for the FIFO open-set tie-break
	index int // position in the open-set heap; maintained by container/heap
}

// NewStart builds the initial state for a turn: zero accumulated cost, no
// parent, and the heuristic left at zero until Search sets it against a
// goal.
func NewStart(pos, vel geometry.Vector, fuel int) *State {
	return &State{Pos: pos, Vel: vel, Fuel: fuel}
}

// F returns the A* ordering key g + h.
func (s *State) F() float64 { return s.G + s.H }

// Identity returns the dedup key for s.
func (s *State) Identity() Identity { return Identity{Pos: s.Pos, Vel: s.Vel} }

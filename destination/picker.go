package destination

import (
	"sort"

	"github.com/circuitpilot/racepilot/geometry"
)

// OccupiedPenalty is added to a finish cell's score when an opponent
// currently sits on it. It is large enough that any unoccupied cell is
// always preferred over an occupied one on a circuit whose dimensions
// stay within normal grid sizes.
const OccupiedPenalty = 1_000_000.0

// Candidate is one scored finish cell.
type Candidate struct {
	Cell  geometry.Vector
	Score float64
}

// Candidates scores every finish cell against myPos and the two opponent
// positions and returns them ordered best-first: lower score wins, ties
// broken by lower Y then lower X. This exposes the full ranking the
// original implementation builds (generateDestinationList/
// orderDestinations), not just the arg-min Pick returns.
func Candidates(finishCells []geometry.Vector, myPos, opp1, opp2 geometry.Vector) []Candidate {
	return CandidatesWithPenalty(finishCells, myPos, opp1, opp2, OccupiedPenalty)
}

// CandidatesWithPenalty is Candidates with the occupied-cell score penalty
// overridden, for callers wiring in a tuned value (see package config)
// instead of the default OccupiedPenalty.
func CandidatesWithPenalty(finishCells []geometry.Vector, myPos, opp1, opp2 geometry.Vector, penalty float64) []Candidate {
	out := make([]Candidate, len(finishCells))
	for i, c := range finishCells {
		out[i] = Candidate{Cell: c, Score: score(c, myPos, opp1, opp2, penalty)}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Cell.Y != b.Cell.Y {
			return a.Cell.Y < b.Cell.Y
		}
		return a.Cell.X < b.Cell.X
	})
	return out
}

// Pick returns the minimum-score finish cell. It is equivalent to
// Candidates(...)[0].Cell.
func Pick(finishCells []geometry.Vector, myPos, opp1, opp2 geometry.Vector) (geometry.Vector, error) {
	if len(finishCells) == 0 {
		return geometry.Vector{}, ErrNoFinishCells
	}
	return Candidates(finishCells, myPos, opp1, opp2)[0].Cell, nil
}

// PickWithPenalty is Pick with the occupied-cell score penalty overridden,
// for callers wiring in a tuned value instead of the default
// OccupiedPenalty.
func PickWithPenalty(finishCells []geometry.Vector, myPos, opp1, opp2 geometry.Vector, penalty float64) (geometry.Vector, error) {
	if len(finishCells) == 0 {
		return geometry.Vector{}, ErrNoFinishCells
	}
	return CandidatesWithPenalty(finishCells, myPos, opp1, opp2, penalty)[0].Cell, nil
}

// IsPilotAhead reports whether myPos is strictly closer to goal than both
// opp1 and opp2. When true, the pilot may ignore opponents in collision
// tests for this turn: they are behind and cannot intercept within one
// step under integer kinematics.
func IsPilotAhead(myPos, opp1, opp2, goal geometry.Vector) bool {
	mine := myPos.Sub(goal).Norm()
	return mine < opp1.Sub(goal).Norm() && mine < opp2.Sub(goal).Norm()
}

func score(c, myPos, opp1, opp2 geometry.Vector, penalty float64) float64 {
	s := c.Sub(myPos).Norm()
	if c.Equal(opp1) || c.Equal(opp2) {
		s += penalty
	}
	return s
}

// Package destination picks the finish cell a pilot should aim for on a
// given turn, and decides whether opponents may be ignored in this turn's
// collision tests.
//
// Candidates scores every finish cell by distance plus an occupancy
// penalty and returns them in ranked order; Pick returns the winner.
// IsPilotAhead reports whether the pilot is strictly closer to the chosen
// goal than both opponents, in which case the search may treat opponents
// as absent for this turn.
package destination

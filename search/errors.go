package search

import "errors"

// Sentinel errors for the A* search.
var (
	// ErrNoPath indicates the open set emptied before the goal was reached.
	ErrNoPath = errors.New("search: no path to goal")
	// ErrNoLegalMove indicates the start state has no legal successor at all.
	ErrNoLegalMove = errors.New("search: start state has no legal successor")
)

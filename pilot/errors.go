package pilot

import "errors"

// ErrInvalidObservation is returned by Observation.Validate when the
// record is unusable: a nil circuit, an off-grid pilot position, or
// vMax <= 0.
var ErrInvalidObservation = errors.New("pilot: invalid observation")

// ErrNoLegalMove is returned by Drive when not even the relaxed search
// (opponents ignored) finds a path to the goal, whether the start state
// has no legal successor or every branch runs out of room or fuel.
var ErrNoLegalMove = errors.New("pilot: no legal move")

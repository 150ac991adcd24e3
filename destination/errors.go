package destination

import "errors"

// ErrNoFinishCells is returned by Pick when the circuit has no finish
// cells to choose among.
var ErrNoFinishCells = errors.New("destination: no finish cells")

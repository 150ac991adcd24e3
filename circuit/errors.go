package circuit

import "errors"

// Sentinel errors for circuit construction and loading.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("circuit: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("circuit: all rows must have the same length")
	// ErrUnknownCellChar indicates a character outside the grid encoding table.
	ErrUnknownCellChar = errors.New("circuit: unrecognized cell character")
	// ErrUnreachableFinish indicates a START cell cannot reach any FINISH cell.
	ErrUnreachableFinish = errors.New("circuit: finish line is unreachable from a start cell")
)

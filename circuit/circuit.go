package circuit

import "github.com/circuitpilot/racepilot/geometry"

// Circuit is an immutable terrain grid. cells is indexed [y][x], matching
// the line-oriented encoding (row = y, column = x).
type Circuit struct {
	Width, Height int
	cells         [][]TerrainCell
}

// New constructs a Circuit from a non-empty, rectangular 2D slice of
// TerrainCell indexed [y][x]. It deep-copies the input so later mutation
// of rows cannot invalidate an in-flight search.
//
// Complexity: O(Width*Height) time and memory.
func New(rows [][]TerrainCell) (*Circuit, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]TerrainCell, height)
	for y := range rows {
		cells[y] = make([]TerrainCell, width)
		copy(cells[y], rows[y])
	}
	return &Circuit{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether v lies within the grid boundaries.
func (c *Circuit) InBounds(v geometry.Vector) bool {
	return v.X >= 0 && v.X < c.Width && v.Y >= 0 && v.Y < c.Height
}

// At returns the terrain classification at v. Off-grid cells report Wall,
// matching the host's use of '#' for off-grid.
func (c *Circuit) At(v geometry.Vector) TerrainCell {
	if !c.InBounds(v) {
		return Wall
	}
	return c.cells[v.Y][v.X]
}

// IsWall reports whether v is impassable.
func (c *Circuit) IsWall(v geometry.Vector) bool { return c.At(v) == Wall }

// IsSand reports whether v is a SAND cell.
func (c *Circuit) IsSand(v geometry.Vector) bool { return c.At(v) == Sand }

// IsFinish reports whether v is a FINISH cell.
func (c *Circuit) IsFinish(v geometry.Vector) bool { return c.At(v) == Finish }

// FinishCells returns every FINISH cell in row-major order.
//
// Complexity: O(Width*Height) time, O(k) memory for k finish cells.
func (c *Circuit) FinishCells() []geometry.Vector {
	var out []geometry.Vector
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.cells[y][x] == Finish {
				out = append(out, geometry.Vector{X: x, Y: y})
			}
		}
	}
	return out
}

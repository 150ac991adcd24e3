package geometry

// Rasterize enumerates the integer grid cells touched by the straight
// segment from a to b using an integer DDA walk (Bresenham's line
// algorithm). Wherever Bresenham would step diagonally, the side cell the
// segment passes through is recorded as well, and both side cells when
// the segment crosses the shared corner exactly, so a move cannot slip
// between two cells it touches. Both endpoints are included, and cells
// are returned in order of travel from a to b. Reversing the call
// (Rasterize(b, a)) yields the same cells in reverse order.
//
// Complexity: O(max(|dx|, |dy|)) time and memory.
func Rasterize(a, b Vector) []Vector {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx := signInt(b.X - a.X)
	sy := signInt(b.Y - a.Y)
	err := dx + dy

	steps := maxInt(absInt(dx), absInt(dy))
	cells := make([]Vector, 0, steps+1)

	x, y := a.X, a.Y
	for {
		cells = append(cells, Vector{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy && e2 <= dx {
			// Diagonal step: e2 > dx+dy means the segment leaves through the
			// x boundary first, e2 < dx+dy through the y boundary first, and
			// equality means it passes exactly through the corner.
			if e2 >= dx+dy {
				cells = append(cells, Vector{X: x + sx, Y: y})
			}
			if e2 <= dx+dy {
				cells = append(cells, Vector{X: x, Y: y + sy})
			}
		}
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}

	return cells
}

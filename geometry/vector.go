package geometry

import "math"

// Vector is an integer 2D coordinate or displacement, used throughout
// the pilot for grid positions, velocities, and accelerations.
type Vector struct {
	X, Y int
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Equal reports whether v and w denote the same point.
func (v Vector) Equal(w Vector) bool {
	return v.X == w.X && v.Y == w.Y
}

// Clamp confines each component of v to [-limit, limit].
func (v Vector) Clamp(limit int) Vector {
	return Vector{X: clampComponent(v.X, limit), Y: clampComponent(v.Y, limit)}
}

// MaxAbs returns the larger of |v.X| and |v.Y|.
func (v Vector) MaxAbs() int {
	return maxInt(absInt(v.X), absInt(v.Y))
}

func clampComponent(c, limit int) int {
	switch {
	case c > limit:
		return limit
	case c < -limit:
		return -limit
	default:
		return c
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func signInt(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	v := Vector{X: 2, Y: -3}
	w := Vector{X: 1, Y: 1}

	assert.Equal(t, Vector{X: 3, Y: -2}, v.Add(w))
	assert.Equal(t, Vector{X: 1, Y: -4}, v.Sub(w))
	assert.True(t, v.Equal(Vector{X: 2, Y: -3}))
	assert.False(t, v.Equal(w))
}

func TestVectorNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Vector{X: 3, Y: 4}.Norm(), 1e-9)
	assert.InDelta(t, 0.0, Vector{}.Norm(), 1e-9)
}

func TestVectorClamp(t *testing.T) {
	cases := []struct {
		in    Vector
		limit int
		want  Vector
	}{
		{Vector{X: 5, Y: -5}, 1, Vector{X: 1, Y: -1}},
		{Vector{X: 0, Y: 2}, 1, Vector{X: 0, Y: 1}},
		{Vector{X: -1, Y: 1}, 3, Vector{X: -1, Y: 1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Clamp(tc.limit))
	}
}

func TestVectorMaxAbs(t *testing.T) {
	assert.Equal(t, 4, Vector{X: -4, Y: 2}.MaxAbs())
	assert.Equal(t, 0, Vector{}.MaxAbs())
}

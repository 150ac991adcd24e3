package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitpilot/racepilot/geometry"
)

func TestValidateReachable(t *testing.T) {
	c, err := New([][]TerrainCell{
		{Start, Track, Finish},
	})
	require.NoError(t, err)

	starts := map[int]geometry.Vector{1: {X: 0, Y: 0}}
	assert.NoError(t, c.Validate(starts))
}

func TestValidateUnreachable(t *testing.T) {
	c, err := New([][]TerrainCell{
		{Start, Wall, Finish},
	})
	require.NoError(t, err)

	starts := map[int]geometry.Vector{1: {X: 0, Y: 0}}
	assert.ErrorIs(t, c.Validate(starts), ErrUnreachableFinish)
}

func TestValidateNoFinishIsNotAnError(t *testing.T) {
	c, err := New([][]TerrainCell{
		{Start, Track, Track},
	})
	require.NoError(t, err)

	starts := map[int]geometry.Vector{1: {X: 0, Y: 0}}
	assert.NoError(t, c.Validate(starts))
}

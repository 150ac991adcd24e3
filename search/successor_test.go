package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitpilot/racepilot/circuit"
	"github.com/circuitpilot/racepilot/geometry"
)

func openTrack(t *testing.T, rows ...string) *circuit.Circuit {
	t.Helper()
	c, _, err := circuit.ParseRows(rows)
	require.NoError(t, err)
	return c
}

func TestDefaultGasFormulaMonotonic(t *testing.T) {
	coast := DefaultGasFormula(geometry.Vector{}, geometry.Vector{}, false)
	assert.Zero(t, coast)

	axis := DefaultGasFormula(geometry.Vector{X: 1}, geometry.Vector{X: 1}, false)
	diag := DefaultGasFormula(geometry.Vector{X: 1, Y: 1}, geometry.Vector{X: 1, Y: 1}, false)
	assert.Greater(t, diag, axis, "diagonal acceleration must cost more than axis-aligned")
	assert.Positive(t, axis)

	fast := DefaultGasFormula(geometry.Vector{X: 1}, geometry.Vector{X: 3}, false)
	assert.Greater(t, fast, axis, "higher resulting speed must cost more")

	sandy := DefaultGasFormula(geometry.Vector{X: 1}, geometry.Vector{X: 1}, true)
	assert.Greater(t, sandy, axis, "sand must add a strictly positive surcharge")
}

func TestSuccessorsRejectOutOfBoundsAndWalls(t *testing.T) {
	c := openTrack(t, "1#=", "...")
	e := NewExpander(c, 2)
	start := NewStart(geometry.Vector{X: 0, Y: 0}, geometry.Vector{}, 100)

	succ := e.Successors(start)
	for _, n := range succ {
		assert.True(t, c.InBounds(n.Pos), "must not leave the grid")
		assert.NotEqual(t, geometry.Vector{X: 1, Y: 0}, n.Pos, "must not step onto a wall")
	}
}

func TestSuccessorsRejectSpeedOverVMax(t *testing.T) {
	c := openTrack(t, "1....=")
	e := NewExpander(c, 1)
	start := NewStart(geometry.Vector{X: 1, Y: 0}, geometry.Vector{X: 1, Y: 0}, 100)

	for _, n := range e.Successors(start) {
		assert.LessOrEqual(t, n.Vel.MaxAbs(), 1)
	}
}

func TestSuccessorsInSandRequireZeroAcceleration(t *testing.T) {
	c := openTrack(t, "1~.=")
	e := NewExpander(c, 2)
	start := NewStart(geometry.Vector{X: 1, Y: 0}, geometry.Vector{X: 1, Y: 0}, 100)

	succ := e.Successors(start)
	require.Len(t, succ, 1, "only the inertial move is legal while in sand")
	assert.Equal(t, start.Vel, succ[0].Vel)
}

func TestSuccessorsRejectInsufficientFuel(t *testing.T) {
	c := openTrack(t, "1..=")
	e := NewExpander(c, 2)
	start := NewStart(geometry.Vector{X: 0, Y: 0}, geometry.Vector{}, 0)

	for _, n := range e.Successors(start) {
		assert.Equal(t, geometry.Vector{}, n.Vel, "only the free coast is affordable at zero fuel")
	}
}

func TestSuccessorsRejectOpponentCollision(t *testing.T) {
	c := openTrack(t, "1.=")
	opp := geometry.Vector{X: 1, Y: 0}
	e := NewExpander(c, 2, WithOpponents(opp))
	start := NewStart(geometry.Vector{X: 0, Y: 0}, geometry.Vector{}, 100)

	for _, n := range e.Successors(start) {
		assert.NotEqual(t, opp, n.Pos)
	}
}

func TestWithSandSurchargeOverridesStepCost(t *testing.T) {
	c := openTrack(t, "1~.=")
	start := NewStart(geometry.Vector{X: 1, Y: 0}, geometry.Vector{X: 1, Y: 0}, 100)

	withDefault := NewExpander(c, 2).Successors(start)
	withZero := NewExpander(c, 2, WithSandSurcharge(0)).Successors(start)

	require.Len(t, withDefault, 1)
	require.Len(t, withZero, 1)
	assert.Less(t, withZero[0].G, withDefault[0].G, "zeroing the surcharge must lower the step cost")
}

func TestSuccessorsFuelNonIncreasing(t *testing.T) {
	c := openTrack(t, "1...=")
	e := NewExpander(c, 2)
	start := NewStart(geometry.Vector{X: 0, Y: 0}, geometry.Vector{}, 100)

	for _, n := range e.Successors(start) {
		assert.LessOrEqual(t, n.Fuel, start.Fuel)
	}
}

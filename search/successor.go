package search

import (
	"github.com/circuitpilot/racepilot/circuit"
	"github.com/circuitpilot/racepilot/geometry"
)

// SandSurcharge is added to step_cost whenever the predecessor cell is
// sand. It is strictly greater than 1 so a sand detour always scores
// worse than an equal-length dry alternative.
const SandSurcharge = 1.5

// SandPenalty is DefaultGasFormula's fixed fuel surcharge for moving out
// of a sand cell.
const SandPenalty = 3

// accelerations enumerates the nine legal acceleration vectors.
var accelerations = [9]geometry.Vector{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// GasFormula computes the fuel burned by one acceleration. It must be
// monotonic in |accel| and in ‖newVel‖, non-negative, and strictly
// positive whenever accel != (0,0). The exact integer formula is a
// tuning choice; see package config for a way to override it.
type GasFormula func(accel, newVel geometry.Vector, inSand bool) int

// DefaultGasFormula mirrors the original source's gasConsumption: a base
// cost of |a.x| + |a.y| (0 coast, 1 axis-aligned, 2 diagonal), plus a
// kinetic surcharge of ‖v'‖², plus SandPenalty while in sand.
func DefaultGasFormula(accel, newVel geometry.Vector, inSand bool) int {
	cost := absInt(accel.X) + absInt(accel.Y)
	cost += newVel.X*newVel.X + newVel.Y*newVel.Y
	if inSand {
		cost += SandPenalty
	}
	return cost
}

// Expander enumerates the legal successors of a State under the
// movement, collision, fuel, and speed rules. Opponents is empty when
// opponents are to be ignored for collision purposes — either because
// the pilot is far enough ahead to disregard them, or because the turn
// driver is retrying with the relaxed successor rule.
type Expander struct {
	Circuit       *circuit.Circuit
	Opponents     []geometry.Vector
	VMax          int
	GasFormula    GasFormula
	SandSurcharge float64
	Goal          geometry.Vector
}

// ExpanderOption configures an Expander built by NewExpander.
type ExpanderOption func(*Expander)

// WithOpponents sets the opponent positions treated as impassable
// obstacles during collision tests.
func WithOpponents(opponents ...geometry.Vector) ExpanderOption {
	return func(e *Expander) { e.Opponents = opponents }
}

// WithGasFormula overrides the fuel model, a tuning choice deliberately
// left pluggable rather than hardcoded.
func WithGasFormula(f GasFormula) ExpanderOption {
	return func(e *Expander) { e.GasFormula = f }
}

// WithSandSurcharge overrides the step-cost penalty added when leaving a
// sand cell, in place of the package default SandSurcharge.
func WithSandSurcharge(surcharge float64) ExpanderOption {
	return func(e *Expander) { e.SandSurcharge = surcharge }
}

// NewExpander returns an Expander for circuit c with the given speed cap,
// defaulting to DefaultGasFormula, SandSurcharge, and no opponents until
// overridden by opts.
func NewExpander(c *circuit.Circuit, vMax int, opts ...ExpanderOption) *Expander {
	e := &Expander{Circuit: c, VMax: vMax, GasFormula: DefaultGasFormula, SandSurcharge: SandSurcharge}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Successors enumerates the legal successors of s toward e.Goal.
func (e *Expander) Successors(s *State) []*State {
	out := make([]*State, 0, len(accelerations))
	inSand := e.Circuit.IsSand(s.Pos)

	for _, a := range accelerations {
		if inSand && (a.X != 0 || a.Y != 0) {
			continue // movement under sand is inertial only
		}

		vPrime := s.Vel.Add(a)
		if absInt(vPrime.X) > e.VMax || absInt(vPrime.Y) > e.VMax {
			continue
		}

		pPrime := s.Pos.Add(vPrime)
		if !e.Circuit.InBounds(pPrime) {
			continue
		}
		if circuit.Collision(e.Circuit, s.Pos, pPrime, e.Opponents...) {
			continue
		}

		burn := e.GasFormula(a, vPrime, inSand)
		if s.Fuel-burn < 0 {
			continue
		}

		stepCost := pPrime.Sub(s.Pos).Norm()
		if inSand {
			stepCost += e.SandSurcharge
		}

		out = append(out, &State{
			Pos:    pPrime,
			Vel:    vPrime,
			Fuel:   s.Fuel - burn,
			G:      s.G + stepCost,
			H:      Heuristic(pPrime, e.Goal),
			Parent: s,
		})
	}

	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

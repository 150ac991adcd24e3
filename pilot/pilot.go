package pilot

import (
	"fmt"

	"github.com/circuitpilot/racepilot/circuit"
	"github.com/circuitpilot/racepilot/destination"
	"github.com/circuitpilot/racepilot/geometry"
	"github.com/circuitpilot/racepilot/search"
)

// Observation is the parsed per-turn input: a circuit, the pilot's own
// position/velocity/fuel, the two opponents' positions, and the speed
// cap for this race.
type Observation struct {
	Circuit *circuit.Circuit
	MyPos   geometry.Vector
	MySpeed geometry.Vector
	Fuel    int
	Opp1    geometry.Vector
	Opp2    geometry.Vector
	VMax    int
}

// Validate rejects a nil circuit, an out-of-bounds pilot position, or a
// non-positive speed cap before any search runs.
func (o Observation) Validate() error {
	if o.Circuit == nil {
		return fmt.Errorf("%w: nil circuit", ErrInvalidObservation)
	}
	if !o.Circuit.InBounds(o.MyPos) {
		return fmt.Errorf("%w: pilot position %v out of bounds", ErrInvalidObservation, o.MyPos)
	}
	if o.VMax <= 0 {
		return fmt.Errorf("%w: vMax must be positive, got %d", ErrInvalidObservation, o.VMax)
	}
	return nil
}

// Acceleration is the per-turn output: each component in {-1,0,1}.
type Acceleration struct {
	X, Y int
}

// Zero is the sentinel "do nothing" acceleration emitted on any
// unrecoverable failure.
var Zero Acceleration

type settings struct {
	gasFormula      search.GasFormula
	sandSurcharge   float64
	occupiedPenalty float64
}

// Option configures Drive's search behavior.
type Option func(*settings)

// WithGasFormula overrides the fuel-consumption model used by the
// search, matching search.WithGasFormula.
func WithGasFormula(f search.GasFormula) Option {
	return func(s *settings) { s.gasFormula = f }
}

// WithSandSurcharge overrides the step-cost penalty for leaving a sand
// cell, matching search.WithSandSurcharge.
func WithSandSurcharge(surcharge float64) Option {
	return func(s *settings) { s.sandSurcharge = surcharge }
}

// WithOccupiedPenalty overrides the destination-picker's occupied-cell
// score penalty, matching config.Tuning.OccupiedScore.
func WithOccupiedPenalty(p float64) Option {
	return func(s *settings) { s.occupiedPenalty = p }
}

// Drive runs one turn: pick a destination, search for a path, retry with
// opponents relaxed on failure, and reduce the path to a single
// acceleration. It never panics on a valid Observation; an invalid one
// is rejected by Validate before any search runs.
func Drive(obs Observation, opts ...Option) (Acceleration, error) {
	if err := obs.Validate(); err != nil {
		return Zero, err
	}

	cfg := &settings{
		gasFormula:      search.DefaultGasFormula,
		sandSurcharge:   search.SandSurcharge,
		occupiedPenalty: destination.OccupiedPenalty,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	finishes := obs.Circuit.FinishCells()
	goal, err := destination.PickWithPenalty(finishes, obs.MyPos, obs.Opp1, obs.Opp2, cfg.occupiedPenalty)
	if err != nil {
		return Zero, fmt.Errorf("pilot: %w", err)
	}

	start := search.NewStart(obs.MyPos, obs.MySpeed, obs.Fuel)

	ahead := destination.IsPilotAhead(obs.MyPos, obs.Opp1, obs.Opp2, goal)
	path, err := search.Search(start, goal, newExpander(obs, cfg, !ahead))
	if err != nil {
		// Opponents often box in the only legal successor; one more
		// attempt with them relaxed is worth it before giving up.
		path, err = search.Search(start, goal, newExpander(obs, cfg, false))
		if err != nil {
			return Zero, ErrNoLegalMove
		}
	}

	accel := accelerationFromPath(path)
	if wouldCollide(obs, accel) {
		return Zero, nil
	}
	return accel, nil
}

func newExpander(obs Observation, cfg *settings, withOpponents bool) *search.Expander {
	opts := []search.ExpanderOption{
		search.WithGasFormula(cfg.gasFormula),
		search.WithSandSurcharge(cfg.sandSurcharge),
	}
	if withOpponents {
		opts = append(opts, search.WithOpponents(obs.Opp1, obs.Opp2))
	}
	return search.NewExpander(obs.Circuit, obs.VMax, opts...)
}

// accelerationFromPath reduces a path to the first step's velocity delta,
// clamped defensively to {-1,0,1} per axis. A length-1 path (start
// already at goal) emits Zero.
func accelerationFromPath(path search.Path) Acceleration {
	if len(path) < 2 {
		return Zero
	}
	delta := path[1].Vel.Sub(path[0].Vel)
	return Acceleration{X: clampAxis(delta.X), Y: clampAxis(delta.Y)}
}

// wouldCollide re-checks the emitted move against the observed opponent
// positions, independent of whatever relaxation the search used to find
// it — the search's own opponent state may be stale by the time the
// move is about to be emitted.
func wouldCollide(obs Observation, a Acceleration) bool {
	if a == Zero {
		return false
	}
	newVel := obs.MySpeed.Add(geometry.Vector{X: a.X, Y: a.Y})
	newPos := obs.MyPos.Add(newVel)
	return circuit.Collision(obs.Circuit, obs.MyPos, newPos, obs.Opp1, obs.Opp2)
}

func clampAxis(n int) int {
	switch {
	case n < -1:
		return -1
	case n > 1:
		return 1
	default:
		return n
	}
}

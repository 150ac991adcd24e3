package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/circuitpilot/racepilot/geometry"
	"github.com/circuitpilot/racepilot/search"
)

// Tuning holds the constants left open for tuning per circuit.
//
// SandFuelPenalty    – added to gas() while moving out of a SAND cell.
// SandStepSurcharge  – added to step_cost while moving out of a SAND cell.
// OccupiedScore      – destination-picker penalty for a finish cell an
//
//	opponent currently occupies.
type Tuning struct {
	SandFuelPenalty   int     `mapstructure:"sand_fuel_penalty"`
	SandStepSurcharge float64 `mapstructure:"sand_step_surcharge"`
	OccupiedScore     float64 `mapstructure:"occupied_score"`
}

// DefaultTuning returns the constants the search and destination packages
// use when no config file overrides them.
func DefaultTuning() Tuning {
	return Tuning{
		SandFuelPenalty:   search.SandPenalty,
		SandStepSurcharge: search.SandSurcharge,
		OccupiedScore:     1_000_000.0,
	}
}

// Load reads Tuning from path via viper, accepting YAML, JSON, or TOML by
// extension. A missing file is not an error: Load returns DefaultTuning()
// unchanged, matching the permissive style of a host that ships with
// sensible built-in constants and only needs a config file to override
// them for a particular circuit.
func Load(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tuning, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Tuning{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := v.Unmarshal(&tuning); err != nil {
		return Tuning{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return tuning, nil
}

// GasFormula returns a search.GasFormula closure over t's fuel constants,
// mirroring search.DefaultGasFormula but with the sand penalty tuned.
func (t Tuning) GasFormula() search.GasFormula {
	return func(accel, newVel geometry.Vector, inSand bool) int {
		cost := absInt(accel.X) + absInt(accel.Y)
		cost += newVel.X*newVel.X + newVel.Y*newVel.Y
		if inSand {
			cost += t.SandFuelPenalty
		}
		return cost
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

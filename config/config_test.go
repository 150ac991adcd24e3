package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitpilot/racepilot/geometry"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tuning, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	tuning, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadYAMLOverridesConstants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	contents := "sand_fuel_penalty: 9\nsand_step_surcharge: 2.5\noccupied_score: 42\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	tuning, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, tuning.SandFuelPenalty)
	assert.Equal(t, 2.5, tuning.SandStepSurcharge)
	assert.Equal(t, 42.0, tuning.OccupiedScore)
}

func TestGasFormulaUsesTunedSandPenalty(t *testing.T) {
	tuning := Tuning{SandFuelPenalty: 7}
	formula := tuning.GasFormula()

	dry := formula(geometry.Vector{X: 1}, geometry.Vector{X: 1}, false)
	sandy := formula(geometry.Vector{X: 1}, geometry.Vector{X: 1}, true)
	assert.Equal(t, dry+7, sandy)
}

// Package config loads the tunable constants that shape a pilot's
// decisions: the sand fuel surcharge, the sand step-cost surcharge, and
// the occupied-finish scoring penalty.
//
// Tuning values come from an optional YAML/JSON/TOML file read through
// github.com/spf13/viper. A missing file is not an error: Load returns
// DefaultTuning unchanged.
package config

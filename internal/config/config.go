// Package config provides YAML-based game configuration loading and
// difficulty presets for the puzzle platform.
package config

// FifteenConfig contains all configuration for the sliding puzzle.
type FifteenConfig struct {
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Solver  SolverConfig  `yaml:"solver"`
}

// ShuffleConfig controls how boards are scrambled.
type ShuffleConfig struct {
	// Scale multiplies every level's shuffle depth. Difficulty presets
	// override it.
	Scale float64 `yaml:"scale"`
	// MinMoves is the floor on the shuffle depth after scaling.
	MinMoves int `yaml:"min_moves"`
}

// SolverConfig bounds the breadth-first solver used for hints and auto-solve.
type SolverConfig struct {
	// MaxStates caps the number of distinct states the solver may visit
	// (0 = unlimited). Keeps hint latency bounded on large grids.
	MaxStates int `yaml:"max_states"`
	// HintSeconds is how long a hint highlight stays on screen.
	HintSeconds int `yaml:"hint_seconds"`
	// AutoMoveTicks is the tick interval between auto-solve moves.
	AutoMoveTicks int `yaml:"auto_move_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ShuffleScaleForPreset returns the shuffle depth multiplier for a preset.
// Fixed keeps whatever the config file says.
func ShuffleScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyNormal:
		return 1.0
	case DifficultyHard:
		return 1.6
	default:
		return 1.0
	}
}

// ApplyFifteenPreset modifies the config based on a difficulty preset.
func ApplyFifteenPreset(cfg *FifteenConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Shuffle.Scale = ShuffleScaleForPreset(preset)
}

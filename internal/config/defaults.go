package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

// DefaultFifteenConfig returns the default puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Shuffle: ShuffleConfig{
			Scale:    1.0,
			MinMoves: 4,
		},
		Solver: SolverConfig{
			MaxStates:     500000,
			HintSeconds:   3,
			AutoMoveTicks: 12,
		},
	}
}

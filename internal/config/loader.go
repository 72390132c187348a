package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFifteen loads the puzzle configuration.
// Search order: customPath -> ~/.fifteen/configs/fifteen.yaml -> ./configs/fifteen.yaml -> embedded default
func LoadFifteen(customPath string) (FifteenConfig, error) {
	var cfg FifteenConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		fillFifteenDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fifteen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				fillFifteenDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fifteen.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			fillFifteenDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFifteenYAML, &cfg); err != nil {
		return DefaultFifteenConfig(), nil // Fallback to hardcoded if embed fails
	}
	fillFifteenDefaults(&cfg)
	return cfg, nil
}

// fillFifteenDefaults patches zero values a partial config file left out.
func fillFifteenDefaults(cfg *FifteenConfig) {
	def := DefaultFifteenConfig()
	if cfg.Shuffle.Scale <= 0 {
		cfg.Shuffle.Scale = def.Shuffle.Scale
	}
	if cfg.Shuffle.MinMoves <= 0 {
		cfg.Shuffle.MinMoves = def.Shuffle.MinMoves
	}
	if cfg.Solver.MaxStates < 0 {
		cfg.Solver.MaxStates = def.Solver.MaxStates
	}
	if cfg.Solver.HintSeconds <= 0 {
		cfg.Solver.HintSeconds = def.Solver.HintSeconds
	}
	if cfg.Solver.AutoMoveTicks <= 0 {
		cfg.Solver.AutoMoveTicks = def.Solver.AutoMoveTicks
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fifteen", "configs", filename)
}

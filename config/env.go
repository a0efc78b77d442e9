package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnv overrides selected settings from GATHERER_* variables
// Unlike the audio variables, malformed values here are errors
func applyEnv(cfg *Config) error {
	if v := os.Getenv("GATHERER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GATHERER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GATHERER_SEED: %w", err)
		}
		cfg.World.Seed = seed
	}
	if v := os.Getenv("GATHERER_TREE_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GATHERER_TREE_COUNT: %w", err)
		}
		cfg.World.TreeCount = n
	}
	if v := os.Getenv("GATHERER_REMOVE_DEPLETED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GATHERER_REMOVE_DEPLETED: %w", err)
		}
		cfg.World.RemoveDepleted = b
	}
	if v := os.Getenv("GATHERER_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GATHERER_FPS: %w", err)
		}
		cfg.Display.FPS = n
	}
	return nil
}

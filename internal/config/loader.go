package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON file over Default(). Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Player.MaxHP <= 0:
		return fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP)
	case c.Player.XPGrowth < 1:
		return fmt.Errorf("player.xp_growth must be >= 1, got %v", c.Player.XPGrowth)
	case c.Spawn.BaseInterval <= 0 || c.Spawn.MinInterval <= 0:
		return fmt.Errorf("spawn intervals must be positive")
	case c.Spawn.MinBatch < 1 || c.Spawn.MaxBatch < c.Spawn.MinBatch:
		return fmt.Errorf("spawn batch bounds invalid: [%d, %d]", c.Spawn.MinBatch, c.Spawn.MaxBatch)
	case c.Spawn.MaxAttempts < 1:
		return fmt.Errorf("spawn.max_attempts must be >= 1")
	case c.Pools.MaxEnemies < 1 || c.Pools.MaxProjectiles < 1 || c.Pools.MaxOrbs < 1:
		return fmt.Errorf("pool sizes must be >= 1")
	}
	return nil
}

// Package config loads difficulty and search-tuning profiles from TOML.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Difficulty selects one of the three engine modes.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// SearchProfile tunes the Hard engine's throughput/strength trade-off, named
// after the source project's "fast" and "balanced" presets. Engine applies
// only MaxMovesPerDepth to the Hard search; AspirationWindow is not read by
// the search, which always uses a half-width of 50.
type SearchProfile struct {
	Name             string `toml:"name"`
	MaxMovesPerDepth int    `toml:"max_moves_per_depth"`
	AspirationWindow int    `toml:"aspiration_window"`
}

// FastProfile favors throughput: fewer candidate moves per node, a narrower
// aspiration window.
var FastProfile = SearchProfile{Name: "fast", MaxMovesPerDepth: 16, AspirationWindow: 40}

// BalancedProfile favors strength over raw speed.
var BalancedProfile = SearchProfile{Name: "balanced", MaxMovesPerDepth: 20, AspirationWindow: 50}

// DifficultyBudget is the wall-clock and depth budget for one difficulty
// level.
type DifficultyBudget struct {
	Difficulty  Difficulty    `toml:"difficulty"`
	MaxDepth    int           `toml:"max_depth"`
	TimeLimit   time.Duration `toml:"-"`
	TimeLimitMS int           `toml:"time_limit_ms"`
}

// Config is the top-level TOML document: difficulty budgets plus the
// selected search profile for Hard.
type Config struct {
	Profile      string             `toml:"profile"`
	Difficulties []DifficultyBudget `toml:"difficulty"`
}

// Default returns the built-in configuration matching the
// reference difficulty table, used when no config file is supplied.
func Default() *Config {
	return &Config{
		Profile: "balanced",
		Difficulties: []DifficultyBudget{
			{Difficulty: Easy, MaxDepth: 1, TimeLimit: 50 * time.Millisecond},
			{Difficulty: Medium, MaxDepth: 2, TimeLimit: 200 * time.Millisecond},
			{Difficulty: Hard, MaxDepth: 5, TimeLimit: 3 * time.Second},
		},
	}
}

// Load parses a TOML configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	for i := range cfg.Difficulties {
		if ms := cfg.Difficulties[i].TimeLimitMS; ms > 0 {
			cfg.Difficulties[i].TimeLimit = time.Duration(ms) * time.Millisecond
		}
	}
	return &cfg, nil
}

// Budget returns the budget configured for d, falling back to the built-in
// default if d is not present in the config.
func (c *Config) Budget(d Difficulty) DifficultyBudget {
	for _, b := range c.Difficulties {
		if b.Difficulty == d {
			return b
		}
	}
	for _, b := range Default().Difficulties {
		if b.Difficulty == d {
			return b
		}
	}
	return DifficultyBudget{Difficulty: d, MaxDepth: 1, TimeLimit: 50 * time.Millisecond}
}

// SearchProfileByName returns the named search profile, or BalancedProfile
// if name is unrecognized.
func SearchProfileByName(name string) SearchProfile {
	switch name {
	case "fast":
		return FastProfile
	case "balanced":
		return BalancedProfile
	default:
		return BalancedProfile
	}
}

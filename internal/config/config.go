// Package config loads the small YAML configuration that overrides the
// compiled-in cost-model and search-timeout defaults of spec.md §4.2-§4.3.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"shrdlite/internal/planner"
)

// Config holds every value spec.md §7 names as configurable.
type Config struct {
	Costs   CostsConfig   `yaml:"costs"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// CostsConfig overrides the cost-model constants of spec.md §4.2.
type CostsConfig struct {
	Move       float64 `yaml:"move_cost"`
	Carry      float64 `yaml:"carry_cost"`
	CarryLarge float64 `yaml:"carry_large_cost"`
	MaxPickup  float64 `yaml:"max_pickup_cost"`
}

// SearchConfig overrides the A* timeout of spec.md §4.3.
type SearchConfig struct {
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
}

// LoggingConfig selects the structured logger's verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration that reproduces spec.md's compiled-in
// defaults exactly, with no config file present.
func Default() *Config {
	dc := planner.DefaultCostModel()
	return &Config{
		Costs: CostsConfig{
			Move:       dc.Move,
			Carry:      dc.Carry,
			CarryLarge: dc.CarryLarge,
			MaxPickup:  dc.MaxPickup,
		},
		Search:  SearchConfig{TimeoutSeconds: 60},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path as YAML over top of Default. A missing path is not an
// error: the caller simply gets the defaults, matching the teacher corpus's
// "config file is optional" convention.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// CostModel converts the loaded costs into the planner's CostModel type.
func (c *Config) CostModel() planner.CostModel {
	return planner.CostModel{
		Move:       c.Costs.Move,
		Carry:      c.Costs.Carry,
		CarryLarge: c.Costs.CarryLarge,
		MaxPickup:  c.Costs.MaxPickup,
	}
}

// Timeout converts the loaded search timeout into a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Search.TimeoutSeconds * float64(time.Second))
}

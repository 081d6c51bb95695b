package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Planner holds all tunables for the motion planner.
type Planner struct {
	// Grid dimensions in cells.
	GridWidth  int32 `yaml:"grid_width"`
	GridHeight int32 `yaml:"grid_height"`

	// Agent body extents in cells (full width and height).
	AgentWidth  float64 `yaml:"agent_width"`
	AgentHeight float64 `yaml:"agent_height"`

	// Heading discretization and per-step turn limit.
	MaxIncrements int32 `yaml:"max_increments"`
	Arc           int32 `yaml:"arc"`

	// Flat penalty factor on reverse moves.
	ReverseMultiplier uint32 `yaml:"reverse_multiplier"`

	LogLevel string `yaml:"log_level"`
}

// DefaultPlanner returns Planner config with sensible defaults.
func DefaultPlanner() Planner {
	return Planner{
		GridWidth:         32,
		GridHeight:        18,
		AgentWidth:        1.5,
		AgentHeight:       0.5,
		MaxIncrements:     8,
		Arc:               1,
		ReverseMultiplier: 5,
		LogLevel:          "info",
	}
}

// LoadPlanner loads planner config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadPlanner(path string) (Planner, error) {
	cfg := DefaultPlanner()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations the planner cannot run with.
func (c Planner) Validate() error {
	if c.GridWidth < 1 || c.GridHeight < 1 {
		return fmt.Errorf("grid dimensions %dx%d must be positive", c.GridWidth, c.GridHeight)
	}
	if c.AgentWidth <= 0 || c.AgentHeight <= 0 {
		return fmt.Errorf("agent extents %gx%g must be positive", c.AgentWidth, c.AgentHeight)
	}
	if c.MaxIncrements < 4 {
		return fmt.Errorf("max_increments %d must be at least 4", c.MaxIncrements)
	}
	if c.Arc < 1 || 2*c.Arc >= c.MaxIncrements {
		return fmt.Errorf("arc %d out of range for %d increments", c.Arc, c.MaxIncrements)
	}
	return nil
}

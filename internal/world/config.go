package world

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Params holds tunable knobs for generation and ticking.
type Params struct {
	// TickDelta is the simulation time advanced by one Step, in the same
	// units as the tree regrowth delay.
	TickDelta float64 `yaml:"tick_delta"`
	// TickSample is how many randomly drawn cells each Step updates.
	TickSample int `yaml:"tick_sample"`

	GrassPatchCount     int     `yaml:"grass_patch_count"`
	GrassPatchRadiusMin int     `yaml:"grass_patch_radius_min"`
	GrassPatchRadiusMax int     `yaml:"grass_patch_radius_max"`
	GrassPatchDensity   float64 `yaml:"grass_patch_density"`
}

// Config controls world dimensions and generation seed.
type Config struct {
	// Size is the edge length of the square grid.
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 200,
		Seed: 1337,
		Params: Params{
			TickDelta:           16,
			TickSample:          10,
			GrassPatchCount:     12,
			GrassPatchRadiusMin: 2,
			GrassPatchRadiusMax: 5,
			GrassPatchDensity:   0.6,
		},
	}
}

// Validate reports configuration errors before any generation state exists.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("world: grid size must be positive, got %d", c.Size)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tick_delta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TickDelta = parsed
		}
	}
	if v, ok := cfg["tick_sample"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TickSample = parsed
		}
	}
	if v, ok := cfg["grass_patch_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GrassPatchCount = parsed
		}
	}
	if v, ok := cfg["grass_patch_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GrassPatchRadiusMin = parsed
		}
	}
	if v, ok := cfg["grass_patch_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GrassPatchRadiusMax = parsed
		}
	}
	if c.Params.GrassPatchRadiusMax < c.Params.GrassPatchRadiusMin {
		c.Params.GrassPatchRadiusMax = c.Params.GrassPatchRadiusMin
	}
	if v, ok := cfg["grass_patch_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrassPatchDensity = parsed
		}
	}
	return c
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("world: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("world: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// config holds the demo tunables. Values come from the embedded defaults,
// optionally overridden by a YAML file and then by command-line flags.
type config struct {
	Window windowConfig `yaml:"window"`
	Map    mapConfig    `yaml:"map"`
	Fov    fovConfig    `yaml:"fov"`
}

// windowConfig holds display settings. The map is Size x Size cells, drawn
// one cell per logical pixel and scaled up by Scale.
type windowConfig struct {
	Size  int    `yaml:"size"`
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}

// mapConfig holds the procedural map parameters. Seed 0 derives a seed from
// the clock.
type mapConfig struct {
	Blocks                int   `yaml:"blocks"`
	WallSegments          int   `yaml:"wall_segments"`
	WallMinLen            int   `yaml:"wall_min_len"`
	WallMaxLen            int   `yaml:"wall_max_len"`
	WallThicknessVariance int   `yaml:"wall_thickness_variance"`
	Seed                  int64 `yaml:"seed"`
}

// fovConfig holds the field-of-vision parameters: the engine radius, the
// distance beyond which cells are dark regardless of flux, and the ray flux
// required for a cell to count as visible.
type fovConfig struct {
	Radius           int     `yaml:"radius"`
	MaxRange         int     `yaml:"max_range"`
	VisibleThreshold float64 `yaml:"visible_threshold"`
}

// loadConfig parses the embedded defaults and, when path is non-empty, lays
// the file at path over them.
func loadConfig(path string) (*config, error) {
	cfg := &config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Window.Size < 3 {
		return fmt.Errorf("window size %d too small", c.Window.Size)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale %d must be positive", c.Window.Scale)
	}
	if c.Fov.Radius < 1 {
		return fmt.Errorf("fov radius %d must be positive", c.Fov.Radius)
	}
	if c.Fov.MaxRange < 1 || c.Fov.MaxRange > c.Fov.Radius {
		return fmt.Errorf("fov max_range %d must lie in [1, radius]", c.Fov.MaxRange)
	}
	if c.Fov.VisibleThreshold <= 0 || c.Fov.VisibleThreshold >= 1 {
		return fmt.Errorf("fov visible_threshold %g must lie in (0, 1)", c.Fov.VisibleThreshold)
	}
	if c.Map.Blocks < 0 {
		return fmt.Errorf("map blocks %d must not be negative", c.Map.Blocks)
	}
	if c.Map.WallMaxLen < c.Map.WallMinLen {
		return fmt.Errorf("map wall_max_len %d below wall_min_len %d", c.Map.WallMaxLen, c.Map.WallMinLen)
	}
	return nil
}

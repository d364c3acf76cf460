package terrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of the generation parameters. Fields left out
// of the file keep their defaults.
type Config struct {
	Seed          int64   `yaml:"seed"`
	Octaves       int     `yaml:"octaves"`
	Frequency     float64 `yaml:"frequency"`
	Scale         float64 `yaml:"scale"`
	Offset        float64 `yaml:"offset"`
	TerrainHeight float64 `yaml:"terrain_height"`
}

// LoadConfig reads a yaml terrain config. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Params, error) {
	params := DefaultParams()
	if path == "" {
		return params, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return params, err
	}

	cfg := Config{
		Seed:          params.Seed,
		Octaves:       params.Octaves,
		Frequency:     params.Frequency,
		Scale:         params.Scale,
		Offset:        params.Offset,
		TerrainHeight: params.TerrainHeight,
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return params, fmt.Errorf("terrain config %s: %w", path, err)
	}

	params = Params{
		Seed:          cfg.Seed,
		Octaves:       cfg.Octaves,
		Frequency:     cfg.Frequency,
		Scale:         cfg.Scale,
		Offset:        cfg.Offset,
		TerrainHeight: cfg.TerrainHeight,
	}
	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("terrain config %s: %w", path, err)
	}
	return params, nil
}

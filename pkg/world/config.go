package world

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig is the in-process, YAML-loadable configuration for a World:
// the seed, vertical shape, cell resolution, and feature toggles the router
// and chunk generator need.
type WorldConfig struct {
	Seed                     int64 `yaml:"seed"`
	MinY                     int   `yaml:"min_y"`
	Height                   int   `yaml:"height"`
	HorizontalCellBlockCount int   `yaml:"horizontal_cell_block_count"`
	VerticalCellBlockCount   int   `yaml:"vertical_cell_block_count"`
	SeaLevel                 int   `yaml:"sea_level"`
	DeepLevel                int   `yaml:"deep_level"`
	Legacy                   bool  `yaml:"legacy_rng"`
	Aquifers                 bool  `yaml:"aquifers"`
	OreVeins                 bool  `yaml:"ore_veins"`
	Variant                  string `yaml:"variant"`
}

// DefaultWorldConfig matches the overworld shape used throughout the test
// suite and cmd/worldgen's demo.
func DefaultWorldConfig(seed int64) WorldConfig {
	return WorldConfig{
		Seed:                     seed,
		MinY:                     -64,
		Height:                   384,
		HorizontalCellBlockCount: 4,
		VerticalCellBlockCount:   8,
		SeaLevel:                 63,
		DeepLevel:                -54,
		Legacy:                   false,
		Aquifers:                 true,
		OreVeins:                 true,
		Variant:                  "overworld",
	}
}

// LoadWorldConfig reads a WorldConfig from a YAML file on disk.
func LoadWorldConfig(path string) (WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldConfig{}, NewError(InvalidInput, "reading world config %q: %v", path, err)
	}
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, NewError(InvalidInput, "parsing world config %q: %v", path, err)
	}
	if cfg.HorizontalCellBlockCount != 4 && cfg.HorizontalCellBlockCount != 8 {
		return WorldConfig{}, NewError(InvalidInput, "horizontal_cell_block_count must be 4 or 8, got %d", cfg.HorizontalCellBlockCount)
	}
	if cfg.VerticalCellBlockCount != 4 && cfg.VerticalCellBlockCount != 8 {
		return WorldConfig{}, NewError(InvalidInput, "vertical_cell_block_count must be 4 or 8, got %d", cfg.VerticalCellBlockCount)
	}
	return cfg, nil
}

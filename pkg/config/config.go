// Package config loads and validates the run configuration for the
// visualization pipeline.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/neuroviz-io/neuroviz/pkg/graph"
	"github.com/neuroviz-io/neuroviz/pkg/scene"
	"github.com/neuroviz-io/neuroviz/pkg/simio"
)

var validate = validator.New()

// Config is the run configuration. Every knob that used to be ambient state
// in the legacy scripts (simulation variant above all) is an explicit value
// here and is threaded into parser and path-builder calls.
type Config struct {
	DataDir   string `yaml:"data_dir" validate:"required"`
	Variant   string `yaml:"variant" validate:"required,oneof=no-network disable stimulus calcium"`
	Rank      int    `yaml:"rank" validate:"min=0"`
	Step      int    `yaml:"step" validate:"min=0"`
	Direction string `yaml:"direction" validate:"required,oneof=in out"`

	Mapping string `yaml:"mapping" validate:"oneof=none area calcium"`
	Strict  bool   `yaml:"strict"`

	Glyph string `yaml:"glyph" validate:"oneof=vertex sphere"`
	Edges string `yaml:"edges" validate:"oneof=lines tubes"`

	ListenAddr string `yaml:"listen_addr"`
}

// Default returns the configuration matching the legacy viewer's defaults.
func Default() Config {
	return Config{
		DataDir:    "data",
		Variant:    string(simio.VariantNoNetwork),
		Rank:       0,
		Step:       1000000,
		Direction:  string(simio.DirectionOut),
		Mapping:    graph.MappingArea.String(),
		Strict:     false,
		Glyph:      string(scene.GlyphVertex),
		Edges:      string(scene.EdgeTubes),
		ListenAddr: ":8080",
	}
}

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Layout returns the data layout the configuration selects.
func (c Config) Layout() simio.Layout {
	return simio.Layout{
		DataDir: c.DataDir,
		Variant: simio.Variant(c.Variant),
		Rank:    c.Rank,
	}
}

// NetworkDirection returns the configured connection-file direction.
func (c Config) NetworkDirection() simio.Direction {
	return simio.Direction(c.Direction)
}

// MappingMode returns the configured scalar mapping mode.
func (c Config) MappingMode() (graph.MappingMode, error) {
	return graph.ParseMappingMode(c.Mapping)
}

// RenderOptions returns the presentation options the configuration selects.
func (c Config) RenderOptions() scene.RenderOptions {
	opts := scene.DefaultRenderOptions()
	opts.Glyph = scene.GlyphStyle(c.Glyph)
	opts.Edges = scene.EdgeStyle(c.Edges)
	return opts
}

// Package config loads the settings of the example search service from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen string       `yaml:"listen"`
	Log    LogConfig    `yaml:"log"`
	Engine EngineConfig `yaml:"engine"`
	Grid   GridConfig   `yaml:"grid"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type EngineConfig struct {
	MaxOpenNodes int    `yaml:"max_open_nodes"`
	Heuristic    string `yaml:"heuristic"` // manhattan or octile
	Corners      string `yaml:"corners"`   // strict or legacy
	Smooth       bool   `yaml:"smooth"`
	Workers      int    `yaml:"workers"`
}

// GridConfig drives the random obstacle generator.
type GridConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Clusters int     `yaml:"clusters"`
	Steps    int     `yaml:"steps"`
	Density  float64 `yaml:"density"`
	Seed     int64   `yaml:"seed"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Listen: ":8080",
		Log:    LogConfig{Level: "info", Format: "text"},
		Engine: EngineConfig{
			Heuristic: "manhattan",
			Corners:   "strict",
			Workers:   4,
		},
		Grid: GridConfig{
			Width:    40,
			Height:   24,
			Clusters: 8,
			Steps:    200,
			Density:  0.25,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.Density < 0 || c.Grid.Density > 1 {
		errs = append(errs, fmt.Errorf("grid density %v outside [0,1]", c.Grid.Density))
	}
	if c.Engine.MaxOpenNodes < 0 {
		errs = append(errs, fmt.Errorf("engine max_open_nodes %d is negative", c.Engine.MaxOpenNodes))
	}
	switch c.Engine.Heuristic {
	case "manhattan", "octile":
	default:
		errs = append(errs, fmt.Errorf("unknown heuristic %q", c.Engine.Heuristic))
	}
	switch c.Engine.Corners {
	case "strict", "legacy":
	default:
		errs = append(errs, fmt.Errorf("unknown corner rule %q", c.Engine.Corners))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}

// NewLogger builds a logger writing to stderr.
func (l LogConfig) NewLogger() *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

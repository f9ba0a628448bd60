package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gametools/internal/observability/log"
	"github.com/zeusync/gametools/pkg/arrays"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the gametools CLI configuration.
type Config struct {
	Log  LogConfig  `json:"log" yaml:"log"`
	Grid GridConfig `json:"grid" yaml:"grid"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// GridConfig holds the extents used when a command needs a grid and none is given.
type GridConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info", Encoding: "console"},
		Grid: GridConfig{Width: 16, Height: 16},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// Empty input yields the defaults.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks log settings and grid extents.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %v: %w", err, ErrInvalidConfig)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log.encoding %q must be json or console: %w", c.Log.Encoding, ErrInvalidConfig)
	}
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("grid extents %dx%d must not be negative: %w", c.Grid.Width, c.Grid.Height, ErrInvalidConfig)
	}
	if err := arrays.CheckExtents(c.Grid.Width, c.Grid.Height); err != nil {
		return fmt.Errorf("grid: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

// LogLevel is the parsed Log.Level. Call Validate first.
func (c Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

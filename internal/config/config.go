// Package config reads atlas.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/atlas/pkg/schema"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "atlas.yaml"

// Config is the structure of atlas.yaml.
type Config struct {
	Data    DataConfig               `yaml:"data"`
	Output  OutputConfig             `yaml:"output"`
	Log     LogConfig                `yaml:"log"`
	Serve   ServeConfig              `yaml:"serve"`
	Schemas map[string]schema.Schema `yaml:"schemas"`
	// Strict makes schema violations fail the load instead of only the affected exercise.
	Strict bool `yaml:"strict"`
}

// DataConfig selects where datasets are read from.
// Redis wins over Dir; with neither set, the bundled datasets are used.
type DataConfig struct {
	Dir   string      `yaml:"dir"`
	Redis RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml or markdown
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// Load reads a YAML config file over the defaults.
// A missing file is not an error unless required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, markdown (got %q)", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

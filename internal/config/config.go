package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a plateau run.
type Config struct {
	// Input is the mission file to read.
	Input string `yaml:"input" env:"PLATEAU_INPUT"`
	// Format selects the output: "text" or "yaml".
	Format string `yaml:"format" env:"PLATEAU_FORMAT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"PLATEAU_LOG_LEVEL"`
	// Workers > 1 simulates robots in parallel. Output order is unchanged.
	Workers int `yaml:"workers" env:"PLATEAU_WORKERS"`
	// Render prints the grid with final robot positions to stderr.
	Render bool `yaml:"render" env:"PLATEAU_RENDER"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Input:    "input.txt",
		Format:   "text",
		LogLevel: "info",
		Workers:  1,
	}
}

// Load reads path over the defaults and then applies PLATEAU_* environment
// variables. A missing file is not an error. The result is not validated:
// callers layer their own overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if c.Input == "" {
		return fmt.Errorf("config: input path is empty")
	}
	return nil
}

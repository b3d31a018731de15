// Package config resolves the planner configuration from an optional YAML
// file and PLANNER_* environment variables. Command-line flags override
// both; the precedence is flags > env > file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dzcontrol/planner/pkg/logger"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "planner.yaml"

// Config holds the planner configuration
type Config struct {
	DataDir string        `yaml:"dataDir"` // directory holding the document blob
	Format  string        `yaml:"format"`  // default report format: text, json, csv
	Logger  logger.Config `yaml:"logger"`
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		DataDir: "data",
		Format:  "text",
		Logger:  logger.DefaultConfig(),
	}
}

// Load reads the configuration file and applies environment overrides. A
// missing file is not an error unless the caller named it explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file, defaults apply.
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PLANNER_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("PLANNER_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		c.Logger.Level = logger.LogLevel(v)
	}
	if v := os.Getenv("PLANNER_LOG_FORMAT"); v != "" {
		c.Logger.Format = v
	}
}

// Validate checks the configuration for obvious mistakes
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	switch c.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	return nil
}

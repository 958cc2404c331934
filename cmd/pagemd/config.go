package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults loaded from an optional YAML config file. Values set
// explicitly on the command line take precedence over the file.
type Config struct {
	UserAgent      string `yaml:"user_agent"`
	AcceptLanguage string `yaml:"accept_language"`
	Extractor      string `yaml:"extractor"`
	LogLevel       string `yaml:"log_level"`
}

// LoadConfig reads the config file at path. An empty path returns a zero
// config; a missing or malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch cfg.Extractor {
	case "", "readability", "trafilatura":
	default:
		return nil, fmt.Errorf("unknown extractor %q in %s", cfg.Extractor, path)
	}

	return cfg, nil
}

// Apply fills CLI fields still at their built-in defaults from the config.
func (c *Config) Apply(cli *CLI) {
	if cli.UserAgent == "" && c.UserAgent != "" {
		cli.UserAgent = c.UserAgent
	}
	if cli.Extractor == "readability" && c.Extractor != "" {
		cli.Extractor = c.Extractor
	}
	if cli.LogLevel == "info" && c.LogLevel != "" {
		cli.LogLevel = c.LogLevel
	}
}

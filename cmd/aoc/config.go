package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is the aoc.yaml file.
type Config struct {
	Inputs InputsConfig  `yaml:"inputs"`
	Output string        `yaml:"output"`
	Log    LoggingConfig `yaml:"log"`
}

// InputsConfig says where puzzle inputs live.
type InputsConfig struct {
	Dir  string         `yaml:"dir"`
	Days map[int]string `yaml:"days"` // per-day override paths
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{Dir: "inputs"},
		Output: OutputText,
		Log:    LoggingConfig{Level: "warn"},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults when the file doesn't exist
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUTS_DIR"); dir != "" {
		c.Inputs.Dir = dir
	}
}

// Validate checks the values a file can get wrong.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: want %s or %s", c.Output, OutputText, OutputYAML)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	for day := range c.Inputs.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("inputs.days: day %d out of range 1-25", day)
		}
	}
	return nil
}

// ZapLevel parses Level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// InputPath returns the configured input file for day: the per-day
// override if one is set, otherwise day<N>.txt under the inputs directory.
func (c *Config) InputPath(day int) string {
	if path, ok := c.Inputs.Days[day]; ok && path != "" {
		return path
	}
	return filepath.Join(c.Inputs.Dir, fmt.Sprintf("day%d.txt", day))
}

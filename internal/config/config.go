// Package config loads the optional YAML configuration of the aoc binary.
//
// Example file:
//
//	input: puzzles/day2.txt
//	log_level: debug
//	reports:
//	  min_step: 1
//	  max_step: 3
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2024/reports"
)

// DefaultInput is the puzzle input path used when nothing else is set.
const DefaultInput = "input.txt"

// ErrInvalid is returned for a config that decodes but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the file-level configuration.
type Config struct {
	Input    string  `yaml:"input"`
	LogLevel string  `yaml:"log_level"`
	Reports  Reports `yaml:"reports"`
}

// Reports holds the step bounds for the reports solver.
type Reports struct {
	MinStep int `yaml:"min_step"`
	MaxStep int `yaml:"max_step"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := reports.DefaultOptions()

	return Config{
		Input:    DefaultInput,
		LogLevel: "warn",
		Reports:  Reports{MinStep: o.MinStep, MaxStep: o.MaxStep},
	}
}

// Load reads and decodes the YAML file at path on top of Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default(). Unknown keys are rejected.
// An empty document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the step bounds and the log level.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Reports.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Options converts the section into reports.Options.
func (r Reports) Options() reports.Options {
	return reports.Options{MinStep: r.MinStep, MaxStep: r.MaxStep}
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
	}
}

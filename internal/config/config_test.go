package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/aoc2024/internal/config"
	"github.com/katalvlaran/aoc2024/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, reports.DefaultOptions(), cfg.Reports.Options())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte("input: day2.txt\nlog_level: DEBUG\nreports:\n  max_step: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "day2.txt", cfg.Input)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, reports.Options{MinStep: 1, MaxStep: 5}, cfg.Reports.Options())
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("inptu: typo.txt\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Parse([]byte("reports:\n  min_step: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, reports.ErrBadStepBounds)

	_, err = config.Parse([]byte("log_level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("input: \"\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: x.txt\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x.txt", cfg.Input)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "Info": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, " error ": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseLevel("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// Package cli wires the puzzle solvers into the aoc command tree.
//
// Every subcommand reads one input file, hands the parsed data to its
// solver package and prints the result to the command's stdout. Logs go to
// stderr through log/slog.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/internal/config"
)

// ErrReadInput wraps any failure to read the puzzle input.
var ErrReadInput = errors.New("cli: read input")

// app carries the resolved configuration between cobra hooks.
type app struct {
	configPath string
	logLevel   string
	input      string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the aoc command with all solver subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Puzzle solvers for sorted distances, report safety and mul scanning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "optional YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	pf.StringVarP(&a.input, "input", "i", "", "puzzle input file (default "+config.DefaultInput+")")

	root.AddCommand(
		newDistanceCmd(a),
		newReportsCmd(a),
		newMulCmd(a),
	)

	return root
}

// resolve merges defaults, the config file and explicit flags, in that
// order, and builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// readInput returns the contents of the configured input file.
func (a *app) readInput() (string, error) {
	data, err := os.ReadFile(a.cfg.Input)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrReadInput, a.cfg.Input, err)
	}
	a.logger.Debug("input loaded", "path", a.cfg.Input, "bytes", len(data))

	return string(data), nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/distance"
	"github.com/katalvlaran/aoc2024/lineparse"
	"github.com/katalvlaran/aoc2024/mulscan"
	"github.com/katalvlaran/aoc2024/reports"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance",
		Short: "Sum the distances between the sorted left and right columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := a.readInput()
			if err != nil {
				return err
			}
			left, right := lineparse.ParsePairs(text)
			a.logger.Debug("pairs parsed", "count", len(left))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sum of distances: %d\n", distance.TotalDistance(left, right))
			return err
		},
	}
}

func newReportsCmd(a *app) *cobra.Command {
	var minStep, maxStep int

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Print every report with its verdict and count the safe ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.Reports.Options()
			if cmd.Flags().Changed("min-step") {
				opts.MinStep = minStep
			}
			if cmd.Flags().Changed("max-step") {
				opts.MaxStep = maxStep
			}
			c, err := reports.NewClassifier(reports.WithMinStep(opts.MinStep), reports.WithMaxStep(opts.MaxStep))
			if err != nil {
				return err
			}

			text, err := a.readInput()
			if err != nil {
				return err
			}
			seqs := lineparse.ParseLines(text)
			a.logger.Debug("reports parsed", "count", len(seqs), "min_step", opts.MinStep, "max_step", opts.MaxStep)

			out := cmd.OutOrStdout()
			safe := 0
			for _, s := range seqs {
				r := c.Analyze(s)
				if r.Safe {
					safe++
				}
				if _, err := fmt.Fprintf(out, "Level (safe: %t) %s -> %s\n", r.Safe, formatInts(r.Values), formatInts(r.Deltas)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "Total safe levels: %d\n", safe)
			return err
		},
	}
	cmd.Flags().IntVar(&minStep, "min-step", reports.DefaultMinStep, "smallest allowed step magnitude")
	cmd.Flags().IntVar(&maxStep, "max-step", reports.DefaultMaxStep, "largest allowed step magnitude")

	return cmd
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul",
		Short: "Sum the products of every mul(a,b) instruction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := a.readInput()
			if err != nil {
				return err
			}
			pairs := mulscan.Extract(text)
			a.logger.Debug("instructions found", "count", len(pairs))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Result: %d\n", mulscan.MultiplyAndSum(pairs))
			return err
		},
	}
}

// formatInts renders xs as "[1, 2, 3]".
func formatInts(xs []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')

	return b.String()
}

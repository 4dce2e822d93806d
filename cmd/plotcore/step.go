package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/plotcore"
	"github.com/zephyrtronium/plotcore/rational"
)

var (
	stepConfig string
	stepAxis   axis
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Choose the tick step for an axis",
	Long: `Choose the smallest step of the form 1/n or n (or π/n, nπ with --pi) whose
ticks are at least --min pixels apart at --scale pixels per unit. With --range,
also print the ticks in the range.

Axes may instead be read from a TOML file with --config.`,
	Args: cobra.NoArgs,
	RunE: runStep,
}

func init() {
	f := stepCmd.Flags()
	f.StringVar(&stepConfig, "config", "", "TOML file describing axes")
	f.Float64Var(&stepAxis.Scale, "scale", 0, "pixels per unit")
	f.Float64Var(&stepAxis.MinSpacing, "min", 0, "minimum pixels between ticks")
	f.BoolVar(&stepAxis.Pi, "pi", false, "use multiples of π")
	f.StringVar(&stepAxis.Range, "range", "", `range to place ticks in, e.g. "(-pi, pi)"`)
	stepCmd.MarkFlagsRequiredTogether("scale", "min")
	stepCmd.MarkFlagsOneRequired("config", "scale")
	stepCmd.MarkFlagsMutuallyExclusive("config", "scale")
	stepCmd.MarkFlagsMutuallyExclusive("config", "range")
	stepCmd.MarkFlagsMutuallyExclusive("config", "pi")
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	axes := []axis{stepAxis}
	if stepConfig != "" {
		cfg, err := loadConfig(stepConfig)
		if err != nil {
			return err
		}
		axes = cfg.Axes
	}
	w := cmd.OutOrStdout()
	for _, a := range axes {
		if err := printAxis(w, a, len(axes) > 1); err != nil {
			if a.Name != "" {
				return fmt.Errorf("%s: %w", a.Name, err)
			}
			return err
		}
	}
	return nil
}

// printAxis prints the step chosen for a and its ticks if a has a range.
func printAxis(w io.Writer, a axis, named bool) error {
	step, err := rational.Step(a.Scale, a.MinSpacing, a.Pi)
	if err != nil {
		return err
	}
	if named {
		fmt.Fprintf(w, "%s: ", nameColor.Sprint(a.Name))
	}
	fmt.Fprintln(w, exactColor.Sprint(step))
	if a.Range == "" {
		return nil
	}
	r, err := plotcore.ParseRange(a.Range)
	if err != nil {
		return err
	}
	ticks, err := rational.Ticks(r.At(0).Approx(), r.At(1).Approx(), step)
	if err != nil {
		return err
	}
	s := make([]string, len(ticks))
	for i, t := range ticks {
		s[i] = t.String()
	}
	fmt.Fprintf(w, "\t%s\n", strings.Join(s, " "))
	return nil
}

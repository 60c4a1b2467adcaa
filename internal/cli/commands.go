package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rentorbuy/internal/report"
	"rentorbuy/internal/simulation"
)

func newSimulateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project renting against buying year by year",
		Example: `  rentorbuy simulate --home-price 650000 --monthly-rent 2800
  rentorbuy simulate --config scenario.yaml --format csv -o results.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd, opts)
			if err != nil {
				return err
			}

			var in simulation.Input
			if err := decodeScenario(v, &in, nil); err != nil {
				return err
			}

			out, err := simulation.Simulate(in)
			if err != nil {
				return err
			}

			return withOutput(cmd, opts, func(w io.Writer, format report.Format) error {
				return report.WriteSimulation(w, format, out)
			})
		},
	}
	addScenarioFlags(cmd.Flags(), nil)
	return cmd
}

func newScheduleCommand(opts *options) *cobra.Command {
	var yearly bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of the mortgage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd, opts)
			if err != nil {
				return err
			}

			var loan simulation.LoanInput
			if err := decodeScenario(v, &loan, loanKeys); err != nil {
				return err
			}

			schedule, err := simulation.BuildSchedule(loan)
			if err != nil {
				return err
			}

			return withOutput(cmd, opts, func(w io.Writer, format report.Format) error {
				return report.WriteSchedule(w, format, schedule, yearly)
			})
		},
	}
	addScenarioFlags(cmd.Flags(), loanKeys)
	cmd.Flags().BoolVar(&yearly, "yearly", false, "aggregate the schedule per loan year")
	return cmd
}

func newDefaultsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default scenario as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withOutput(cmd, opts, func(w io.Writer, _ report.Format) error {
				return writeDefaults(w)
			})
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rentorbuy %s\n", version)
		},
	}
}

// writeDefaults prints the default scenario in the shape --config accepts.
func writeDefaults(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(simulation.DefaultInput())
}

// Package cli implements the rentorbuy command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rentorbuy/internal/logger"
	"rentorbuy/internal/report"
)

const envPrefix = "RENTORBUY"

// options are the flags shared by every subcommand.
type options struct {
	configFile string
	format     string
	output     string
}

// NewRootCommand builds the rentorbuy command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rentorbuy",
		Short:         "Compare the long-run cost of renting against buying a home",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "scenario file (yaml, json, or toml)")
	pf.StringVarP(&opts.format, "format", "f", string(report.FormatTable), "output format: table, csv, or json")
	pf.StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")

	root.AddCommand(
		newSimulateCommand(opts),
		newScheduleCommand(opts),
		newDefaultsCommand(opts),
		newVersionCommand(version),
	)
	return root
}

// newViper returns a viper instance reading cmd's flags, RENTORBUY_* variables,
// and the optional scenario file, in that order of precedence.
func newViper(cmd *cobra.Command, opts *options) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, f := range scenarioFlags {
		if fl := cmd.Flags().Lookup(f.name); fl != nil {
			if err := v.BindPFlag(f.key, fl); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", f.name, err)
			}
		}
	}

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.configFile, err)
		}
	}
	return v, nil
}

// withOutput runs write against stdout or the --output file.
func withOutput(cmd *cobra.Command, opts *options, write func(w io.Writer, format report.Format) error) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		return write(cmd.OutOrStdout(), format)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.output, err)
	}
	if err := write(f, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", opts.output, err)
	}
	logger.Get().Infow("report written", "path", opts.output, "format", format)
	return nil
}

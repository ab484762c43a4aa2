package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Set via ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aoc2023",
		Short:         "Advent of Code 2023 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "YAML file with default flag values")
	flags.StringP("input", "i", "", "puzzle input file")
	flags.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	flags.String("format", _defaultFormat, "output format: text or yaml")

	cmd.AddCommand(day1Cmd())
	cmd.AddCommand(day2Cmd())
	cmd.AddCommand(day3Cmd())
	cmd.AddCommand(day4Cmd())
	cmd.AddCommand(day5Cmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fprintf(cmd.OutOrStdout(), "aoc2023 version %v\n", version)
		},
	}
}

// _solve loads the configuration of cmd, runs solve on it and writes the
// report to the command's output.
func _solve(cmd *cobra.Command, day int, solve func(cfg Config, r *Report) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	log.Info().Int("day", day).Str("input", cfg.Input).Msg("solving")

	r := &Report{Day: day}
	if err := solve(cfg, r); err != nil {
		return errorf("day %v: %w", day, err)
	}
	return r.Write(cmd.OutOrStdout(), cfg.Format)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/signtable/config"
	"github.com/katalvlaran/signtable/logger"
)

// newRootCmd builds the command tree around a fresh configuration so tests
// can run it repeatedly.
func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "signtable [size min max]",
		Short: "Print a random matrix with per-row sign-run statistics",
		Long: `signtable generates a square matrix of random integers and prints it as an
aligned table. Each row gets its smallest positive value and the minimum
number of entries to replace so no run of --max-run same-sign numbers remains.
Rows holding the matrix minimum are marked with '*'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.OutOrStdout(), &cfg, args)
		},
	}
	// Negative bounds ("signtable 4 -9 9") must not be parsed as flags.
	rootCmd.Flags().SetInterspersed(false)

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&cfg.Size, "size", cfg.Size, "matrix dimension")
	pf.IntVar(&cfg.Min, "min", cfg.Min, "inclusive lower bound of generated values")
	pf.IntVar(&cfg.Max, "max", cfg.Max, "inclusive upper bound of generated values")
	pf.IntVar(&cfg.MaxRunLength, "max-run", cfg.MaxRunLength, "forbidden length of a same-sign run")
	pf.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	pf.StringVar(&cfg.Color, "color", cfg.Color, "underline attributes: auto, always or never")
	pf.StringVar(&cfg.MinPositiveLabel, "min-positive-label", cfg.MinPositiveLabel, "header of the minimum positive column")
	pf.StringVar(&cfg.ReplacementsLabel, "replacements-label", cfg.ReplacementsLabel, "header of the replacements column")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	configCmd := &cobra.Command{
		Use:   "config [size min max]",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), &cfg, args)
		},
	}
	configCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(configCmd)

	return rootCmd
}

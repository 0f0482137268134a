// Package cmd provides the CLI commands for the transport solvers.
package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "transport",
	Short: "Solve transportation problems with simplex and tabu search",
	Long: `transport runs the transportation-problem solvers of this module:
the exact MODI/stepping-stone simplex and the Tabu Search metaheuristic.

Examples:
  transport scenarios
  transport scenarios Unbalanced Degenerate
  transport scenarios --max-iter-tabu 200 --seed 42 -v`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-iteration debug logging")

	rootCmd.AddCommand(scenariosCmd)
}

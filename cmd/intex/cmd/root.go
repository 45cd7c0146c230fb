// Package cmd provides the CLI commands for intex.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intex/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "intex",
	Short: "Work with interval exchange transformations",
	Long: `intex builds and inspects the combinatorial objects of interval
exchange transformations: permutations, linear involutions, Rauzy
diagrams and the transformations themselves.

Examples:
  intex perm "a b c" "c b a"
  intex diagram "a b b" "c c a" --reduced
  intex enumerate --size 4
  intex iet "a b c" "c b a" --lengths 1,0.4523,2.8 --point 0.5`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(permCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(ietCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	if err := logging.Initialize(cfg); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error initializing logging:", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("intex version 0.1.0")
	},
}

// Package cmd - diagram command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intex/internal/logging"
	"github.com/katalvlaran/intex/rauzy"
)

var (
	diagramReduced  bool
	diagramLeft     bool
	diagramNoRight  bool
	diagramLR       bool
	diagramTB       bool
	diagramSymmetry bool
	diagramVertices bool
)

// diagramCmd represents the diagram command
var diagramCmd = &cobra.Command{
	Use:   "diagram [top] [bottom]",
	Short: "Build the Rauzy diagram of a permutation",
	Long: `Build the closure of a permutation under the enabled Rauzy moves
and inversions, and print its cardinality.

By default only the two right Rauzy moves are enabled.

Examples:
  intex diagram "a b c" "c b a"
  intex diagram "a b b" "c c a" --reduced
  intex diagram "a b c" "c b a" --left --lr --vertices`,
	Args: cobra.ExactArgs(2),
	RunE: runDiagram,
}

func init() {
	diagramCmd.Flags().BoolVarP(&diagramReduced, "reduced", "r", false, "build over reduced permutations")
	diagramCmd.Flags().BoolVar(&diagramLeft, "left", false, "enable left Rauzy moves")
	diagramCmd.Flags().BoolVar(&diagramNoRight, "no-right", false, "disable right Rauzy moves")
	diagramCmd.Flags().BoolVar(&diagramLR, "lr", false, "enable the left-right inversion")
	diagramCmd.Flags().BoolVar(&diagramTB, "tb", false, "enable the top-bottom inversion")
	diagramCmd.Flags().BoolVar(&diagramSymmetry, "symmetry", false, "enable the half-turn symmetry")
	diagramCmd.Flags().BoolVar(&diagramVertices, "vertices", false, "print every vertex")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	var opts []rauzy.Option
	if diagramReduced {
		opts = append(opts, rauzy.WithReduced())
	}
	if diagramLeft {
		opts = append(opts, rauzy.WithLeftInduction())
	}
	if diagramNoRight {
		opts = append(opts, rauzy.WithoutRightInduction())
	}
	if diagramLR {
		opts = append(opts, rauzy.WithLeftRightInversion())
	}
	if diagramTB {
		opts = append(opts, rauzy.WithTopBottomInversion())
	}
	if diagramSymmetry {
		opts = append(opts, rauzy.WithSymmetry())
	}

	d, err := rauzy.New(strings.Join(args, "\n"), opts...)
	if err != nil {
		return fmt.Errorf("invalid diagram: %w", err)
	}

	logging.Debug("diagram built", zap.Int("vertices", d.Cardinality()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, d)
	if diagramVertices {
		for i, v := range d.Vertices() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, v)
		}
	}

	return nil
}

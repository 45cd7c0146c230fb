// Package cmd - iet command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intex/iet"
	"github.com/katalvlaran/intex/internal/logging"
)

var (
	ietLengths   []string
	ietPoint     float64
	ietRauzy     int
	ietNormalize float64
)

// ietCmd represents the iet command
var ietCmd = &cobra.Command{
	Use:   "iet [top] [bottom]",
	Short: "Build an interval exchange transformation",
	Long: `Build an interval exchange transformation from an exchange
permutation and a positional length vector, optionally evaluate it,
apply Rauzy induction or renormalize.

Lengths are parsed as exact decimals before conversion.

Examples:
  intex iet "a b" "b a" --lengths 1,4
  intex iet "a b c" "c b a" --lengths 1,0.4523,2.8 --point 0.5
  intex iet "a b c" "c b a" --lengths 0.123,0.4,2 --rauzy 1 --normalize 3`,
	Args: cobra.ExactArgs(2),
	RunE: runIet,
}

func init() {
	ietCmd.Flags().StringSliceVarP(&ietLengths, "lengths", "l", nil, "interval lengths, one per letter")
	ietCmd.Flags().Float64VarP(&ietPoint, "point", "p", 0, "evaluate the transformation at this point")
	ietCmd.Flags().IntVar(&ietRauzy, "rauzy", 0, "apply this many Rauzy induction steps first")
	ietCmd.Flags().Float64Var(&ietNormalize, "normalize", 0, "rescale the lengths to this total")
	_ = ietCmd.MarkFlagRequired("lengths")
}

func runIet(cmd *cobra.Command, args []string) error {
	lengths := make([]any, len(ietLengths))
	for i, l := range ietLengths {
		lengths[i] = l
	}

	tr, err := iet.New(strings.Join(args, "\n"), lengths)
	if err != nil {
		return fmt.Errorf("invalid transformation: %w", err)
	}

	if ietRauzy > 0 {
		if tr, err = tr.RauzyMove(ietRauzy); err != nil {
			return fmt.Errorf("induction failed: %w", err)
		}
		logging.Debug("induction applied", zap.Int("steps", ietRauzy))
	}
	if cmd.Flags().Changed("normalize") {
		if tr, err = tr.Normalize(ietNormalize); err != nil {
			return fmt.Errorf("normalization failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tr)
	fmt.Fprintln(out, "lengths:", tr.Lengths())

	if cmd.Flags().Changed("point") {
		y, err := tr.At(ietPoint)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
		fmt.Fprintf(out, "T(%g) = %g\n", ietPoint, y)
	}

	return nil
}

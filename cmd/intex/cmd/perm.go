// Package cmd - perm command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intex/internal/logging"
	"github.com/katalvlaran/intex/perm"
)

var (
	permReduced bool
	permFlips   []string
)

// permCmd represents the perm command
var permCmd = &cobra.Command{
	Use:   "perm [top] [bottom]",
	Short: "Build and print a permutation",
	Long: `Validate a two-row permutation and print its canonical form.

A pair where every letter occurs once per row is an exchange
permutation; a pair where every letter occurs twice across both rows is
a generalized permutation (linear involution).

Examples:
  intex perm "a b c" "c b a"
  intex perm "a b b" "c c a"
  intex perm "a b c" "c b a" --flips a,c
  intex perm "a b c" "c b a" --reduced`,
	Args: cobra.ExactArgs(2),
	RunE: runPerm,
}

func init() {
	permCmd.Flags().BoolVarP(&permReduced, "reduced", "r", false, "use the reduced representation")
	permCmd.Flags().StringSliceVarP(&permFlips, "flips", "f", nil, "letters with reversed orientation")
}

func runPerm(cmd *cobra.Command, args []string) error {
	p, err := buildPermutation(args)
	if err != nil {
		return err
	}

	logging.Debug("permutation built",
		zap.Stringer("kind", p.Kind()),
		zap.Int("letters", p.Len()),
		zap.Bool("reduced", p.IsReduced()),
		zap.Strings("flips", p.Flips()))

	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}

// buildPermutation resolves the two row arguments plus the shared flags
// into a validated permutation of the right family.
func buildPermutation(args []string) (*perm.Permutation, error) {
	opts := []perm.Option{perm.WithReduced(permReduced)}
	if len(permFlips) > 0 {
		opts = append(opts, perm.WithFlips(permFlips...))
	}

	p, err := perm.Generalized(strings.Join(args, "\n"), opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid permutation: %w", err)
	}

	return p, nil
}

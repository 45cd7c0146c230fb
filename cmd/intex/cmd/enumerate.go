// Package cmd - enumerate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intex/perm"
)

var (
	enumerateSize    int
	enumerateAll     bool
	enumerateReduced bool
	enumerateCount   bool
)

// enumerateCmd represents the enumerate command
var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate exchange permutations of a given size",
	Long: `List the exchange permutations over the default alphabet 1..n in
lexicographic order. Only irreducible permutations are listed unless
--all is given.

Examples:
  intex enumerate --size 3
  intex enumerate --size 4 --count
  intex enumerate --size 3 --all --reduced`,
	RunE: runEnumerate,
}

func init() {
	enumerateCmd.Flags().IntVarP(&enumerateSize, "size", "n", 0, "number of intervals")
	enumerateCmd.Flags().BoolVar(&enumerateAll, "all", false, "include reducible permutations")
	enumerateCmd.Flags().BoolVarP(&enumerateReduced, "reduced", "r", false, "use the reduced representation")
	enumerateCmd.Flags().BoolVarP(&enumerateCount, "count", "c", false, "print only the number of permutations")
	_ = enumerateCmd.MarkFlagRequired("size")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	opts := []perm.IterOption{perm.Size(enumerateSize)}
	if enumerateAll {
		opts = append(opts, perm.AllPermutations())
	}
	if enumerateReduced {
		opts = append(opts, perm.ReducedForm())
	}

	seq, err := perm.Iterate(opts...)
	if err != nil {
		return fmt.Errorf("invalid enumeration: %w", err)
	}

	out := cmd.OutOrStdout()
	total := 0
	for p := range seq {
		if !enumerateCount {
			if total > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, p)
		}
		total++
	}
	if enumerateCount {
		fmt.Fprintln(out, total)
	}

	return nil
}

// Package perm validators: a single source of truth for the combinatorial
// admissibility checks, kept out of the factories so every call site fails
// with the same sentinel.
package perm

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/intex/alphabet"
)

// validatorErrorf tags a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// letterCounts returns per-row and total occurrence counts for every
// distinct letter of the pair.
func letterCounts(rows [2]Row) (perRow [2]map[Label]int, total map[Label]int) {
	perRow[0] = make(map[Label]int, len(rows[0]))
	perRow[1] = make(map[Label]int, len(rows[1]))
	total = make(map[Label]int, len(rows[0])+len(rows[1]))
	for i := 0; i < 2; i++ {
		for _, l := range rows[i] {
			perRow[i][l]++
			total[l]++
		}
	}

	return perRow, total
}

// validateNonEmpty rejects a row pair with no letters at all.
func validateNonEmpty(rows [2]Row) error {
	if len(rows[0]) == 0 && len(rows[1]) == 0 {
		return validatorErrorf("validateNonEmpty", ErrEmptyRows)
	}

	return nil
}

// validateFlips ensures every flip letter occurs somewhere in the pair.
// The sentinel differs between the exchange and generalized factories, so
// the caller supplies it.
func validateFlips(rows [2]Row, flips []Label, sentinel error) error {
	_, total := letterCounts(rows)
	for _, l := range flips {
		if total[l] == 0 {
			return validatorErrorf("validateFlips", sentinel)
		}
	}

	return nil
}

// validateOncePerRow enforces the exchange invariant: every distinct
// letter appears exactly once in each row.
func validateOncePerRow(rows [2]Row) error {
	perRow, total := letterCounts(rows)
	for l := range total {
		if perRow[0][l] != 1 || perRow[1][l] != 1 {
			return validatorErrorf("validateOncePerRow", ErrLetterOnce)
		}
	}

	return nil
}

// validateTwiceTotal enforces the generalized invariant: every distinct
// letter appears exactly twice across the two rows.
func validateTwiceTotal(rows [2]Row) error {
	_, total := letterCounts(rows)
	for l := range total {
		if total[l] != 2 {
			return validatorErrorf("validateTwiceTotal", ErrLetterTwice)
		}
	}

	return nil
}

// residualRows strips, for every letter occurring exactly once in the top
// row, that occurrence and its counterpart in the bottom row. Assumes the
// twice-total invariant, under which such a letter occurs exactly once in
// each row.
func residualRows(rows [2]Row) (top, bottom Row) {
	perRow, _ := letterCounts(rows)
	top = slices.Clone(rows[0])
	bottom = slices.Clone(rows[1])
	for l, n := range perRow[0] {
		if n != 1 {
			continue
		}
		if i := slices.Index(top, l); i >= 0 {
			top = slices.Delete(top, i, i+1)
		}
		if i := slices.Index(bottom, l); i >= 0 {
			bottom = slices.Delete(bottom, i, i+1)
		}
	}

	return top, bottom
}

// resolveAlphabet returns the explicit alphabet after checking it covers
// every letter, or infers one from the rows in first-occurrence order.
func resolveAlphabet(rows [2]Row, explicit *alphabet.Alphabet) (*alphabet.Alphabet, error) {
	if explicit == nil {
		return alphabet.FromRows(rows[0], rows[1]), nil
	}
	for i := 0; i < 2; i++ {
		for _, l := range rows[i] {
			if !explicit.Contains(l) {
				return nil, validatorErrorf("resolveAlphabet", ErrAlphabetCover)
			}
		}
	}

	return explicit, nil
}

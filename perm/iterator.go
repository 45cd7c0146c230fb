// Package perm enumeration: lazy iteration over exchange permutations of
// a given size, in lexicographic order of the bottom row.
package perm

import (
	"iter"
	"slices"

	"github.com/katalvlaran/intex/alphabet"
)

// IterOptions configures Iterate.
type IterOptions struct {
	size        int
	irreducible bool
	reduced     bool
	alphabet    *alphabet.Alphabet
}

// IterOption is a functional option for Iterate.
type IterOption func(*IterOptions)

// Size sets the number of intervals to enumerate over. When unset, the
// cardinality of the alphabet is used instead.
func Size(n int) IterOption {
	return func(o *IterOptions) {
		o.size = n
	}
}

// OverAlphabet sets the letters the enumerated permutations are written
// with. Must hold at least Size letters; the first Size are used. When
// Size is unset the alphabet also determines the size.
func OverAlphabet(a *alphabet.Alphabet) IterOption {
	return func(o *IterOptions) {
		o.alphabet = a
	}
}

// AllPermutations disables the irreducibility filter, so reducible
// permutations are enumerated too.
func AllPermutations() IterOption {
	return func(o *IterOptions) {
		o.irreducible = false
	}
}

// ReducedForm enumerates reduced permutations instead of labelled ones.
func ReducedForm() IterOption {
	return func(o *IterOptions) {
		o.reduced = true
	}
}

// Iterate returns a lazy, finite sequence of exchange permutations of the
// resolved size, in lexicographic order of the bottom row. The sequence is
// re-iterable from the start on every fresh range; breaking out early is
// allowed.
//
// Resolution order: an explicit Size wins; otherwise an alphabet must be
// supplied and its cardinality becomes the size (ErrNoSize when both are
// missing). Without an explicit alphabet the default numeric alphabet
// 1..n is used. By default only irreducible permutations are produced: a
// permutation is reducible when some proper prefix of intervals maps onto
// itself.
func Iterate(opts ...IterOption) (iter.Seq[*Permutation], error) {
	o := &IterOptions{irreducible: true}
	for _, opt := range opts {
		opt(o)
	}

	n := o.size
	alph := o.alphabet
	if n < 0 {
		return nil, ErrNoSize
	}
	switch {
	case n == 0 && alph == nil:
		return nil, ErrNoSize
	case n == 0:
		n = alph.Cardinality()
	case alph == nil:
		alph = alphabet.Default(n)
	}
	if alph.Cardinality() < n {
		return nil, ErrAlphabetSize
	}

	letters := alph.Letters()[:n]
	if alph.Cardinality() != n {
		// Narrow to the letters actually used so ranks stay dense.
		alph, _ = alphabet.New(letters...)
	}

	tag := Variant{Kind: KindExchange, Reduced: o.reduced}
	irreducibleOnly := o.irreducible

	seq := func(yield func(*Permutation) bool) {
		images := make([]int, n)
		for i := range images {
			images[i] = i
		}
		for {
			if !irreducibleOnly || isIrreducible(images) {
				top := slices.Clone(letters)
				bottom := make(Row, n)
				for i, img := range images {
					bottom[i] = letters[img]
				}
				if !yield(construct(tag, [2]Row{top, bottom}, alph, nil)) {
					return
				}
			}
			if !nextPermutation(images) {
				return
			}
		}
	}

	return seq, nil
}

// isIrreducible reports whether no proper prefix {0..k} of positions maps
// onto {0..k}.
func isIrreducible(images []int) bool {
	maxSeen := -1
	for k := 0; k < len(images)-1; k++ {
		if images[k] > maxSeen {
			maxSeen = images[k]
		}
		if maxSeen == k {
			return false
		}
	}

	return true
}

// nextPermutation advances images to its lexicographic successor in
// place, returning false after the last permutation.
func nextPermutation(images []int) bool {
	i := len(images) - 2
	for i >= 0 && images[i] >= images[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(images) - 1
	for images[j] <= images[i] {
		j--
	}
	images[i], images[j] = images[j], images[i]
	slices.Reverse(images[i+1:])

	return true
}

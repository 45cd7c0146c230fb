// Package perm variant constructor table: eight concrete constructors,
// one per variant tag, wired at package init. Factories dispatch through
// the table instead of testing object categories.
package perm

import (
	"github.com/katalvlaran/intex/alphabet"
)

// constructor builds one concrete variant from an already-validated row
// pair, letter order and flip set.
type constructor func(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation

// constructors maps every variant tag to its constructor. Populated once
// at init; read-only afterwards.
var constructors map[Variant]constructor

func init() {
	constructors = map[Variant]constructor{
		{Kind: KindExchange}:                                newLabelledExchange,
		{Kind: KindExchange, Reduced: true}:                 newReducedExchange,
		{Kind: KindExchange, Flipped: true}:                 newFlippedLabelledExchange,
		{Kind: KindExchange, Reduced: true, Flipped: true}:  newFlippedReducedExchange,
		{Kind: KindGeneralized}:                             newLabelledGeneralized,
		{Kind: KindGeneralized, Reduced: true}:              newReducedGeneralized,
		{Kind: KindGeneralized, Flipped: true}:              newFlippedLabelledGeneralized,
		{Kind: KindGeneralized, Reduced: true, Flipped: true}: newFlippedReducedGeneralized,
	}
}

// newVariant is the shared body of the eight constructors.
func newVariant(tag Variant, rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	fs := make(map[Label]struct{}, len(flips))
	for _, l := range flips {
		fs[l] = struct{}{}
	}
	tag.Flipped = len(fs) > 0

	return &Permutation{rows: rows, alph: alph, flips: fs, tag: tag}
}

func newLabelledExchange(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindExchange}, rows, alph, flips)
}

func newReducedExchange(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindExchange, Reduced: true}, rows, alph, flips)
}

func newFlippedLabelledExchange(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindExchange, Flipped: true}, rows, alph, flips)
}

func newFlippedReducedExchange(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindExchange, Reduced: true, Flipped: true}, rows, alph, flips)
}

func newLabelledGeneralized(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindGeneralized}, rows, alph, flips)
}

func newReducedGeneralized(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindGeneralized, Reduced: true}, rows, alph, flips)
}

func newFlippedLabelledGeneralized(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindGeneralized, Flipped: true}, rows, alph, flips)
}

func newFlippedReducedGeneralized(rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return newVariant(Variant{Kind: KindGeneralized, Reduced: true, Flipped: true}, rows, alph, flips)
}

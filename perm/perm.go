package perm

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/intex/alphabet"
)

// Permutation is a validated two-row permutation. One struct covers all
// eight concrete variants; the Variant tag tells them apart. Values are
// immutable after construction: every accessor returns copies, every
// operation returns a new Permutation.
type Permutation struct {
	rows  [2]Row
	alph  *alphabet.Alphabet
	flips map[Label]struct{}
	tag   Variant
}

// List returns a copy of the canonical row pair.
func (p *Permutation) List() [2]Row {
	return [2]Row{slices.Clone(p.rows[0]), slices.Clone(p.rows[1])}
}

// Alphabet returns the letter order of the permutation.
func (p *Permutation) Alphabet() *alphabet.Alphabet { return p.alph }

// Flips returns the flipped letters in alphabet order.
func (p *Permutation) Flips() []Label {
	out := make([]Label, 0, len(p.flips))
	for _, l := range p.alph.Letters() {
		if _, ok := p.flips[l]; ok {
			out = append(out, l)
		}
	}

	return out
}

// Variant returns the 3-way variant tag.
func (p *Permutation) Variant() Variant { return p.tag }

// Kind returns exchange vs generalized.
func (p *Permutation) Kind() Kind { return p.tag.Kind }

// IsReduced reports whether the permutation is in reduced representation.
func (p *Permutation) IsReduced() bool { return p.tag.Reduced }

// IsFlipped reports whether the permutation carries a non-empty flip set.
func (p *Permutation) IsFlipped() bool { return p.tag.Flipped }

// Len returns the number of distinct letters.
func (p *Permutation) Len() int { return p.alph.Cardinality() }

// Clone returns a value-semantics copy. The alphabet is shared: alphabets
// are immutable.
func (p *Permutation) Clone() *Permutation {
	flips := make(map[Label]struct{}, len(p.flips))
	for l := range p.flips {
		flips[l] = struct{}{}
	}

	return &Permutation{
		rows:  p.List(),
		alph:  p.alph,
		flips: flips,
		tag:   p.tag,
	}
}

// Reduced returns the reduced counterpart of the permutation, preserving
// rows, flips and kind. On an already-reduced permutation it is equivalent
// to Clone.
func (p *Permutation) Reduced() *Permutation {
	tag := p.tag
	tag.Reduced = true

	return construct(tag, p.List(), p.alph, p.Flips())
}

// Equal reports value equality: same variant tag and same combinatorial
// datum. Reduced permutations compare up to relabelling; labelled ones
// compare by their literal rows and flips.
func (p *Permutation) Equal(o *Permutation) bool {
	if o == nil {
		return false
	}

	return p.tag == o.tag && p.Key() == o.Key()
}

// Key returns a canonical string identity for the permutation value:
// equal keys mean equal values within the same variant. Reduced
// permutations are relabelled to ranks first, so the key is
// labelling-independent.
func (p *Permutation) Key() string {
	rows := p.rows
	flips := p.flips
	if p.tag.Reduced {
		rows, flips = relabel(rows, flips)
	}

	var b strings.Builder
	b.WriteString(p.tag.Kind.String())
	if p.tag.Reduced {
		b.WriteString("/reduced")
	}
	for i := 0; i < 2; i++ {
		b.WriteByte('\n')
		for j, l := range rows[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			if _, ok := flips[l]; ok {
				b.WriteByte('-')
			}
			b.WriteString(l)
		}
	}

	return b.String()
}

// String renders the two rows on two lines. Flipped letters carry a '-'
// prefix and unflipped ones are padded, so columns stay aligned whenever
// any flip is present.
func (p *Permutation) String() string {
	var b strings.Builder
	for i := 0; i < 2; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, l := range p.rows[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			if p.tag.Flipped {
				if _, ok := p.flips[l]; ok {
					b.WriteByte('-')
				} else {
					b.WriteByte(' ')
				}
			}
			b.WriteString(l)
		}
	}

	return b.String()
}

// relabel renames letters to their first-occurrence rank (top row scanned
// first), producing a labelling-independent row pair and flip set.
func relabel(rows [2]Row, flips map[Label]struct{}) ([2]Row, map[Label]struct{}) {
	names := make(map[Label]Label, len(rows[0]))
	next := 0
	rename := func(l Label) Label {
		name, ok := names[l]
		if !ok {
			name = strconv.Itoa(next)
			names[l] = name
			next++
		}

		return name
	}

	var out [2]Row
	for i := 0; i < 2; i++ {
		out[i] = make(Row, len(rows[i]))
		for j, l := range rows[i] {
			out[i][j] = rename(l)
		}
	}

	outFlips := make(map[Label]struct{}, len(flips))
	for l := range flips {
		outFlips[names[l]] = struct{}{}
	}

	return out, outFlips
}

// construct builds a Permutation through the variant constructor table.
// Input must already be validated; construct itself never fails.
func construct(tag Variant, rows [2]Row, alph *alphabet.Alphabet, flips []Label) *Permutation {
	return constructors[tag](rows, alph, flips)
}

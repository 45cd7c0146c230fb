package iet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/intex/perm"
)

// IntervalExchange is a validated interval exchange transformation: an
// unflipped labelled exchange permutation plus one positive length per
// letter. Values are immutable; operations return new transformations.
type IntervalExchange struct {
	p       *perm.Permutation
	lengths []float64
}

// New builds an interval exchange transformation.
//
// permutation may be an existing *perm.Permutation or any raw shape
// accepted by perm.Exchange; anything that is not already an unflipped
// labelled exchange permutation is coerced through the exchange factory.
// Flipped permutations are rejected with ErrFlippedPermutation.
//
// lengths is either a mapping letter → value or a positional sequence.
// The vector size must equal the letter count (ErrBadLengthCount), every
// entry must convert to a float (ErrBadLengthValue) and be strictly
// positive (ErrNonPositiveLength).
func New(permutation any, lengths any) (*IntervalExchange, error) {
	p, err := resolvePermutation(permutation)
	if err != nil {
		return nil, err
	}

	vec, err := resolveLengths(p, lengths)
	if err != nil {
		return nil, err
	}

	return &IntervalExchange{p: p, lengths: vec}, nil
}

// resolvePermutation coerces the permutation argument to an unflipped
// labelled exchange permutation.
func resolvePermutation(permutation any) (*perm.Permutation, error) {
	if p, ok := permutation.(*perm.Permutation); ok {
		if p.IsFlipped() {
			return nil, ErrFlippedPermutation
		}
		if p.Kind() == perm.KindExchange && !p.IsReduced() {
			return p, nil
		}
	}

	return perm.Exchange(permutation, perm.WithReduced(false))
}

// Permutation returns the underlying exchange permutation.
func (t *IntervalExchange) Permutation() *perm.Permutation { return t.p }

// Lengths returns a copy of the length vector, indexed by alphabet rank.
func (t *IntervalExchange) Lengths() []float64 { return slices.Clone(t.lengths) }

// Length returns the total length of the domain interval.
func (t *IntervalExchange) Length() float64 {
	var total float64
	for _, l := range t.lengths {
		total += l
	}

	return total
}

// InWhichInterval returns the letter of the interval containing x on the
// top side. Returns ErrPointRange if x lies outside [0, Length).
func (t *IntervalExchange) InWhichInterval(x float64) (perm.Label, error) {
	if x < 0 {
		return "", ErrPointRange
	}
	rows := t.p.List()
	var start float64
	for _, letter := range rows[0] {
		width := t.lengthOf(letter)
		if x < start+width {
			return letter, nil
		}
		start += width
	}

	return "", ErrPointRange
}

// At evaluates the transformation: the interval containing x is translated
// from its top position to its bottom position.
func (t *IntervalExchange) At(x float64) (float64, error) {
	letter, err := t.InWhichInterval(x)
	if err != nil {
		return 0, err
	}

	rows := t.p.List()
	return x - t.startOf(rows[0], letter) + t.startOf(rows[1], letter), nil
}

// RauzyMove performs the given number of right Rauzy-Veech induction
// steps. At each step the longer of the two rightmost intervals wins: the
// permutation moves accordingly and the winner's length shrinks by the
// loser's. Equal rightmost lengths make the move undefined
// (ErrEqualLengths).
func (t *IntervalExchange) RauzyMove(iterations int) (*IntervalExchange, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}

	cur := t
	for i := 0; i < iterations; i++ {
		next, err := cur.rauzyStep()
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// rauzyStep performs a single induction step.
func (t *IntervalExchange) rauzyStep() (*IntervalExchange, error) {
	rows := t.p.List()
	top := rows[0][len(rows[0])-1]
	bottom := rows[1][len(rows[1])-1]
	if top == bottom {
		return nil, ErrEqualLengths
	}

	topLen := t.lengthOf(top)
	bottomLen := t.lengthOf(bottom)
	if topLen == bottomLen {
		return nil, ErrEqualLengths
	}

	winner := perm.Top
	winLetter, loseLetter := top, bottom
	if bottomLen > topLen {
		winner = perm.Bottom
		winLetter, loseLetter = bottom, top
	}

	q, err := t.p.RauzyMove(winner)
	if err != nil {
		return nil, err
	}

	lengths := slices.Clone(t.lengths)
	winRank, _ := t.p.Alphabet().Rank(winLetter)
	loseRank, _ := t.p.Alphabet().Rank(loseLetter)
	lengths[winRank] -= lengths[loseRank]

	return &IntervalExchange{p: q, lengths: lengths}, nil
}

// Normalize rescales the lengths to the given total.
// Returns ErrBadTotal for a non-positive total.
func (t *IntervalExchange) Normalize(total float64) (*IntervalExchange, error) {
	if total <= 0 {
		return nil, ErrBadTotal
	}

	factor := total / t.Length()
	lengths := slices.Clone(t.lengths)
	for i := range lengths {
		lengths[i] *= factor
	}

	return &IntervalExchange{p: t.p, lengths: lengths}, nil
}

// String renders the transformation in the shape
//
//	Interval exchange transformation of [0, L[ with permutation
//	<top row>
//	<bottom row>
func (t *IntervalExchange) String() string {
	return fmt.Sprintf("Interval exchange transformation of [0, %g[ with permutation\n%s",
		t.Length(), t.p)
}

// lengthOf returns the length assigned to a letter.
func (t *IntervalExchange) lengthOf(letter perm.Label) float64 {
	rank, _ := t.p.Alphabet().Rank(letter)

	return t.lengths[rank]
}

// startOf returns the left endpoint of the letter's interval in the given
// row order.
func (t *IntervalExchange) startOf(row perm.Row, letter perm.Label) float64 {
	var start float64
	for _, l := range row {
		if l == letter {
			break
		}
		start += t.lengthOf(l)
	}

	return start
}

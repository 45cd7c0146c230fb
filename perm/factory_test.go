package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intex/alphabet"
	"github.com/katalvlaran/intex/perm"
)

// ------------------------------------------------------------------------
// 1. Exchange: fresh builds and validation.
// ------------------------------------------------------------------------

func TestExchange_Basic(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"})
	require.NoError(t, err)

	assert.Equal(t, perm.KindExchange, p.Kind())
	assert.False(t, p.IsReduced())
	assert.False(t, p.IsFlipped())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"a", "b", "c"}, p.Alphabet().Letters())
	assert.Equal(t, "a b c\nc b a", p.String())
}

func TestExchange_LetterOnceViolation(t *testing.T) {
	// 'a' occurs twice in the bottom row.
	_, err := perm.Exchange([]string{"a b c", "c a a"}, perm.WithReduced(true))
	assert.ErrorIs(t, err, perm.ErrLetterOnce)
	assert.ErrorIs(t, err, perm.ErrInvalid)
}

func TestExchange_FlipMembership(t *testing.T) {
	_, err := perm.Exchange([]string{"a", "a"}, perm.WithFlips("b"), perm.WithReduced(true))
	assert.ErrorIs(t, err, perm.ErrBadFlips)

	p, err := perm.Exchange([]string{"a b c", "c b a"}, perm.WithFlips("a", "c"))
	require.NoError(t, err)
	assert.True(t, p.IsFlipped())
	assert.Equal(t, []perm.Label{"a", "c"}, p.Flips())
	assert.Equal(t, "-a  b -c\n-c  b -a", p.String())
}

func TestExchange_EmptyInput(t *testing.T) {
	_, err := perm.Exchange("\n")
	assert.ErrorIs(t, err, perm.ErrEmptyRows)
}

func TestExchange_ExplicitAlphabet(t *testing.T) {
	abc, err := alphabet.New("c", "b", "a")
	require.NoError(t, err)

	p, err := perm.Exchange([]string{"a b c", "c b a"}, perm.WithAlphabet(abc))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, p.Alphabet().Letters())

	short, err := alphabet.New("a", "b")
	require.NoError(t, err)
	_, err = perm.Exchange([]string{"a b c", "c b a"}, perm.WithAlphabet(short))
	assert.ErrorIs(t, err, perm.ErrAlphabetCover)
}

// ------------------------------------------------------------------------
// 2. Exchange: conversion fast paths.
// ------------------------------------------------------------------------

func TestExchange_CloneOnNoChange(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"})
	require.NoError(t, err)

	q, err := perm.Exchange(p)
	require.NoError(t, err)
	assert.True(t, q.Equal(p))
	assert.NotSame(t, p, q)
}

func TestExchange_ReductionRequest(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"})
	require.NoError(t, err)

	q, err := perm.Exchange(p, perm.WithReduced(true))
	require.NoError(t, err)
	assert.True(t, q.Equal(p.Reduced()))
	assert.True(t, q.IsReduced())

	// Reduction of an already-reduced permutation is a value-equal clone.
	r, err := perm.Exchange(q, perm.WithReduced(true))
	require.NoError(t, err)
	assert.True(t, r.Equal(q))
}

func TestExchange_ReducedBackToLabelled(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"}, perm.WithReduced(true))
	require.NoError(t, err)

	q, err := perm.Exchange(p, perm.WithReduced(false))
	require.NoError(t, err)
	assert.False(t, q.IsReduced())
	assert.Equal(t, p.List(), q.List())
}

func TestExchange_FlipRequestRebuilds(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"})
	require.NoError(t, err)

	q, err := perm.Exchange(p, perm.WithFlips("a"))
	require.NoError(t, err)
	assert.True(t, q.IsFlipped())
	assert.False(t, q.IsReduced())
	assert.Equal(t, p.List(), q.List())

	// Reduced input with flips: reduction preserved when unset.
	r, err := perm.Exchange(p.Reduced(), perm.WithFlips("a"))
	require.NoError(t, err)
	assert.True(t, r.IsFlipped())
	assert.True(t, r.IsReduced())
}

func TestExchange_FlippedRoundTrip(t *testing.T) {
	p, err := perm.Exchange([]string{"a", "a"}, perm.WithFlips("a"), perm.WithReduced(true))
	require.NoError(t, err)

	q, err := perm.Exchange(p)
	require.NoError(t, err)
	assert.True(t, q.Equal(p))
}

// ------------------------------------------------------------------------
// 3. Generalized: fresh builds, degeneracy and admissibility.
// ------------------------------------------------------------------------

func TestGeneralized_Basic(t *testing.T) {
	p, err := perm.Generalized([]string{"a b b", "c c a"})
	require.NoError(t, err)

	assert.Equal(t, perm.KindGeneralized, p.Kind())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "a b b\nc c a", p.String())
}

func TestGeneralized_LetterTwiceViolation(t *testing.T) {
	// 'c' appears three times in total.
	_, err := perm.Generalized([]string{"a b c a", "d c c b"}, perm.WithFlips("a", "b"))
	assert.ErrorIs(t, err, perm.ErrLetterTwice)
	assert.ErrorIs(t, err, perm.ErrInvalid)
}

func TestGeneralized_FlipListConstraint(t *testing.T) {
	// Valid rows, but 'e' is not a letter of the permutation.
	_, err := perm.Generalized([]string{"a b c a", "d c d b"}, perm.WithFlips("e", "b"))
	assert.ErrorIs(t, err, perm.ErrFlipList)
	assert.ErrorIs(t, err, perm.ErrConstraint)
}

func TestGeneralized_DegenerateDelegatesToExchange(t *testing.T) {
	p, err := perm.Generalized([]string{"a b", "b a"})
	require.NoError(t, err)

	q, err := perm.Exchange([]string{"a b", "b a"})
	require.NoError(t, err)

	assert.Equal(t, perm.KindExchange, p.Kind())
	assert.True(t, p.Equal(q))
}

func TestGeneralized_NoAdmissibleLength(t *testing.T) {
	// Stripping the letters that occur once in the top row empties the top
	// residual but not the bottom one.
	_, err := perm.Generalized([]string{"a b", "a b c c"})
	assert.ErrorIs(t, err, perm.ErrNoAdmissible)
}

func TestGeneralized_ConversionMirrorsExchange(t *testing.T) {
	p, err := perm.Generalized([]string{"a b b", "c c a"})
	require.NoError(t, err)

	q, err := perm.Generalized(p)
	require.NoError(t, err)
	assert.True(t, q.Equal(p))

	r, err := perm.Generalized(p, perm.WithReduced(true))
	require.NoError(t, err)
	assert.True(t, r.Equal(p.Reduced()))

	f, err := perm.Generalized(p, perm.WithFlips("b"))
	require.NoError(t, err)
	assert.True(t, f.IsFlipped())
	assert.Equal(t, p.List(), f.List())
}

func TestGeneralized_OtherKindFallsThrough(t *testing.T) {
	// A generalized permutation handed to Exchange is re-validated as a
	// fresh build, and fails the once-per-row invariant.
	p, err := perm.Generalized([]string{"a b b", "c c a"})
	require.NoError(t, err)

	_, err = perm.Exchange(p)
	assert.ErrorIs(t, err, perm.ErrLetterOnce)
}

// ------------------------------------------------------------------------
// 4. Value semantics.
// ------------------------------------------------------------------------

func TestReducedEquality_UpToRelabelling(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"}, perm.WithReduced(true))
	require.NoError(t, err)
	q, err := perm.Exchange([]string{"x y z", "z y x"}, perm.WithReduced(true))
	require.NoError(t, err)

	assert.True(t, p.Equal(q))

	// Labelled permutations keep letter identity.
	lp, err := perm.Exchange([]string{"a b c", "c b a"})
	require.NoError(t, err)
	lq, err := perm.Exchange([]string{"x y z", "z y x"})
	require.NoError(t, err)
	assert.False(t, lp.Equal(lq))
}

func TestClone_IsDetached(t *testing.T) {
	p, err := perm.Exchange([]string{"a b", "b a"})
	require.NoError(t, err)

	q := p.Clone()
	rows := q.List()
	rows[0][0] = "z"

	assert.Equal(t, "a b\nb a", p.String())
	assert.True(t, q.Equal(p))
}

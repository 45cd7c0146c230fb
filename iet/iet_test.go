package iet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intex/iet"
	"github.com/katalvlaran/intex/perm"
)

// ------------------------------------------------------------------------
// 1. Construction and length validation.
// ------------------------------------------------------------------------

func TestNew_MappingLengths(t *testing.T) {
	tr, err := iet.New([]string{"a b c", "c b a"}, map[perm.Label]any{
		"a": 1, "b": 0.4523, "c": "2.8",
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0.4523, 2.8}, tr.Lengths())
	assert.InDelta(t, 4.2523, tr.Length(), 1e-12)
}

func TestNew_PositionalLengths(t *testing.T) {
	tr, err := iet.New([]string{"a b", "b a"}, []float64{1, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, tr.Lengths())
}

func TestNew_BadNumberOfLengths(t *testing.T) {
	_, err := iet.New([]string{"a b c", "c b a"}, []float64{0.123, 2})
	assert.ErrorIs(t, err, iet.ErrBadLengthCount)
}

func TestNew_NonPositiveLength(t *testing.T) {
	_, err := iet.New([]string{"a b c", "c b a"}, []float64{0.1, -2, 2})
	assert.ErrorIs(t, err, iet.ErrNonPositiveLength)

	// A mapping that misses a letter leaves a zero at its rank.
	_, err = iet.New([]string{"a b c", "c b a"}, map[perm.Label]float64{"a": 1})
	assert.ErrorIs(t, err, iet.ErrNonPositiveLength)
}

func TestNew_UnconvertibleLength(t *testing.T) {
	_, err := iet.New([]string{"a b c", "c b a"}, []any{0.1, "rho", 2})
	assert.ErrorIs(t, err, iet.ErrBadLengthValue)
	assert.ErrorContains(t, err, "rho")
}

func TestNew_MappingUnknownLetter(t *testing.T) {
	_, err := iet.New([]string{"a b", "b a"}, map[perm.Label]int{"a": 1, "z": 2})
	assert.ErrorIs(t, err, iet.ErrLengthLetter)
}

func TestNew_LengthsShape(t *testing.T) {
	_, err := iet.New([]string{"a b", "b a"}, 42)
	assert.ErrorIs(t, err, iet.ErrLengthsShape)
}

func TestNew_FlippedRejected(t *testing.T) {
	p, err := perm.Exchange([]string{"a b", "b a"}, perm.WithFlips("a"))
	require.NoError(t, err)

	_, err = iet.New(p, []float64{1, 1})
	assert.ErrorIs(t, err, iet.ErrFlippedPermutation)
}

func TestNew_CoercesReducedAndRaw(t *testing.T) {
	p, err := perm.Exchange([]string{"a b", "b a"}, perm.WithReduced(true))
	require.NoError(t, err)

	tr, err := iet.New(p, []float64{1, 2})
	require.NoError(t, err)
	assert.False(t, tr.Permutation().IsReduced())

	// Generalized permutations cannot carry an interval exchange map.
	g, err := perm.Generalized([]string{"a b b", "c c a"})
	require.NoError(t, err)
	_, err = iet.New(g, []float64{1, 1, 1})
	assert.ErrorIs(t, err, perm.ErrLetterOnce)
}

// ------------------------------------------------------------------------
// 2. Evaluation.
// ------------------------------------------------------------------------

func TestEvaluation(t *testing.T) {
	// a occupies [0,1) on top and [2,3) on the bottom; b the reverse.
	tr, err := iet.New([]string{"a b", "b a"}, []float64{1, 2})
	require.NoError(t, err)

	l, err := tr.InWhichInterval(0.5)
	require.NoError(t, err)
	assert.Equal(t, "a", l)

	l, err = tr.InWhichInterval(2.9)
	require.NoError(t, err)
	assert.Equal(t, "b", l)

	y, err := tr.At(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-12)

	y, err = tr.At(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-12)

	_, err = tr.At(3)
	assert.ErrorIs(t, err, iet.ErrPointRange)
	_, err = tr.At(-0.1)
	assert.ErrorIs(t, err, iet.ErrPointRange)
}

// ------------------------------------------------------------------------
// 3. Rauzy induction and normalization.
// ------------------------------------------------------------------------

func TestRauzyMove_SingleStep(t *testing.T) {
	tr, err := iet.New([]string{"a b c", "c b a"}, []float64{0.123, 0.4, 2})
	require.NoError(t, err)

	s, err := tr.RauzyMove(1)
	require.NoError(t, err)

	// Top interval c wins over bottom interval a and absorbs its length.
	assert.Equal(t, "a b c\nc a b", s.Permutation().String())
	assert.InDelta(t, 2-0.123, s.Lengths()[2], 1e-12)
	assert.InDelta(t, tr.Length()-0.123, s.Length(), 1e-12)

	// Renormalizing restores the original total length.
	n, err := s.Normalize(tr.Length())
	require.NoError(t, err)
	assert.InDelta(t, tr.Length(), n.Length(), 1e-12)
}

func TestRauzyMove_SelfSimilarGoldenRatio(t *testing.T) {
	phi := (1 + math.Sqrt(5)) / 2
	tr, err := iet.New([]string{"a b", "b a"}, []float64{phi, 1})
	require.NoError(t, err)

	s, err := tr.RauzyMove(2)
	require.NoError(t, err)
	assert.True(t, s.Permutation().Equal(tr.Permutation()))

	n, err := s.Normalize(tr.Length())
	require.NoError(t, err)
	for i, l := range tr.Lengths() {
		assert.InDelta(t, l, n.Lengths()[i], 1e-9)
	}
}

func TestRauzyMove_Undefined(t *testing.T) {
	tr, err := iet.New([]string{"a b", "b a"}, []float64{1, 1})
	require.NoError(t, err)

	_, err = tr.RauzyMove(1)
	assert.ErrorIs(t, err, iet.ErrEqualLengths)

	_, err = tr.RauzyMove(0)
	assert.ErrorIs(t, err, iet.ErrIterations)
}

func TestNormalize_BadTotal(t *testing.T) {
	tr, err := iet.New([]string{"a b", "b a"}, []float64{1, 2})
	require.NoError(t, err)

	_, err = tr.Normalize(0)
	assert.ErrorIs(t, err, iet.ErrBadTotal)
}

func TestString(t *testing.T) {
	tr, err := iet.New([]string{"a b", "b a"}, []float64{1, 4})
	require.NoError(t, err)

	assert.Equal(t,
		"Interval exchange transformation of [0, 5[ with permutation\na b\nb a",
		tr.String())
}

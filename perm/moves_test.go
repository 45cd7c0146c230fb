package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intex/perm"
)

func mustExchange(t *testing.T, top, bottom string) *perm.Permutation {
	t.Helper()
	p, err := perm.Exchange([]string{top, bottom})
	require.NoError(t, err)

	return p
}

func mustGeneralized(t *testing.T, top, bottom string) *perm.Permutation {
	t.Helper()
	p, err := perm.Generalized([]string{top, bottom})
	require.NoError(t, err)

	return p
}

// ------------------------------------------------------------------------
// 1. Right moves on exchange permutations.
// ------------------------------------------------------------------------

func TestRauzyMove_Exchange(t *testing.T) {
	p := mustExchange(t, "a b c", "c b a")

	q, err := p.RauzyMove(perm.Top)
	require.NoError(t, err)
	assert.Equal(t, "a b c\nc a b", q.String())

	r, err := p.RauzyMove(perm.Bottom)
	require.NoError(t, err)
	assert.Equal(t, "a c b\nc b a", r.String())

	// The top move from (a b c / c a b) leads back to the start.
	back, err := q.RauzyMove(perm.Top)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))

	// The bottom move at (a b c / c a b) is a self-loop.
	loop, err := q.RauzyMove(perm.Bottom)
	require.NoError(t, err)
	assert.True(t, loop.Equal(q))
}

func TestRauzyMoveLeft_Exchange(t *testing.T) {
	p := mustExchange(t, "a b c", "c b a")

	q, err := p.RauzyMoveLeft(perm.Top)
	require.NoError(t, err)
	assert.Equal(t, "a b c\nb c a", q.String())
}

func TestRauzyMove_Undefined(t *testing.T) {
	// Both rows end with the same letter.
	p := mustExchange(t, "a b", "a b")
	_, err := p.RauzyMove(perm.Top)
	assert.ErrorIs(t, err, perm.ErrMoveUndefined)
}

func TestRauzyMove_FlippedRejected(t *testing.T) {
	p, err := perm.Exchange([]string{"a b c", "c b a"}, perm.WithFlips("a"))
	require.NoError(t, err)

	_, err = p.RauzyMove(perm.Top)
	assert.ErrorIs(t, err, perm.ErrFlippedMove)
}

// ------------------------------------------------------------------------
// 2. Right moves on generalized permutations (linear involutions).
// ------------------------------------------------------------------------

func TestRauzyMove_Generalized(t *testing.T) {
	p := mustGeneralized(t, "a b b", "c c a")

	// Bottom winner: the twin of 'a' sits in the loser's row; self-loop.
	q, err := p.RauzyMove(perm.Bottom)
	require.NoError(t, err)
	assert.True(t, q.Equal(p))

	// Top winner: the twin of 'b' sits in the winner's own row, so the
	// loser 'a' migrates to the top row, left of the twin.
	r, err := p.RauzyMove(perm.Top)
	require.NoError(t, err)
	assert.Equal(t, "a a b b\nc c", r.String())

	// Continuing with bottom winners walks the known chain.
	s, err := r.RauzyMove(perm.Bottom)
	require.NoError(t, err)
	assert.Equal(t, "a a b\nb c c", s.String())

	u, err := s.RauzyMove(perm.Bottom)
	require.NoError(t, err)
	assert.Equal(t, "a a\nb b c c", u.String())
}

func TestRauzyMove_GeneralizedUndefined(t *testing.T) {
	// The top move of (a a b b / c c) would leave no admissible length.
	p := mustGeneralized(t, "a a b b", "c c")
	_, err := p.RauzyMove(perm.Top)
	assert.ErrorIs(t, err, perm.ErrMoveUndefined)

	// Same for the bottom move of (a a / b b c c).
	q := mustGeneralized(t, "a a", "b b c c")
	_, err = q.RauzyMove(perm.Bottom)
	assert.ErrorIs(t, err, perm.ErrMoveUndefined)
}

// ------------------------------------------------------------------------
// 3. Inversions.
// ------------------------------------------------------------------------

func TestInversions(t *testing.T) {
	p := mustExchange(t, "a b c", "c b a")

	assert.Equal(t, "c b a\na b c", p.TopBottomInverse().String())
	assert.Equal(t, "c b a\na b c", p.LeftRightInverse().String())

	// This permutation is symmetric under the half-turn.
	assert.True(t, p.Symmetric().Equal(p))

	q := mustExchange(t, "a b c", "c a b")
	assert.Equal(t, "b a c\nc b a", q.Symmetric().String())
}

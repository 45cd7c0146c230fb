package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intex/alphabet"
	"github.com/katalvlaran/intex/perm"
)

func collect(t *testing.T, opts ...perm.IterOption) []*perm.Permutation {
	t.Helper()
	seq, err := perm.Iterate(opts...)
	require.NoError(t, err)

	var out []*perm.Permutation
	for p := range seq {
		out = append(out, p)
	}

	return out
}

func TestIterate_IrreducibleCount(t *testing.T) {
	abc, err := alphabet.New("a", "b", "c")
	require.NoError(t, err)

	ps := collect(t, perm.Size(3), perm.OverAlphabet(abc), perm.ReducedForm())
	require.Len(t, ps, 3)
	assert.Equal(t, "a b c\nb c a", ps[0].String())
	assert.Equal(t, "a b c\nc a b", ps[1].String())
	assert.Equal(t, "a b c\nc b a", ps[2].String())
	assert.True(t, ps[0].IsReduced())
}

func TestIterate_DefaultAlphabet(t *testing.T) {
	ps := collect(t, perm.Size(2))
	require.Len(t, ps, 1)
	assert.Equal(t, "1 2\n2 1", ps[0].String())
	assert.False(t, ps[0].IsReduced())
}

func TestIterate_AllPermutations(t *testing.T) {
	ps := collect(t, perm.Size(3), perm.AllPermutations())
	assert.Len(t, ps, 6)
}

func TestIterate_SizeFromAlphabet(t *testing.T) {
	ab, err := alphabet.New("a", "b")
	require.NoError(t, err)

	ps := collect(t, perm.OverAlphabet(ab))
	require.Len(t, ps, 1)
	assert.Equal(t, "a b\nb a", ps[0].String())
}

func TestIterate_Restartable(t *testing.T) {
	seq, err := perm.Iterate(perm.Size(4))
	require.NoError(t, err)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
		if second == 2 {
			break // early break must not poison later iterations
		}
	}
	third := 0
	for range seq {
		third++
	}

	assert.Equal(t, first, third)
	assert.Equal(t, 13, first) // 4! minus the 11 reducible ones
}

func TestIterate_Errors(t *testing.T) {
	_, err := perm.Iterate()
	assert.ErrorIs(t, err, perm.ErrNoSize)

	ab, err := alphabet.New("a", "b")
	require.NoError(t, err)
	_, err = perm.Iterate(perm.Size(3), perm.OverAlphabet(ab))
	assert.ErrorIs(t, err, perm.ErrAlphabetSize)
}

package alphabet

import (
	"errors"
	"strconv"
)

// Sentinel errors for alphabet construction and lookup.
var (
	// ErrDuplicateLetter indicates an explicit letter list contains a repeat.
	ErrDuplicateLetter = errors.New("alphabet: duplicate letter")

	// ErrUnknownLetter indicates a rank lookup for a letter outside the set.
	ErrUnknownLetter = errors.New("alphabet: letter not in alphabet")

	// ErrRankRange indicates a letter lookup for a rank outside [0, Cardinality).
	ErrRankRange = errors.New("alphabet: rank out of range")
)

// Alphabet is an ordered, duplicate-free set of letters with O(1) rank
// lookup. The zero value is not usable; build one with New, FromRows or
// Default. Alphabets are immutable after construction.
type Alphabet struct {
	letters []string
	rank    map[string]int
}

// New builds an Alphabet from an explicit ordered letter list.
// Returns ErrDuplicateLetter if the same letter occurs twice.
func New(letters ...string) (*Alphabet, error) {
	a := &Alphabet{
		letters: make([]string, 0, len(letters)),
		rank:    make(map[string]int, len(letters)),
	}
	for _, l := range letters {
		if _, seen := a.rank[l]; seen {
			return nil, ErrDuplicateLetter
		}
		a.rank[l] = len(a.letters)
		a.letters = append(a.letters, l)
	}

	return a, nil
}

// FromRows infers an Alphabet from one or more label rows, keeping letters
// in first-occurrence order (rows scanned left to right, in the order given).
// Repeated occurrences are collapsed, so generalized-permutation rows, where
// every letter appears twice, are accepted as-is.
func FromRows(rows ...[]string) *Alphabet {
	a := &Alphabet{rank: make(map[string]int)}
	for _, row := range rows {
		for _, l := range row {
			if _, seen := a.rank[l]; seen {
				continue
			}
			a.rank[l] = len(a.letters)
			a.letters = append(a.letters, l)
		}
	}

	return a
}

// Default builds the numeric alphabet "1", "2", ..., "n".
// A non-positive n yields the empty alphabet.
func Default(n int) *Alphabet {
	a := &Alphabet{
		letters: make([]string, 0, max(n, 0)),
		rank:    make(map[string]int, max(n, 0)),
	}
	for i := 1; i <= n; i++ {
		l := strconv.Itoa(i)
		a.rank[l] = len(a.letters)
		a.letters = append(a.letters, l)
	}

	return a
}

// Rank returns the position of the letter in the alphabet order.
// Returns ErrUnknownLetter if the letter is not a member.
func (a *Alphabet) Rank(letter string) (int, error) {
	r, ok := a.rank[letter]
	if !ok {
		return 0, ErrUnknownLetter
	}

	return r, nil
}

// Contains reports whether the letter belongs to the alphabet.
func (a *Alphabet) Contains(letter string) bool {
	_, ok := a.rank[letter]

	return ok
}

// Letter returns the letter at the given rank.
// Returns ErrRankRange if rank is outside [0, Cardinality).
func (a *Alphabet) Letter(rank int) (string, error) {
	if rank < 0 || rank >= len(a.letters) {
		return "", ErrRankRange
	}

	return a.letters[rank], nil
}

// Cardinality returns the number of letters.
func (a *Alphabet) Cardinality() int { return len(a.letters) }

// Letters returns a copy of the letters in alphabet order.
func (a *Alphabet) Letters() []string {
	out := make([]string, len(a.letters))
	copy(out, a.letters)

	return out
}

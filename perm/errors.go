package perm

import (
	"errors"
	"fmt"
)

// Category sentinels for the three failure classes. Condition sentinels
// below wrap exactly one of them, so callers can errors.Is either level.
var (
	// ErrFormat indicates the input shape cannot be normalized into two rows.
	ErrFormat = errors.New("perm: invalid input format")

	// ErrInvalid indicates structurally well-formed input that violates a
	// combinatorial invariant.
	ErrInvalid = errors.New("perm: combinatorial invariant violated")

	// ErrConstraint indicates an option or value of an unusable type or form.
	ErrConstraint = errors.New("perm: invalid option or value")
)

// Condition sentinels raised by normalization.
var (
	// ErrTwoLines indicates a string input with a line count other than two.
	ErrTwoLines = fmt.Errorf("%w: string must contain two lines", ErrFormat)

	// ErrNotAccepted indicates an input type with no defined two-row reading.
	ErrNotAccepted = fmt.Errorf("%w: argument not accepted", ErrFormat)

	// ErrTwoParts indicates a container that cannot be split in two rows.
	ErrTwoParts = fmt.Errorf("%w: argument cannot be split in two parts", ErrFormat)
)

// Condition sentinels raised by the factories.
var (
	// ErrEmptyRows indicates a normalized input with no letters at all.
	ErrEmptyRows = fmt.Errorf("%w: permutation has no letters", ErrInvalid)

	// ErrBadFlips indicates a flip letter outside the permutation's letters
	// (exchange factory).
	ErrBadFlips = fmt.Errorf("%w: flips contains not valid letters", ErrInvalid)

	// ErrFlipList indicates a flip letter outside the permutation's letters
	// (generalized factory; kept as a distinct condition and category).
	ErrFlipList = fmt.Errorf("%w: the flip list is not valid", ErrConstraint)

	// ErrLetterOnce indicates an exchange row pair where some letter does not
	// appear exactly once in each row.
	ErrLetterOnce = fmt.Errorf("%w: letters must appear once in each interval", ErrInvalid)

	// ErrLetterTwice indicates a generalized row pair where some letter does
	// not appear exactly twice in total.
	ErrLetterTwice = fmt.Errorf("%w: letters must reappear twice", ErrInvalid)

	// ErrNoAdmissible indicates a generalized row pair admitting no length
	// assignment (exactly one residual row empties after stripping letters
	// that occur once in the top row).
	ErrNoAdmissible = fmt.Errorf("%w: there is no admissible length", ErrInvalid)

	// ErrAlphabetCover indicates an explicit alphabet missing some letter of
	// the row pair.
	ErrAlphabetCover = fmt.Errorf("%w: alphabet does not cover all letters", ErrInvalid)
)

// Condition sentinels raised by induction moves and enumeration.
var (
	// ErrMoveUndefined indicates a Rauzy move that is not defined on the
	// permutation (equal end letters, or a result with no admissible length).
	ErrMoveUndefined = errors.New("perm: rauzy move not defined for this permutation")

	// ErrFlippedMove indicates a Rauzy move requested on a flipped
	// permutation; flip-aware induction is not implemented.
	ErrFlippedMove = errors.New("perm: rauzy moves on flipped permutations are not supported")

	// ErrNoSize indicates an enumeration request with neither a size nor an
	// alphabet to take the size from.
	ErrNoSize = errors.New("perm: must specify an alphabet or a number of intervals")

	// ErrAlphabetSize indicates an enumeration alphabet smaller than the
	// requested number of intervals.
	ErrAlphabetSize = errors.New("perm: alphabet smaller than the number of intervals")
)

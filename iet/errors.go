package iet

import "errors"

var (
	// ErrFlippedPermutation indicates a flipped permutation; interval
	// exchange maps over flipped data are not supported.
	ErrFlippedPermutation = errors.New("iet: flipped permutations are not supported")

	// ErrBadLengthCount indicates a length vector whose size differs from
	// the number of letters.
	ErrBadLengthCount = errors.New("iet: bad number of lengths")

	// ErrBadLengthValue indicates a length value that cannot be converted
	// to a float.
	ErrBadLengthValue = errors.New("iet: unable to convert length to a float")

	// ErrNonPositiveLength indicates a zero or negative length.
	ErrNonPositiveLength = errors.New("iet: lengths must be positive")

	// ErrLengthLetter indicates a mapping entry for a letter outside the
	// permutation's alphabet.
	ErrLengthLetter = errors.New("iet: length assigned to a letter outside the permutation")

	// ErrLengthsShape indicates a lengths argument that is neither a
	// mapping nor a sequence.
	ErrLengthsShape = errors.New("iet: lengths must be a mapping or a sequence")

	// ErrEqualLengths indicates Rauzy induction on a transformation whose
	// two rightmost intervals have equal length; the move is not defined.
	ErrEqualLengths = errors.New("iet: rauzy induction undefined, rightmost intervals have equal length")

	// ErrIterations indicates a non-positive induction iteration count.
	ErrIterations = errors.New("iet: iterations must be positive")

	// ErrPointRange indicates a point outside the domain [0, L).
	ErrPointRange = errors.New("iet: point outside the transformation domain")

	// ErrBadTotal indicates a non-positive normalization target.
	ErrBadTotal = errors.New("iet: normalization total must be positive")
)

// Package iet provides interval exchange transformations: piecewise
// translations of [0, L) determined by an exchange permutation and a
// vector of positive interval lengths.
//
// Overview:
//
//   - New resolves a permutation argument (an existing perm.Permutation or
//     any raw shape perm.Exchange accepts) and a length assignment (a
//     mapping letter → value, or a positional sequence) into a validated
//     transformation. Mapping values land at the alphabet rank of their
//     key; unassigned ranks default to zero and then fail the positivity
//     check.
//   - At evaluates the transformation, InWhichInterval locates a point.
//   - RauzyMove performs right Rauzy-Veech induction on the pair
//     (permutation, lengths): the longer of the two rightmost intervals
//     wins and absorbs the loser's length.
//   - Normalize rescales the lengths to a chosen total.
//
// Length values may be given as float64, int, decimal.Decimal or numeric
// strings; strings are parsed exactly through shopspring/decimal before
// the float conversion.
//
// Errors (sentinel):
//
//	– ErrFlippedPermutation if the permutation carries flips.
//	– ErrBadLengthCount     if the vector size differs from the letter count.
//	– ErrBadLengthValue     if a value cannot be converted to a float.
//	– ErrNonPositiveLength  if a length is zero or negative.
//	– ErrLengthLetter       if a mapping assigns to an unknown letter.
//	– ErrLengthsShape       if lengths is neither a mapping nor a sequence.
//	– ErrEqualLengths       if induction meets two equal rightmost intervals.
//	– ErrIterations         if an induction iteration count is not positive.
//	– ErrPointRange         if an evaluated point lies outside [0, L).
//	– ErrBadTotal           if a normalization target is not positive.
//
// Transformations are immutable; every operation returns a new value.
package iet

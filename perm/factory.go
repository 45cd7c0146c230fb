package perm

import (
	"github.com/katalvlaran/intex/alphabet"
)

// Exchange builds a validated exchange permutation from any accepted input
// shape. Every distinct letter must appear exactly once in each row.
//
// When data is already a *Permutation of exchange kind the call takes a
// cheap conversion path: a Clone when no structural change is requested,
// the Reduced counterpart when only reduction is requested, and a full
// rebuild from the row pair whenever flips are requested. A permutation of
// the other kind falls through to a fresh build on its rows, which fails
// the once-per-row invariant unless the datum is degenerate.
//
// Errors: ErrFormat conditions from normalization; ErrBadFlips and
// ErrLetterOnce (both ErrInvalid) from validation.
func Exchange(data any, opts ...Option) (*Permutation, error) {
	o := newOptions(opts)

	if p, ok := data.(*Permutation); ok {
		if p.Kind() == KindExchange {
			return convertExchange(p, o)
		}
		data = p.List()
	}

	rows, err := TwoRows(data)
	if err != nil {
		return nil, err
	}

	return buildExchange(rows, o.reducedOr(false), o.flips, o.alphabet)
}

// buildExchange runs the fresh-build validation sequence and dispatches
// through the variant table.
func buildExchange(rows [2]Row, reduced bool, flips []Label, alph *alphabet.Alphabet) (*Permutation, error) {
	if err := validateNonEmpty(rows); err != nil {
		return nil, err
	}
	if err := validateFlips(rows, flips, ErrBadFlips); err != nil {
		return nil, err
	}
	if err := validateOncePerRow(rows); err != nil {
		return nil, err
	}
	resolved, err := resolveAlphabet(rows, alph)
	if err != nil {
		return nil, err
	}

	tag := Variant{Kind: KindExchange, Reduced: reduced, Flipped: len(flips) > 0}

	return construct(tag, rows, resolved, flips), nil
}

// convertExchange handles an input that is already an exchange
// permutation. Flip requests always force a full rebuild from the row
// pair; incremental conversion is deliberately not attempted.
func convertExchange(p *Permutation, o *Options) (*Permutation, error) {
	alph := o.alphabet
	if alph == nil {
		alph = p.Alphabet()
	}

	if !p.IsReduced() {
		if len(o.flips) == 0 {
			if !o.reducedOr(false) {
				return p.Clone(), nil
			}

			return p.Reduced(), nil
		}

		return buildExchange(p.List(), o.reducedOr(false), o.flips, alph)
	}

	// Reduced input: an unset reduction flag preserves the variant.
	if len(o.flips) == 0 {
		if o.reducedOr(true) {
			return p.Clone(), nil
		}

		return buildExchange(p.List(), false, nil, alph)
	}

	return buildExchange(p.List(), o.reducedOr(true), o.flips, alph)
}

// Generalized builds a validated generalized permutation (linear
// involution) from any accepted input shape. Every distinct letter must
// appear exactly twice across the two rows, and the split must admit a
// length assignment.
//
// A datum whose residual rows both empty out is an exchange permutation in
// disguise and is delegated to Exchange with the same options. A split
// where exactly one residual row empties admits no length assignment and
// fails with ErrNoAdmissible.
//
// Errors: ErrFormat conditions from normalization; ErrFlipList
// (ErrConstraint), ErrLetterTwice and ErrNoAdmissible (ErrInvalid) from
// validation.
func Generalized(data any, opts ...Option) (*Permutation, error) {
	o := newOptions(opts)

	if p, ok := data.(*Permutation); ok {
		if p.Kind() == KindGeneralized {
			return convertGeneralized(p, o)
		}
		data = p.List()
	}

	rows, err := TwoRows(data)
	if err != nil {
		return nil, err
	}

	return buildGeneralized(rows, o)
}

// buildGeneralized runs the fresh-build validation sequence, including the
// degeneracy and admissibility checks, and dispatches through the variant
// table.
func buildGeneralized(rows [2]Row, o *Options) (*Permutation, error) {
	if err := validateNonEmpty(rows); err != nil {
		return nil, err
	}
	if err := validateFlips(rows, o.flips, ErrFlipList); err != nil {
		return nil, err
	}
	if err := validateTwiceTotal(rows); err != nil {
		return nil, err
	}

	top, bottom := residualRows(rows)
	if len(top) == 0 && len(bottom) == 0 {
		// Degenerate: a plain exchange permutation in disguise.
		return buildExchange(rows, o.reducedOr(false), o.flips, o.alphabet)
	}
	if len(top) == 0 || len(bottom) == 0 {
		return nil, validatorErrorf("buildGeneralized", ErrNoAdmissible)
	}

	resolved, err := resolveAlphabet(rows, o.alphabet)
	if err != nil {
		return nil, err
	}

	tag := Variant{Kind: KindGeneralized, Reduced: o.reducedOr(false), Flipped: len(o.flips) > 0}

	return construct(tag, rows, resolved, o.flips), nil
}

// convertGeneralized mirrors convertExchange against the generalized
// variant family.
func convertGeneralized(p *Permutation, o *Options) (*Permutation, error) {
	alph := o.alphabet
	if alph == nil {
		alph = p.Alphabet()
	}

	rebuild := func(reduced bool, flips []Label) (*Permutation, error) {
		ro := &Options{flips: flips, alphabet: alph}
		ro.reduced = &reduced

		return buildGeneralized(p.List(), ro)
	}

	if !p.IsReduced() {
		if len(o.flips) == 0 {
			if !o.reducedOr(false) {
				return p.Clone(), nil
			}

			return p.Reduced(), nil
		}

		return rebuild(o.reducedOr(false), o.flips)
	}

	if len(o.flips) == 0 {
		if o.reducedOr(true) {
			return p.Clone(), nil
		}

		return rebuild(false, nil)
	}

	return rebuild(o.reducedOr(true), o.flips)
}

// Package perm core types: labels, rows, variant tags and factory options.
package perm

import (
	"github.com/katalvlaran/intex/alphabet"
)

// Label identifies one interval. Integer letters coming from
// group-theoretic input are rendered in decimal.
type Label = string

// Row is an ordered sequence of labels along one side of the interval.
type Row = []Label

// Kind discriminates exchange permutations from generalized permutations
// (linear involutions).
type Kind uint8

const (
	// KindExchange marks a permutation where every letter appears exactly
	// once in each row.
	KindExchange Kind = iota

	// KindGeneralized marks a linear-involution permutation where every
	// letter appears exactly twice across both rows.
	KindGeneralized
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	if k == KindExchange {
		return "exchange"
	}

	return "generalized"
}

// Variant is the 3-way tag selecting one of the eight concrete permutation
// variants. Dispatch goes through a tag-indexed constructor table, never
// through type hierarchy tests.
type Variant struct {
	// Reduced selects the reduced representation (letter identity dropped,
	// only relative order retained) instead of the labelled one.
	Reduced bool

	// Flipped marks a permutation carrying a non-empty flip set.
	Flipped bool

	// Kind selects exchange vs generalized.
	Kind Kind
}

// Winner selects which row provides the winning letter of a Rauzy move.
type Winner uint8

const (
	// Top makes the top row's outer letter the winner.
	Top Winner = iota

	// Bottom makes the bottom row's outer letter the winner.
	Bottom
)

// String returns the conventional one-letter move name.
func (w Winner) String() string {
	if w == Top {
		return "t"
	}

	return "b"
}

// Options configures the Exchange and Generalized factories.
//
// reduced is tri-state: nil means "unset" — fresh builds default to the
// labelled representation and conversions preserve the input's variant.
type Options struct {
	reduced  *bool
	flips    []Label
	alphabet *alphabet.Alphabet
}

// Option is a functional option for the permutation factories.
type Option func(*Options)

// WithReduced selects the reduced (true) or labelled (false) representation.
// Leaving it unset preserves the input's variant on conversion and defaults
// fresh builds to labelled.
func WithReduced(reduced bool) Option {
	return func(o *Options) {
		o.reduced = &reduced
	}
}

// WithFlips marks the given letters as flipped (orientation-reversed).
// Every letter must occur in the permutation being built.
func WithFlips(flips ...Label) Option {
	return func(o *Options) {
		o.flips = append(o.flips, flips...)
	}
}

// WithAlphabet fixes the letter order used for ranks. The alphabet must
// cover every letter of the row pair. Default: first-occurrence order.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(o *Options) {
		o.alphabet = a
	}
}

// newOptions applies opts over the defaults (reduced unset, no flips,
// inferred alphabet).
func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// reducedOr returns the tri-state reduced flag, with def for "unset".
func (o *Options) reducedOr(def bool) bool {
	if o.reduced == nil {
		return def
	}

	return *o.reduced
}

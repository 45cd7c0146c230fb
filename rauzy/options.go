package rauzy

import (
	"github.com/katalvlaran/intex/alphabet"
)

// Options configures New. The zero set of operations is never built: the
// right induction moves are enabled unless WithoutRightInduction is given
// together with at least one other operation.
type Options struct {
	reduced            bool
	alphabet           *alphabet.Alphabet
	rightInduction     bool
	leftInduction      bool
	leftRightInversion bool
	topBottomInversion bool
	symmetry           bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithReduced builds the diagram over reduced permutations, so every
// labelling of the same shape collapses into one vertex.
func WithReduced() Option {
	return func(o *Options) { o.reduced = true }
}

// WithAlphabet fixes the letter order of the vertex permutations.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(o *Options) { o.alphabet = a }
}

// WithoutRightInduction drops the two right Rauzy moves.
func WithoutRightInduction() Option {
	return func(o *Options) { o.rightInduction = false }
}

// WithLeftInduction enables the two left Rauzy moves.
func WithLeftInduction() Option {
	return func(o *Options) { o.leftInduction = true }
}

// WithLeftRightInversion enables the edge reversing both rows.
func WithLeftRightInversion() Option {
	return func(o *Options) { o.leftRightInversion = true }
}

// WithTopBottomInversion enables the edge exchanging the two rows.
func WithTopBottomInversion() Option {
	return func(o *Options) { o.topBottomInversion = true }
}

// WithSymmetry enables the half-turn edge.
func WithSymmetry() Option {
	return func(o *Options) { o.symmetry = true }
}

// newOptions applies opts over the defaults: labelled vertices, right
// induction only.
func newOptions(opts []Option) *Options {
	o := &Options{rightInduction: true}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// moves returns the enabled edge operations in their fixed expansion
// order. Falls back to right induction if every operation was disabled.
func (o *Options) moves() []Move {
	var ms []Move
	if o.rightInduction {
		ms = append(ms, TopRight, BottomRight)
	}
	if o.leftInduction {
		ms = append(ms, TopLeft, BottomLeft)
	}
	if o.leftRightInversion {
		ms = append(ms, LeftRightInverse)
	}
	if o.topBottomInversion {
		ms = append(ms, TopBottomInverse)
	}
	if o.symmetry {
		ms = append(ms, HalfTurn)
	}
	if len(ms) == 0 {
		ms = []Move{TopRight, BottomRight}
	}

	return ms
}

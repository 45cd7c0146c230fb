// Package intex is a toolkit for the combinatorics of interval exchange
// transformations and linear involutions — from raw two-row input to
// validated permutations, Rauzy diagrams and the interval maps themselves.
//
// 🚀 What is intex?
//
//	A small, focused library that brings together:
//		• Input normalization: strings, row pairs, group-theoretic permutations
//		• Validated permutations: labelled/reduced × flipped/unflipped ×
//		  exchange/linear-involution, dispatched through one variant table
//		• Rauzy induction: right/left moves, inversions, symmetry
//		• Rauzy diagrams: closure under the enabled operations, path queries
//		• Interval exchange maps: evaluation, induction, normalization
//		• Enumeration: lazy iteration over permutations of a given size
//
// ✨ Why choose intex?
//
//   - Strict validation – malformed input fails fast with sentinel errors;
//     no partially constructed object is ever returned
//   - Value semantics – clone-on-convert, equality up to relabelling for
//     reduced permutations
//   - Pure Go – no cgo; the library itself is side-effect free
//
// Everything is organized under five packages:
//
//	alphabet/ — ordered letter sets with rank lookup
//	perm/     — normalization, factories, induction moves, enumeration
//	iet/      — interval exchange transformations over a permutation
//	rauzy/    — Rauzy diagrams and paths
//	cmd/intex — command-line interface over the library
//
// Quick two-row example:
//
//	    a b c
//	    c b a
//
//	is the order-reversing exchange of three intervals; its Rauzy diagram
//	has exactly three vertices.
//
//	go get github.com/katalvlaran/intex
package intex

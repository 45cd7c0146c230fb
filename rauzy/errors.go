package rauzy

import "errors"

var (
	// ErrFlippedDiagram is returned by New for permutations with flips.
	ErrFlippedDiagram = errors.New("rauzy: diagrams over flipped permutations are not built")
	// ErrNotInDiagram is returned by Path when the start permutation is not
	// a vertex of the diagram.
	ErrNotInDiagram = errors.New("rauzy: permutation is not a vertex of the diagram")
	// ErrMoveDisabled is returned by Path for a step whose operation was
	// not enabled when the diagram was built.
	ErrMoveDisabled = errors.New("rauzy: move is not enabled in the diagram")
	// ErrEdgeUndefined is returned by Path for a step along a move that is
	// undefined at the current vertex.
	ErrEdgeUndefined = errors.New("rauzy: move is undefined at the vertex")
	// ErrComposeMismatch is returned by Compose when the end of the first
	// path differs from the start of the second.
	ErrComposeMismatch = errors.New("rauzy: paths do not meet")
)

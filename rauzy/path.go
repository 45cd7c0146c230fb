package rauzy

import (
	"slices"
	"strings"

	"github.com/katalvlaran/intex/perm"
)

// Path is a walk along diagram edges from a start vertex. Besides the end
// vertex it records the winner letter of every induction step, which is
// what loop fullness is measured on.
type Path struct {
	d       *Diagram
	start   *perm.Permutation
	end     *perm.Permutation
	moves   []Move
	winners []perm.Label
}

// Path builds the walk starting at the given vertex and following the
// moves in order. The start must be a vertex of the diagram
// (ErrNotInDiagram), every move must be enabled (ErrMoveDisabled) and
// every edge defined (ErrEdgeUndefined).
func (d *Diagram) Path(start *perm.Permutation, moves ...Move) (*Path, error) {
	cur, ok := d.vertices[start.Key()]
	if !ok {
		return nil, ErrNotInDiagram
	}

	p := &Path{d: d, start: cur, end: cur}
	for _, m := range moves {
		if !d.enabled(m) {
			return nil, ErrMoveDisabled
		}
		next, ok := d.Neighbor(cur, m)
		if !ok {
			return nil, ErrEdgeUndefined
		}
		p.moves = append(p.moves, m)
		if m.isInduction() {
			p.winners = append(p.winners, m.winnerOf(cur))
		}
		cur = next
	}
	p.end = cur

	return p, nil
}

// Start returns the first vertex of the path.
func (p *Path) Start() *perm.Permutation { return p.start }

// End returns the last vertex of the path.
func (p *Path) End() *perm.Permutation { return p.end }

// Moves returns a copy of the edge sequence.
func (p *Path) Moves() []Move { return slices.Clone(p.moves) }

// Len returns the number of edges.
func (p *Path) Len() int { return len(p.moves) }

// Winners returns the winner letters of the induction steps, in step
// order. Inversion steps contribute nothing.
func (p *Path) Winners() []perm.Label { return slices.Clone(p.winners) }

// IsLoop reports whether the path ends at its start vertex.
func (p *Path) IsLoop() bool { return p.start.Key() == p.end.Key() }

// IsFull reports whether the path is a loop on which every letter wins at
// least once.
func (p *Path) IsFull() bool {
	if !p.IsLoop() {
		return false
	}

	won := make(map[perm.Label]struct{}, len(p.winners))
	for _, l := range p.winners {
		won[l] = struct{}{}
	}

	return len(won) == p.start.Len()
}

// Compose appends q to p. The end of p must equal the start of q
// (ErrComposeMismatch); both paths must come from the same diagram.
func (p *Path) Compose(q *Path) (*Path, error) {
	if p.d != q.d || p.end.Key() != q.start.Key() {
		return nil, ErrComposeMismatch
	}

	return &Path{
		d:       p.d,
		start:   p.start,
		end:     q.end,
		moves:   append(slices.Clone(p.moves), q.moves...),
		winners: append(slices.Clone(p.winners), q.winners...),
	}, nil
}

// String renders the edge codes of the path separated by dots, or "empty
// path" for the trivial walk.
func (p *Path) String() string {
	if len(p.moves) == 0 {
		return "empty path"
	}

	codes := make([]string, len(p.moves))
	for i, m := range p.moves {
		codes[i] = m.String()
	}

	return strings.Join(codes, ".")
}

package rauzy

import (
	"fmt"

	"github.com/katalvlaran/intex/perm"
)

// Diagram is the closure of a base permutation under a fixed set of edge
// operations. Vertices are stored by canonical key in discovery order;
// edges record, per vertex, the target of every defined move.
type Diagram struct {
	moves    []Move
	order    []string
	vertices map[string]*perm.Permutation
	edges    map[string]map[Move]string
}

// New builds the Rauzy diagram of the given permutation. data may be an
// existing *perm.Permutation or any raw shape perm.Generalized accepts;
// a pair where every letter occurs once per row lands in the exchange
// family. Flipped permutations are rejected with ErrFlippedDiagram.
//
// By default the diagram is labelled and closed under the two right
// Rauzy moves only; see Options for the other operations.
func New(data any, opts ...Option) (*Diagram, error) {
	o := newOptions(opts)

	var permOpts []perm.Option
	if o.reduced {
		permOpts = append(permOpts, perm.WithReduced(true))
	}
	if o.alphabet != nil {
		permOpts = append(permOpts, perm.WithAlphabet(o.alphabet))
	}
	base, err := perm.Generalized(data, permOpts...)
	if err != nil {
		return nil, err
	}
	if base.IsFlipped() {
		return nil, ErrFlippedDiagram
	}

	d := &Diagram{
		moves:    o.moves(),
		vertices: make(map[string]*perm.Permutation),
		edges:    make(map[string]map[Move]string),
	}
	d.explore(base)

	return d, nil
}

// explore runs the breadth-first closure from the base vertex. Moves that
// are undefined at a vertex contribute no edge.
func (d *Diagram) explore(base *perm.Permutation) {
	d.add(base)

	for i := 0; i < len(d.order); i++ {
		key := d.order[i]
		p := d.vertices[key]
		for _, m := range d.moves {
			// Vertices are unflipped, so the only failure mode here is an
			// undefined move.
			q, err := m.apply(p)
			if err != nil {
				continue
			}
			target := q.Key()
			if _, seen := d.vertices[target]; !seen {
				d.add(q)
			}
			d.edges[key][m] = target
		}
	}
}

// add registers a new vertex.
func (d *Diagram) add(p *perm.Permutation) {
	key := p.Key()
	d.order = append(d.order, key)
	d.vertices[key] = p
	d.edges[key] = make(map[Move]string)
}

// Cardinality returns the number of vertices.
func (d *Diagram) Cardinality() int { return len(d.order) }

// Contains reports whether the permutation is a vertex of the diagram.
// Reduced diagrams match up to relabelling.
func (d *Diagram) Contains(p *perm.Permutation) bool {
	_, ok := d.vertices[p.Key()]

	return ok
}

// Vertices returns the vertex permutations in discovery order, the base
// permutation first.
func (d *Diagram) Vertices() []*perm.Permutation {
	out := make([]*perm.Permutation, len(d.order))
	for i, key := range d.order {
		out[i] = d.vertices[key]
	}

	return out
}

// Neighbor returns the target of the given move at p, or false when the
// edge is undefined or p is not a vertex.
func (d *Diagram) Neighbor(p *perm.Permutation, m Move) (*perm.Permutation, bool) {
	es, ok := d.edges[p.Key()]
	if !ok {
		return nil, false
	}
	target, ok := es[m]
	if !ok {
		return nil, false
	}

	return d.vertices[target], true
}

// enabled reports whether the move belongs to the diagram's operation set.
func (d *Diagram) enabled(m Move) bool {
	for _, e := range d.moves {
		if e == m {
			return true
		}
	}

	return false
}

// String renders the diagram in the shape "Rauzy diagram with N
// permutations".
func (d *Diagram) String() string {
	n := len(d.order)
	if n == 1 {
		return "Rauzy diagram with 1 permutation"
	}

	return fmt.Sprintf("Rauzy diagram with %d permutations", n)
}

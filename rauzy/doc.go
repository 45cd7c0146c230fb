// Package rauzy builds Rauzy diagrams: oriented graphs whose vertices are
// permutations and whose edges are induction and inversion operations.
//
// Overview:
//
//   - New builds the generalized permutation for the input (delegating the
//     degenerate case to the exchange family) and explores the closure of
//     that vertex under the enabled operations, breadth-first.
//   - By default only right Rauzy induction (top and bottom winner) is
//     enabled. Left induction, left-right inversion, top-bottom inversion
//     and the half-turn symmetry enlarge the diagram.
//   - Vertices are keyed by value: labelled permutations by their literal
//     rows, reduced permutations up to relabelling, so a reduced diagram
//     collapses every labelling of the same shape into one vertex.
//   - Path walks explicit edges from a start vertex and answers loop and
//     fullness queries; a loop is full when every letter wins at least
//     once along it.
//
// Moves that are undefined at a vertex (equal outer letters, or a result
// with no admissible length) simply contribute no edge.
//
// Complexity: building a diagram is O(|V| · ops · n) for n letters — each
// vertex is expanded once per enabled operation.
//
// Errors (sentinel):
//
//	– ErrFlippedDiagram   diagrams over flipped permutations are not built.
//	– ErrNotInDiagram     a path start that is not a vertex.
//	– ErrMoveDisabled     a path step using an operation the diagram was
//	                      built without.
//	– ErrEdgeUndefined    a path step along a move with no edge.
//	– ErrComposeMismatch  composing paths whose endpoints do not meet.
//
// Example usage:
//
//	d, err := rauzy.New([]string{"a b c", "c b a"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Cardinality()) // 3
package rauzy

package rauzy

import (
	"github.com/katalvlaran/intex/perm"
)

// Move identifies one edge operation of a diagram.
type Move uint8

const (
	// TopRight is the right Rauzy move with top winner.
	TopRight Move = iota
	// BottomRight is the right Rauzy move with bottom winner.
	BottomRight
	// TopLeft is the left Rauzy move with top winner.
	TopLeft
	// BottomLeft is the left Rauzy move with bottom winner.
	BottomLeft
	// LeftRightInverse reverses both rows.
	LeftRightInverse
	// TopBottomInverse exchanges the two rows.
	TopBottomInverse
	// HalfTurn exchanges and reverses the two rows.
	HalfTurn
)

// String returns the one- or two-letter edge code: lowercase for right
// moves, uppercase for left moves, "lr", "tb" and "s" for the inversions.
func (m Move) String() string {
	switch m {
	case TopRight:
		return "t"
	case BottomRight:
		return "b"
	case TopLeft:
		return "T"
	case BottomLeft:
		return "B"
	case LeftRightInverse:
		return "lr"
	case TopBottomInverse:
		return "tb"
	case HalfTurn:
		return "s"
	default:
		return "?"
	}
}

// isInduction reports whether the move is a Rauzy move, as opposed to an
// inversion. Only induction steps have a winner letter.
func (m Move) isInduction() bool {
	return m == TopRight || m == BottomRight || m == TopLeft || m == BottomLeft
}

// winnerOf returns the letter that wins when the move is applied at p.
// Inversions have no winner and return the empty label.
func (m Move) winnerOf(p *perm.Permutation) perm.Label {
	rows := p.List()
	switch m {
	case TopRight:
		return rows[0][len(rows[0])-1]
	case BottomRight:
		return rows[1][len(rows[1])-1]
	case TopLeft:
		return rows[0][0]
	case BottomLeft:
		return rows[1][0]
	default:
		return ""
	}
}

// apply performs the move at p. Inversions always succeed; induction
// steps may be undefined, in which case the permutation error is passed
// through.
func (m Move) apply(p *perm.Permutation) (*perm.Permutation, error) {
	switch m {
	case TopRight:
		return p.RauzyMove(perm.Top)
	case BottomRight:
		return p.RauzyMove(perm.Bottom)
	case TopLeft:
		return p.RauzyMoveLeft(perm.Top)
	case BottomLeft:
		return p.RauzyMoveLeft(perm.Bottom)
	case LeftRightInverse:
		return p.LeftRightInverse(), nil
	case TopBottomInverse:
		return p.TopBottomInverse(), nil
	default:
		return p.Symmetric(), nil
	}
}

// Package perm induction moves: right and left Rauzy moves for both
// exchange and linear-involution permutations, plus the three inversion
// operations that extended Rauzy diagrams are closed under.
package perm

import (
	"slices"
)

// RauzyMove applies one right-side Rauzy induction step and returns the
// resulting permutation. The winner row's outer letter wins; the other
// row's outer letter loses and is reinserted next to the winner's twin
// occurrence:
//
//   - twin in the opposite row: the loser goes immediately after it;
//   - twin in the winner's own row (linear involutions only): the loser
//     migrates to that row, immediately before the twin.
//
// The move is undefined (ErrMoveUndefined) when both rows end with the
// same letter or when the result would admit no length assignment.
// Flipped permutations are rejected with ErrFlippedMove.
func (p *Permutation) RauzyMove(winner Winner) (*Permutation, error) {
	return p.move(winner, false)
}

// RauzyMoveLeft applies one left-side Rauzy induction step: the mirror of
// RauzyMove, acting on the leftmost letters of both rows.
func (p *Permutation) RauzyMoveLeft(winner Winner) (*Permutation, error) {
	return p.move(winner, true)
}

// move is the shared body of the right and left moves. The left move is
// conjugation of the right move by the left-right inversion.
func (p *Permutation) move(winner Winner, left bool) (*Permutation, error) {
	if p.tag.Flipped {
		return nil, ErrFlippedMove
	}

	rows := p.List()
	if left {
		slices.Reverse(rows[0])
		slices.Reverse(rows[1])
	}

	win, lose := rows[winner], rows[1-winner]
	if len(win) == 0 || len(lose) == 0 {
		return nil, ErrMoveUndefined
	}
	alpha := win[len(win)-1]
	beta := lose[len(lose)-1]
	if alpha == beta {
		return nil, ErrMoveUndefined
	}

	shortened := lose[:len(lose)-1]
	if j := slices.Index(win[:len(win)-1], alpha); j >= 0 {
		// Twin on the winner's row: the loser changes rows.
		rows[winner] = slices.Insert(slices.Clone(win), j, beta)
		rows[1-winner] = slices.Clone(shortened)
	} else if k := slices.Index(shortened, alpha); k >= 0 {
		rows[1-winner] = slices.Insert(slices.Clone(shortened), k+1, beta)
	} else {
		return nil, ErrMoveUndefined
	}

	if left {
		slices.Reverse(rows[0])
		slices.Reverse(rows[1])
	}

	if len(rows[0]) == 0 || len(rows[1]) == 0 {
		return nil, ErrMoveUndefined
	}
	if p.tag.Kind == KindGeneralized {
		top, bottom := residualRows(rows)
		if (len(top) == 0) != (len(bottom) == 0) {
			return nil, ErrMoveUndefined
		}
	}

	return construct(p.tag, rows, p.alph, nil), nil
}

// TopBottomInverse returns the permutation with the two rows exchanged.
func (p *Permutation) TopBottomInverse() *Permutation {
	rows := p.List()
	rows[0], rows[1] = rows[1], rows[0]

	return construct(p.tag, rows, p.alph, p.Flips())
}

// LeftRightInverse returns the permutation with both rows reversed.
func (p *Permutation) LeftRightInverse() *Permutation {
	rows := p.List()
	slices.Reverse(rows[0])
	slices.Reverse(rows[1])

	return construct(p.tag, rows, p.alph, p.Flips())
}

// Symmetric returns the half-turn of the permutation: rows exchanged and
// reversed.
func (p *Permutation) Symmetric() *Permutation {
	rows := p.List()
	rows[0], rows[1] = rows[1], rows[0]
	slices.Reverse(rows[0])
	slices.Reverse(rows[1])

	return construct(p.tag, rows, p.alph, p.Flips())
}

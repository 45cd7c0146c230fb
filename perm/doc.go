// Package perm turns loosely-typed descriptions of an interval exchange
// into validated permutation objects, and implements the Rauzy induction
// operations on them.
//
// Overview:
//
//   - TwoRows normalizes every accepted input shape (a two-line string, a
//     pair of rows or strings, a group-theoretic one-line permutation) into
//     a canonical pair of label rows.
//   - Exchange builds an exchange permutation: every letter appears exactly
//     once in each row.
//   - Generalized builds a generalized permutation (linear involution):
//     every letter appears exactly twice across both rows, subject to the
//     admissibility split; the degenerate case that is really an exchange
//     permutation is detected and delegated.
//   - Iterate enumerates all permutations of a given size lazily.
//
// A single Permutation struct covers all eight concrete variants.  The
// variant is a value tag — {labelled|reduced} × {unflipped|flipped} ×
// {exchange|generalized} — and each tag is bound to its constructor in a
// package-level table, so dispatch never tests a type hierarchy.
//
// Both factories accept an existing *Permutation and take a cheap path:
// a value-semantics Clone when no structural change is requested, the
// Reduced counterpart when only reduction is requested, and a full rebuild
// from the row pair whenever flips are requested.  Callers must not rely
// on object identity, only on value equality (Equal).
//
// Error handling (sentinel):
//
// Three category sentinels mirror the failure taxonomy —
//
//	– ErrFormat     input shape cannot be normalized into two rows.
//	– ErrInvalid    well-formed input violates a combinatorial invariant.
//	– ErrConstraint an option or value has an unusable type or form.
//
// Every condition sentinel (ErrTwoLines, ErrLetterOnce, ErrLetterTwice,
// ErrNoAdmissible, ...) wraps its category, so errors.Is matches either
// the precise condition or the whole class.
//
// Concurrency:
//
// All functions are pure and synchronous; Permutation values are immutable
// after construction and safe to share between goroutines.
//
// Example usage:
//
//	p, err := perm.Exchange("a b c\nc b a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	q, _ := p.RauzyMove(perm.Top)
//	fmt.Println(q) // a b c / c a b
package perm

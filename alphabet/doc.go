// Package alphabet provides ordered, duplicate-free letter sets with
// constant-time rank lookup.
//
// An Alphabet fixes the order of the letters appearing in a permutation.
// That order is what turns a mapping-style length assignment into a
// positional vector (each letter contributes at its rank) and what makes
// reduced permutations comparable up to relabelling.
//
// Construction:
//
//   - New(letters...) builds an alphabet from an explicit letter order and
//     rejects duplicates.
//   - FromRows(rows...) infers an alphabet from one or more label rows in
//     first-occurrence order.
//   - Default(n) builds the alphabet "1", "2", ..., "n".
//
// Complexity:
//
//	– Rank, Letter, Contains: O(1)
//	– New, FromRows:          O(total letters)
//
// Errors (sentinel):
//
//	– ErrDuplicateLetter if an explicit letter list repeats a letter.
//	– ErrUnknownLetter   if Rank is asked about a letter outside the set.
//	– ErrRankRange       if Letter is asked about an out-of-range rank.
//
// Alphabets are immutable after construction and safe for concurrent reads.
package alphabet

package perm

import (
	"slices"
	"strconv"
	"strings"
)

// GroupPerm is a group-theoretic permutation in one-line notation: the
// i-th entry (0-based) is the image of i+1. It normalizes to the row pair
// (1 .. n, images).
type GroupPerm []int

// rows synthesizes the canonical two-row reading of a one-line permutation.
func (g GroupPerm) rows() [2]Row {
	top := make(Row, len(g))
	bottom := make(Row, len(g))
	for i, image := range g {
		top[i] = strconv.Itoa(i + 1)
		bottom[i] = strconv.Itoa(image)
	}

	return [2]Row{top, bottom}
}

// TwoRows normalizes any accepted input shape into a canonical pair of
// label rows. Accepted shapes:
//
//   - a string of exactly two lines, each split on whitespace;
//   - a GroupPerm (or []int) in one-line notation;
//   - a container of length two — []string (each entry split on
//     whitespace), [][]Label or [2]Row (rows copied as-is), or []any
//     mixing both element forms;
//   - a container of length one whose sole element is itself a GroupPerm
//     or a length-two pair.
//
// Anything else fails with ErrNotAccepted; containers of the wrong arity
// fail with ErrTwoParts; strings with the wrong line count fail with
// ErrTwoLines. TwoRows never mutates its input and always returns fresh
// row slices.
func TwoRows(data any) ([2]Row, error) {
	var none [2]Row

	switch v := data.(type) {
	case string:
		lines := strings.Split(v, "\n")
		if len(lines) != 2 {
			return none, ErrTwoLines
		}

		return [2]Row{strings.Fields(lines[0]), strings.Fields(lines[1])}, nil

	case GroupPerm:
		return v.rows(), nil

	case []int:
		return GroupPerm(v).rows(), nil

	case [2]Row:
		return [2]Row{slices.Clone(v[0]), slices.Clone(v[1])}, nil

	case []string:
		if len(v) == 0 || len(v) > 2 {
			return none, ErrTwoParts
		}
		if len(v) == 1 {
			// A lone string is neither a permutation nor a pair.
			return none, ErrTwoParts
		}

		return [2]Row{strings.Fields(v[0]), strings.Fields(v[1])}, nil

	case [][]Label:
		if len(v) == 0 || len(v) > 2 {
			return none, ErrTwoParts
		}
		if len(v) == 1 {
			return none, ErrTwoParts
		}

		return [2]Row{slices.Clone(v[0]), slices.Clone(v[1])}, nil

	case []any:
		return twoRowsFromMixed(v)

	default:
		return none, ErrNotAccepted
	}
}

// twoRowsFromMixed handles []any containers: a pair of row-like elements,
// or a single element that is itself a permutation or a pair.
func twoRowsFromMixed(v []any) ([2]Row, error) {
	var none [2]Row

	switch len(v) {
	case 2:
		top, err := asRow(v[0])
		if err != nil {
			return none, err
		}
		bottom, err := asRow(v[1])
		if err != nil {
			return none, err
		}

		return [2]Row{top, bottom}, nil

	case 1:
		switch inner := v[0].(type) {
		case GroupPerm:
			return inner.rows(), nil
		case []int:
			return GroupPerm(inner).rows(), nil
		case []any:
			if len(inner) != 2 {
				return none, ErrTwoParts
			}

			return twoRowsFromMixed(inner)
		case []string:
			if len(inner) != 2 {
				return none, ErrTwoParts
			}

			return TwoRows(inner)
		default:
			return none, ErrNotAccepted
		}

	default:
		return none, ErrTwoParts
	}
}

// asRow reads one element of a pair container: strings split on
// whitespace, label sequences copied as-is.
func asRow(elem any) (Row, error) {
	switch r := elem.(type) {
	case string:
		return strings.Fields(r), nil
	case Row:
		return slices.Clone(r), nil
	default:
		return nil, ErrNotAccepted
	}
}

// Length-assignment resolution: mapping or positional input, exact string
// parsing through decimal, positivity enforcement.
package iet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/intex/perm"
)

// resolveLengths turns any accepted lengths argument into a positional
// vector aligned with the permutation's alphabet ranks.
func resolveLengths(p *perm.Permutation, lengths any) ([]float64, error) {
	values, positional, err := lengthValues(lengths)
	if err != nil {
		return nil, err
	}

	if positional != nil {
		if len(positional) != p.Len() {
			return nil, ErrBadLengthCount
		}

		return coerceAll(positional)
	}

	// Mapping form: place each value at the rank of its key; ranks never
	// written stay zero and fail the positivity check below.
	vec := make([]any, p.Len())
	for i := range vec {
		vec[i] = 0.0
	}
	for letter, v := range values {
		rank, rankErr := p.Alphabet().Rank(letter)
		if rankErr != nil {
			return nil, fmt.Errorf("%w: %q", ErrLengthLetter, letter)
		}
		vec[rank] = v
	}

	return coerceAll(vec)
}

// lengthValues normalizes the lengths argument to either a mapping
// (values != nil) or a positional slice (positional != nil).
func lengthValues(lengths any) (values map[perm.Label]any, positional []any, err error) {
	switch v := lengths.(type) {
	case map[perm.Label]any:
		return v, nil, nil
	case map[perm.Label]float64:
		values = make(map[perm.Label]any, len(v))
		for k, x := range v {
			values[k] = x
		}

		return values, nil, nil
	case map[perm.Label]int:
		values = make(map[perm.Label]any, len(v))
		for k, x := range v {
			values[k] = x
		}

		return values, nil, nil
	case map[perm.Label]decimal.Decimal:
		values = make(map[perm.Label]any, len(v))
		for k, x := range v {
			values[k] = x
		}

		return values, nil, nil
	case []any:
		return nil, v, nil
	case []float64:
		positional = make([]any, len(v))
		for i, x := range v {
			positional[i] = x
		}

		return nil, positional, nil
	case []int:
		positional = make([]any, len(v))
		for i, x := range v {
			positional[i] = x
		}

		return nil, positional, nil
	case []string:
		positional = make([]any, len(v))
		for i, x := range v {
			positional[i] = x
		}

		return nil, positional, nil
	case []decimal.Decimal:
		positional = make([]any, len(v))
		for i, x := range v {
			positional[i] = x
		}

		return nil, positional, nil
	default:
		return nil, nil, ErrLengthsShape
	}
}

// coerceAll converts every entry to a float and enforces positivity.
func coerceAll(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		x, err := coerce(v)
		if err != nil {
			return nil, err
		}
		if x <= 0 {
			return nil, ErrNonPositiveLength
		}
		out[i] = x
	}

	return out, nil
}

// coerce converts one length value to a float. Strings are parsed exactly
// through decimal first, so "0.4523" survives the trip unchanged.
func coerce(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case decimal.Decimal:
		return x.InexactFloat64(), nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return 0, fmt.Errorf("%w: unable to convert %q to a float", ErrBadLengthValue, x)
		}

		return d.InexactFloat64(), nil
	default:
		return 0, fmt.Errorf("%w: unable to convert %v to a float", ErrBadLengthValue, v)
	}
}

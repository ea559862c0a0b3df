package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
)

// SidedValue holds one value per side of a box, expanded from the
// 1/2/3/4 values form of the margin, padding and border-width
// shorthands.
type SidedValue[T Numeric] struct {
	Top, Right, Bottom, Left T
}

// UniformSided sets all four sides to `value`.
func UniformSided[T Numeric](value T) SidedValue[T] {
	return SidedValue[T]{Top: value, Right: value, Bottom: value, Left: value}
}

// ParseSided reads one to four whitespace separated values of T,
// greedily : it stops at the first value that fails to parse. The
// values are expanded per the CSS shorthand rule, one value for all
// four sides, two for vertical then horizontal, three for top,
// horizontal, bottom. A fifth value is left in the input, for the
// caller to reject as unexhausted.
func ParseSided[T Numeric](it *parser.TokensIter, parse func(*parser.TokensIter) (T, error)) (SidedValue[T], error) {
	first, err := parse(it)
	if err != nil {
		return SidedValue[T]{}, err
	}
	values := []T{first}
	for len(values) < 4 {
		save := it.Save()
		value, err := parse(it)
		if err != nil {
			it.Restore(save)
			break
		}
		values = append(values, value)
	}
	switch len(values) {
	case 1:
		return UniformSided(values[0]), nil
	case 2:
		return SidedValue[T]{Top: values[0], Bottom: values[0], Right: values[1], Left: values[1]}, nil
	case 3:
		return SidedValue[T]{Top: values[0], Right: values[1], Left: values[1], Bottom: values[2]}, nil
	default:
		return SidedValue[T]{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	}
}

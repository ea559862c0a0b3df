package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// Number is a specified bare <number>.
type Number Fl

func (n Number) IsZero() bool     { return n == 0 }
func (n Number) IsNegative() bool { return n < 0 }
func (n Number) IsInfinite() bool { return utils.IsInf(Fl(n)) }

// ParseNumber reads a bare <number> in the allowed range.
func ParseNumber(it *parser.TokensIter, allowed AllowedValues) (Number, error) {
	token := it.NextSignificant()
	switch token := token.(type) {
	case parser.Number:
		if !allowed.Accepts(token.Value) {
			return 0, errOutOfRange(token)
		}
		return Number(token.Value), nil
	case parser.FunctionBlock:
		return 0, errFunction(token)
	case nil:
		return 0, errEndOfInput(it, "<number>")
	default:
		return 0, errUnexpectedToken(token, "<number>")
	}
}

// NonNegative tags a value whose parse rejected negative input.
type NonNegative[T Numeric] struct {
	Value T
}

func (n NonNegative[T]) IsZero() bool     { return n.Value.IsZero() }
func (n NonNegative[T]) IsNegative() bool { return false }
func (n NonNegative[T]) IsInfinite() bool { return n.Value.IsInfinite() }

// NonNegativeNumber is a bare <number>, zero or positive.
type NonNegativeNumber = NonNegative[Number]

// ParseNonNegativeNumber reads a bare <number>, rejecting
// negative values.
func ParseNonNegativeNumber(it *parser.TokensIter) (NonNegativeNumber, error) {
	value, err := ParseNumber(it, AllowedNonNegative)
	if err != nil {
		return NonNegativeNumber{}, err
	}
	return NonNegativeNumber{Value: value}, nil
}

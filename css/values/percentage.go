package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// Percentage is a specified <percentage>, stored as a fraction :
// 1.0 is the serialized "100%".
type Percentage struct {
	// Clamping, when set, is applied by Get. It is only carried by
	// percentages computed from calc() expressions : the parser
	// rejects out of range literals instead.
	Clamping *AllowedValues
	Value    Fl
}

// Get returns the fraction, clamped if the percentage is tagged
// as calc() born.
func (p Percentage) Get() Fl {
	if p.Clamping != nil {
		return p.Clamping.Clamp(p.Value)
	}
	return p.Value
}

// AsPercent returns the serialized form of the fraction : 100 for 100%.
func (p Percentage) AsPercent() Fl { return p.Get() * 100 }

func (p Percentage) IsZero() bool     { return p.Get() == 0 }
func (p Percentage) IsNegative() bool { return p.Get() < 0 }
func (p Percentage) IsInfinite() bool { return utils.IsInf(p.Get()) }

// Scale returns the percentage scaled by `factor`.
func (p Percentage) Scale(factor Fl) Percentage {
	return Percentage{Value: p.Value * factor, Clamping: p.Clamping}
}

// Reverse returns the complement of the fraction : 30% becomes 70%.
func (p Percentage) Reverse() Percentage {
	return Percentage{Value: 1 - p.Get()}
}

// LimitToHundred caps the fraction at 1.0.
func (p Percentage) LimitToHundred() Percentage {
	return Percentage{Value: utils.MinF(1, p.Get())}
}

func (Percentage) isLengthPercentage() {}

// ParsePercentage reads a <percentage> whose fraction is in the
// allowed range.
func ParsePercentage(it *parser.TokensIter, allowed AllowedValues) (Percentage, error) {
	token := it.NextSignificant()
	switch token := token.(type) {
	case parser.Percentage:
		fraction := token.Value / 100
		if !allowed.Accepts(fraction) {
			return Percentage{}, errOutOfRange(token)
		}
		return Percentage{Value: fraction}, nil
	case parser.FunctionBlock:
		return Percentage{}, errFunction(token)
	case nil:
		return Percentage{}, errEndOfInput(it, "<percentage>")
	default:
		return Percentage{}, errUnexpectedToken(token, "<percentage>")
	}
}

package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
)

// Ratio is a specified <ratio> of two non-negative numbers, like
// "16 / 9". The second component defaults to one when omitted.
type Ratio struct {
	A, B NonNegativeNumber
}

// NewRatio builds a ratio from raw components.
func NewRatio(a, b Fl) Ratio {
	return Ratio{A: NonNegativeNumber{Value: Number(a)}, B: NonNegativeNumber{Value: Number(b)}}
}

// IsDegenerate reports whether either component is zero or infinite.
// Degenerate ratios behave as "auto" in aspect-ratio.
func (r Ratio) IsDegenerate() bool {
	return r.A.IsZero() || r.A.IsInfinite() || r.B.IsZero() || r.B.IsInfinite()
}

// Quotient returns A divided by B.
func (r Ratio) Quotient() Fl { return Fl(r.A.Value) / Fl(r.B.Value) }

func (r Ratio) IsZero() bool     { return r.A.IsZero() }
func (r Ratio) IsNegative() bool { return false }
func (r Ratio) IsInfinite() bool { return r.A.IsInfinite() || r.B.IsInfinite() }

// RatioOrAuto adds the "auto" keyword to [Ratio].
type RatioOrAuto = MaybeAuto[Ratio]

// ParseRatio reads "<number> [ / <number> ]", both non-negative.
func ParseRatio(it *parser.TokensIter) (Ratio, error) {
	a, err := ParseNonNegativeNumber(it)
	if err != nil {
		return Ratio{}, err
	}
	b := NonNegativeNumber{Value: 1}
	save := it.Save()
	if lit, ok := it.NextSignificant().(parser.Literal); ok && lit.Value == "/" {
		b, err = ParseNonNegativeNumber(it)
		if err != nil {
			return Ratio{}, err
		}
	} else {
		it.Restore(save)
	}
	return Ratio{A: a, B: b}, nil
}

// ParseRatioOrAuto reads a <ratio> or the "auto" keyword.
func ParseRatioOrAuto(it *parser.TokensIter) (RatioOrAuto, error) {
	return ParseMaybeAuto(it, ParseRatio)
}

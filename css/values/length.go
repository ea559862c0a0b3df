package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// NoCalcLength is one of the specified length kinds : absolute,
// font relative or viewport relative. calc() expressions are
// deliberately not supported.
type NoCalcLength interface {
	Numeric
	// ToComputedPx resolves the length to pixels under `ctx`.
	ToComputedPx(ctx *Context) Fl
	isNoCalcLength()
	isLengthPercentage()
}

// LengthPercentage is either a [NoCalcLength] or a [Percentage].
type LengthPercentage interface {
	Numeric
	isLengthPercentage()
}

// LengthPercentageOrAuto adds the "auto" keyword to [LengthPercentage].
type LengthPercentageOrAuto = MaybeAuto[LengthPercentage]

// ZeroLength is the identity element of lengths.
func ZeroLength() NoCalcLength { return AbsoluteLength{} }

// ParseDimension resolves an already tokenized dimension to a length.
// Units are matched case-insensitively.
func ParseDimension(value Fl, unit string, pos parser.Pos) (NoCalcLength, error) {
	switch utils.AsciiLower(unit) {
	case "px":
		return AbsoluteLength{Value: value, Unit: Px}, nil
	case "cm":
		return AbsoluteLength{Value: value, Unit: Cm}, nil
	case "mm":
		return AbsoluteLength{Value: value, Unit: Mm}, nil
	case "q":
		return AbsoluteLength{Value: value, Unit: Q}, nil
	case "in":
		return AbsoluteLength{Value: value, Unit: In}, nil
	case "pc":
		return AbsoluteLength{Value: value, Unit: Pc}, nil
	case "pt":
		return AbsoluteLength{Value: value, Unit: Pt}, nil
	case "em":
		return FontRelativeLength{Value: value, Unit: Em}, nil
	case "rem":
		return FontRelativeLength{Value: value, Unit: Rem}, nil
	case "ex":
		return FontRelativeLength{Value: value, Unit: Ex}, nil
	case "ch":
		return FontRelativeLength{Value: value, Unit: Ch}, nil
	case "vw":
		return ViewportRelativeLength{Value: value, Unit: Vw}, nil
	case "vh":
		return ViewportRelativeLength{Value: value, Unit: Vh}, nil
	case "vmin":
		return ViewportRelativeLength{Value: value, Unit: Vmin}, nil
	case "vmax":
		return ViewportRelativeLength{Value: value, Unit: Vmax}, nil
	default:
		return nil, parser.NewErrorf(pos, parser.ErrUnexpectedDimension, "unexpected dimension: %s", unit)
	}
}

// ParseLength reads a <length> : a dimension with a known unit, or
// the literal zero. A non zero bare number is a "missing dimension"
// error, and a function a "function not supported" error.
func ParseLength(it *parser.TokensIter, allowed AllowedValues) (NoCalcLength, error) {
	token := it.NextSignificant()
	switch token := token.(type) {
	case parser.Dimension:
		if !allowed.Accepts(token.Value) {
			return nil, errOutOfRange(token)
		}
		return ParseDimension(token.Value, token.Unit, token.Pos())
	case parser.Number:
		if !allowed.Accepts(token.Value) {
			return nil, errOutOfRange(token)
		}
		if token.Value != 0 {
			return nil, parser.NewErrorf(token.Pos(), parser.ErrMissingDimension,
				"missing dimension on number: %s", token.Repr)
		}
		return ZeroLength(), nil
	case parser.FunctionBlock:
		return nil, errFunction(token)
	case nil:
		return nil, errEndOfInput(it, "<length>")
	default:
		return nil, errUnexpectedToken(token, "<length>")
	}
}

// ParseLengthPercentage reads a <length-percentage>.
func ParseLengthPercentage(it *parser.TokensIter, allowed AllowedValues) (LengthPercentage, error) {
	if _, ok := it.PeekSignificant().(parser.Percentage); ok {
		return ParsePercentage(it, allowed)
	}
	return ParseLength(it, allowed)
}

// ParseLengthPercentageOrAuto reads a <length-percentage> or the
// "auto" keyword.
func ParseLengthPercentageOrAuto(it *parser.TokensIter, allowed AllowedValues) (LengthPercentageOrAuto, error) {
	return ParseMaybeAuto(it, func(it *parser.TokensIter) (LengthPercentage, error) {
		return ParseLengthPercentage(it, allowed)
	})
}

package values

import (
	"math"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

// FontRelativeUnit is a unit measured against a font size.
type FontRelativeUnit uint8

const (
	Em FontRelativeUnit = iota
	Rem
	Ex
	Ch
)

func (u FontRelativeUnit) String() string {
	switch u {
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Ex:
		return "ex"
	case Ch:
		return "ch"
	default:
		return "<invalid unit>"
	}
}

// FontRelativeLength is a specified length relative to a font
// size, like "1.5em".
type FontRelativeLength struct {
	Value Fl
	Unit  FontRelativeUnit
}

func (f FontRelativeLength) IsZero() bool     { return f.Value == 0 }
func (f FontRelativeLength) IsNegative() bool { return f.Value < 0 }
func (f FontRelativeLength) IsInfinite() bool { return utils.IsInf(f.Value) }

// Scale returns the length scaled by `factor`, keeping its unit.
func (f FontRelativeLength) Scale(factor Fl) FontRelativeLength {
	return FontRelativeLength{Value: f.Value * factor, Unit: f.Unit}
}

// ToComputedPx resolves the length against the font sizes of `ctx`.
// Without real font metrics, ex and ch use a fixed 0.5 heuristic
// ratio; a vertical ch measures the line advance instead, taken as
// the font size itself.
func (f FontRelativeLength) ToComputedPx(ctx *Context) Fl {
	switch f.Unit {
	case Rem:
		return f.Value * ctx.RootFontSize
	case Ex:
		return f.Value * ctx.FontSize * 0.5
	case Ch:
		ratio := Fl(0.5)
		if ctx.VerticalText {
			ratio = 1
		}
		return f.Value * ctx.FontSize * ratio
	default: // Em
		return f.Value * ctx.FontSize
	}
}

func (FontRelativeLength) isNoCalcLength()     {}
func (FontRelativeLength) isLengthPercentage() {}

// ViewportUnit is a unit measured against the viewport size.
type ViewportUnit uint8

const (
	Vw ViewportUnit = iota
	Vh
	Vmin
	Vmax
)

func (u ViewportUnit) String() string {
	switch u {
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	case Vmin:
		return "vmin"
	case Vmax:
		return "vmax"
	default:
		return "<invalid unit>"
	}
}

// ViewportRelativeLength is a specified length relative to the
// viewport, like "50vw".
type ViewportRelativeLength struct {
	Value Fl
	Unit  ViewportUnit
}

func (v ViewportRelativeLength) IsZero() bool     { return v.Value == 0 }
func (v ViewportRelativeLength) IsNegative() bool { return v.Value < 0 }
func (v ViewportRelativeLength) IsInfinite() bool { return utils.IsInf(v.Value) }

// Scale returns the length scaled by `factor`, keeping its unit.
func (v ViewportRelativeLength) Scale(factor Fl) ViewportRelativeLength {
	return ViewportRelativeLength{Value: v.Value * factor, Unit: v.Unit}
}

// ToComputedPx resolves the length against the viewport size of `ctx`.
// The result is truncated toward zero, so that it does not compound
// rounding errors at small viewport sizes.
func (v ViewportRelativeLength) ToComputedPx(ctx *Context) Fl {
	width, height := ctx.ViewportSize[0], ctx.ViewportSize[1]
	var basis Fl
	switch v.Unit {
	case Vh:
		basis = height
	case Vmin:
		basis = utils.MinF(width, height)
	case Vmax:
		basis = utils.MaxF(width, height)
	default: // Vw
		basis = width
	}
	return Fl(math.Trunc(float64(v.Value) / 100 * float64(basis)))
}

func (ViewportRelativeLength) isNoCalcLength()     {}
func (ViewportRelativeLength) isLengthPercentage() {}

package values

import (
	"math"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

// AbsoluteUnit is a physical unit, resolvable without any context.
type AbsoluteUnit uint8

const (
	Px AbsoluteUnit = iota
	Cm
	Mm
	Q
	In
	Pc
	Pt
)

// Conversions are anchored at 96 dpi : one px is 60 canonical units.
const (
	auPerPx = 60.
	auPerIn = auPerPx * 96
	auPerPc = auPerIn / 6
	auPerPt = auPerIn / 72
	auPerCm = auPerPx / 2.54
	auPerMm = auPerCm / 10
	auPerQ  = auPerMm / 4
)

func (u AbsoluteUnit) String() string {
	switch u {
	case Px:
		return "px"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	case In:
		return "in"
	case Pc:
		return "pc"
	case Pt:
		return "pt"
	default:
		return "<invalid unit>"
	}
}

func (u AbsoluteUnit) canonicalPerUnit() float64 {
	switch u {
	case Cm:
		return auPerCm
	case Mm:
		return auPerMm
	case Q:
		return auPerQ
	case In:
		return auPerIn
	case Pc:
		return auPerPc
	case Pt:
		return auPerPt
	default:
		return auPerPx
	}
}

// AbsoluteLength is a specified physical length, like "9pt".
type AbsoluteLength struct {
	Value Fl
	Unit  AbsoluteUnit
}

func (a AbsoluteLength) IsZero() bool     { return a.Value == 0 }
func (a AbsoluteLength) IsNegative() bool { return a.Value < 0 }
func (a AbsoluteLength) IsInfinite() bool { return utils.IsInf(a.Value) }

// Scale returns the length scaled by `factor`, keeping its unit.
func (a AbsoluteLength) Scale(factor Fl) AbsoluteLength {
	return AbsoluteLength{Value: a.Value * factor, Unit: a.Unit}
}

// ToPx converts the length to pixels. Out of range results are
// clamped to the representable range.
func (a AbsoluteLength) ToPx() Fl {
	px := float64(a.Value) * a.Unit.canonicalPerUnit() / auPerPx
	px = math.Min(px, math.MaxFloat32)
	px = math.Max(px, -math.MaxFloat32)
	return Fl(px)
}

func (a AbsoluteLength) ToComputedPx(*Context) Fl { return a.ToPx() }

func (AbsoluteLength) isNoCalcLength()     {}
func (AbsoluteLength) isLengthPercentage() {}

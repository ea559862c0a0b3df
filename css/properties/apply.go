package properties

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/values"
)

// toVal resolves a specified length-percentage-or-auto to the target
// scalar, lengths being computed to pixels under `ctx`.
func toVal(v values.LengthPercentageOrAuto, ctx *values.Context) Val {
	lengthPc, ok := v.NotAuto()
	if !ok {
		return Auto()
	}
	switch lengthPc := lengthPc.(type) {
	case values.Percentage:
		return Percent(lengthPc.AsPercent())
	case values.NoCalcLength:
		return Px(lengthPc.ToComputedPx(ctx))
	default:
		return Val{}
	}
}

func applySided(v values.SidedValue[values.LengthPercentageOrAuto], ctx *values.Context, set func(Edge, Val)) {
	set(EdgeTop, toVal(v.Top, ctx))
	set(EdgeRight, toVal(v.Right, ctx))
	set(EdgeBottom, toVal(v.Bottom, ctx))
	set(EdgeLeft, toVal(v.Left, ctx))
}

// ApplyToStyle mutates `target` according to `declaration`. Paint
// declarations are ignored. Last write wins when several declarations
// touch the same field.
func ApplyToStyle(declaration Declaration, ctx *values.Context, target StyleTarget) {
	switch declaration := declaration.(type) {
	// display
	case Display:
		target.SetDisplay(declaration.Value)
	case Direction:
		target.SetDirection(declaration.Value)
	case Width:
		target.SetWidth(toVal(declaration.Value, ctx))
	case Height:
		target.SetHeight(toVal(declaration.Value, ctx))
	case MinWidth:
		target.SetMinWidth(toVal(declaration.Value, ctx))
	case MinHeight:
		target.SetMinHeight(toVal(declaration.Value, ctx))
	case MaxWidth:
		target.SetMaxWidth(toVal(declaration.Value, ctx))
	case MaxHeight:
		target.SetMaxHeight(toVal(declaration.Value, ctx))
	case Overflow:
		target.SetOverflow(declaration.Value)

	// position
	case Position:
		target.SetPositionType(declaration.Value)
	case Top:
		target.SetOffset(EdgeTop, toVal(declaration.Value, ctx))
	case Right:
		target.SetOffset(EdgeRight, toVal(declaration.Value, ctx))
	case Bottom:
		target.SetOffset(EdgeBottom, toVal(declaration.Value, ctx))
	case Left:
		target.SetOffset(EdgeLeft, toVal(declaration.Value, ctx))

	// flex box
	case FlexDirection:
		target.SetFlexDirection(declaration.Value)
	case FlexWrap:
		target.SetFlexWrap(declaration.Value)
	case FlexGrow:
		target.SetFlexGrow(Fl(declaration.Value.Value))
	case FlexShrink:
		target.SetFlexShrink(Fl(declaration.Value.Value))
	case FlexBasis:
		target.SetFlexBasis(toVal(declaration.Value, ctx))
	case AspectRatio:
		if ratio, ok := declaration.Value.NotAuto(); ok {
			quotient := ratio.Quotient()
			target.SetAspectRatio(&quotient)
		} else {
			target.SetAspectRatio(nil)
		}

	// alignment
	case AlignItems:
		target.SetAlignItems(declaration.Value)
	case AlignSelf:
		target.SetAlignSelf(declaration.Value)
	case AlignContent:
		target.SetAlignContent(declaration.Value)
	case JustifyContent:
		target.SetJustifyContent(declaration.Value)

	// margins
	case Margin:
		applySided(declaration.Value, ctx, target.SetMargin)
	case MarginTop:
		target.SetMargin(EdgeTop, toVal(declaration.Value, ctx))
	case MarginRight:
		target.SetMargin(EdgeRight, toVal(declaration.Value, ctx))
	case MarginBottom:
		target.SetMargin(EdgeBottom, toVal(declaration.Value, ctx))
	case MarginLeft:
		target.SetMargin(EdgeLeft, toVal(declaration.Value, ctx))

	// padding
	case Padding:
		applySided(declaration.Value, ctx, target.SetPadding)
	case PaddingTop:
		target.SetPadding(EdgeTop, toVal(declaration.Value, ctx))
	case PaddingRight:
		target.SetPadding(EdgeRight, toVal(declaration.Value, ctx))
	case PaddingBottom:
		target.SetPadding(EdgeBottom, toVal(declaration.Value, ctx))
	case PaddingLeft:
		target.SetPadding(EdgeLeft, toVal(declaration.Value, ctx))

	// borders
	case BorderWidth:
		applySided(declaration.Value, ctx, target.SetBorderWidth)
	case BorderWidthTop:
		target.SetBorderWidth(EdgeTop, toVal(declaration.Value, ctx))
	case BorderWidthRight:
		target.SetBorderWidth(EdgeRight, toVal(declaration.Value, ctx))
	case BorderWidthBottom:
		target.SetBorderWidth(EdgeBottom, toVal(declaration.Value, ctx))
	case BorderWidthLeft:
		target.SetBorderWidth(EdgeLeft, toVal(declaration.Value, ctx))
	}
}

// ApplyToPaint mutates `target` according to `declaration`. Layout
// declarations are ignored, as is "currentcolor", which has no
// concrete channels to apply.
func ApplyToPaint(declaration Declaration, target PaintTarget) {
	if color, ok := declaration.(Color); ok && color.Value.Type == parser.ColorRGBA {
		target.SetColor(color.Value.RGBA)
	}
}

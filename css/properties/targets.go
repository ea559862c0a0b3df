package properties

import (
	"fmt"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties/keywords"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// Fl is the scalar type of computed style values.
type Fl = utils.Fl

// ValKind discriminates the states of a [Val].
type ValKind uint8

const (
	// ValUndefined is the zero state : the field was never set.
	ValUndefined ValKind = iota
	ValAuto
	ValPx
	ValPercent
)

// Val is the computed scalar of a style field : undefined, auto,
// a pixel count, or a percentage of the parent (0 to 100).
type Val struct {
	Value Fl
	Kind  ValKind
}

func Px(value Fl) Val      { return Val{Kind: ValPx, Value: value} }
func Percent(value Fl) Val { return Val{Kind: ValPercent, Value: value} }
func Auto() Val            { return Val{Kind: ValAuto} }

func (v Val) String() string {
	switch v.Kind {
	case ValAuto:
		return "auto"
	case ValPx:
		return fmt.Sprintf("%gpx", v.Value)
	case ValPercent:
		return fmt.Sprintf("%g%%", v.Value)
	default:
		return "undefined"
	}
}

// Edge identifies one side of a box.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "left"
	}
}

// StyleTarget receives the layout affecting declarations. Rect valued
// fields take the edge to mutate, so that shorthands and longhands
// share one setter.
type StyleTarget interface {
	SetDisplay(keywords.Display)
	SetDirection(keywords.Direction)
	SetOverflow(keywords.Overflow)
	SetPositionType(keywords.PositionType)
	SetFlexDirection(keywords.FlexDirection)
	SetFlexWrap(keywords.FlexWrap)
	SetAlignItems(keywords.AlignItems)
	SetAlignSelf(keywords.AlignSelf)
	SetAlignContent(keywords.AlignContent)
	SetJustifyContent(keywords.JustifyContent)

	SetWidth(Val)
	SetHeight(Val)
	SetMinWidth(Val)
	SetMinHeight(Val)
	SetMaxWidth(Val)
	SetMaxHeight(Val)

	SetFlexGrow(Fl)
	SetFlexShrink(Fl)
	SetFlexBasis(Val)
	// SetAspectRatio receives nil for "auto".
	SetAspectRatio(*Fl)

	SetOffset(Edge, Val)
	SetMargin(Edge, Val)
	SetPadding(Edge, Val)
	SetBorderWidth(Edge, Val)
}

// PaintTarget receives the paint affecting declarations.
type PaintTarget interface {
	SetColor(parser.RGBA)
}

// UiRect holds one [Val] per edge of a box.
type UiRect struct {
	Top, Right, Bottom, Left Val
}

func (r *UiRect) set(edge Edge, value Val) {
	switch edge {
	case EdgeTop:
		r.Top = value
	case EdgeRight:
		r.Right = value
	case EdgeBottom:
		r.Bottom = value
	case EdgeLeft:
		r.Left = value
	}
}

// Size is a (width, height) pair of [Val].
type Size struct {
	Width, Height Val
}

// Style is the default [StyleTarget] : a flat record of every layout
// field the registry can set.
type Style struct {
	AspectRatio *Fl

	Size    Size
	MinSize Size
	MaxSize Size

	Position UiRect
	Margin   UiRect
	Padding  UiRect
	Border   UiRect

	FlexBasis  Val
	FlexGrow   Fl
	FlexShrink Fl

	Display        keywords.Display
	Direction      keywords.Direction
	Overflow       keywords.Overflow
	PositionType   keywords.PositionType
	FlexDirection  keywords.FlexDirection
	FlexWrap       keywords.FlexWrap
	AlignItems     keywords.AlignItems
	AlignSelf      keywords.AlignSelf
	AlignContent   keywords.AlignContent
	JustifyContent keywords.JustifyContent
}

// NewStyle returns a style with the flex container defaults.
func NewStyle() *Style {
	return &Style{
		Display:      keywords.DisplayFlex,
		Direction:    keywords.DirectionInherit,
		Overflow:     keywords.OverflowVisible,
		PositionType: keywords.PositionRelative,
		FlexBasis:    Auto(),
		FlexShrink:   1,
	}
}

func (s *Style) SetDisplay(k keywords.Display) { s.Display = k }
func (s *Style) SetDirection(k keywords.Direction) { s.Direction = k }
func (s *Style) SetOverflow(k keywords.Overflow) { s.Overflow = k }
func (s *Style) SetPositionType(k keywords.PositionType) { s.PositionType = k }
func (s *Style) SetFlexDirection(k keywords.FlexDirection) { s.FlexDirection = k }
func (s *Style) SetFlexWrap(k keywords.FlexWrap) { s.FlexWrap = k }
func (s *Style) SetAlignItems(k keywords.AlignItems) { s.AlignItems = k }
func (s *Style) SetAlignSelf(k keywords.AlignSelf) { s.AlignSelf = k }
func (s *Style) SetAlignContent(k keywords.AlignContent) { s.AlignContent = k }
func (s *Style) SetJustifyContent(k keywords.JustifyContent) { s.JustifyContent = k }
func (s *Style) SetWidth(v Val) { s.Size.Width = v }
func (s *Style) SetHeight(v Val) { s.Size.Height = v }
func (s *Style) SetMinWidth(v Val) { s.MinSize.Width = v }
func (s *Style) SetMinHeight(v Val) { s.MinSize.Height = v }
func (s *Style) SetMaxWidth(v Val) { s.MaxSize.Width = v }
func (s *Style) SetMaxHeight(v Val) { s.MaxSize.Height = v }
func (s *Style) SetFlexGrow(v Fl) { s.FlexGrow = v }
func (s *Style) SetFlexShrink(v Fl) { s.FlexShrink = v }
func (s *Style) SetFlexBasis(v Val) { s.FlexBasis = v }
func (s *Style) SetAspectRatio(ratio *Fl) { s.AspectRatio = ratio }
func (s *Style) SetOffset(edge Edge, v Val) { s.Position.set(edge, v) }
func (s *Style) SetMargin(edge Edge, v Val) { s.Margin.set(edge, v) }
func (s *Style) SetPadding(edge Edge, v Val) { s.Padding.set(edge, v) }
func (s *Style) SetBorderWidth(edge Edge, v Val) { s.Border.set(edge, v) }

// Paint is the default [PaintTarget].
type Paint struct {
	Color parser.RGBA
}

// NewPaint returns an opaque white paint.
func NewPaint() *Paint {
	return &Paint{Color: parser.RGBA{R: 1, G: 1, B: 1, A: 1}}
}

func (p *Paint) SetColor(color parser.RGBA) { p.Color = color }

// Package properties implements the closed set of supported CSS
// properties : a registry mapping property names to typed value
// parsers, and the application of parsed declarations to style and
// paint targets.
package properties

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties/keywords"
	"github.com/sharky-david/bevy-prototype-css/css/values"
)

// Declaration is a parsed (property, value) pair, one concrete type
// per supported property.
type Declaration interface {
	isDeclaration()
}

type (
	// Display / visibility

	Display   struct{ Value keywords.Display }
	Direction struct{ Value keywords.Direction }
	Width     struct{ Value values.LengthPercentageOrAuto }
	Height    struct{ Value values.LengthPercentageOrAuto }
	MinWidth  struct{ Value values.LengthPercentageOrAuto }
	MinHeight struct{ Value values.LengthPercentageOrAuto }
	MaxWidth  struct{ Value values.LengthPercentageOrAuto }
	MaxHeight struct{ Value values.LengthPercentageOrAuto }
	Overflow  struct{ Value keywords.Overflow }

	// Position

	Position struct{ Value keywords.PositionType }
	Top      struct{ Value values.LengthPercentageOrAuto }
	Right    struct{ Value values.LengthPercentageOrAuto }
	Bottom   struct{ Value values.LengthPercentageOrAuto }
	Left     struct{ Value values.LengthPercentageOrAuto }

	// Flex box

	FlexDirection struct{ Value keywords.FlexDirection }
	FlexWrap      struct{ Value keywords.FlexWrap }
	FlexGrow      struct{ Value values.NonNegativeNumber }
	FlexShrink    struct{ Value values.NonNegativeNumber }
	FlexBasis     struct{ Value values.LengthPercentageOrAuto }
	AspectRatio   struct{ Value values.RatioOrAuto }

	// Alignment

	AlignItems     struct{ Value keywords.AlignItems }
	AlignSelf      struct{ Value keywords.AlignSelf }
	AlignContent   struct{ Value keywords.AlignContent }
	JustifyContent struct{ Value keywords.JustifyContent }

	// Margins

	Margin       struct{ Value values.SidedValue[values.LengthPercentageOrAuto] }
	MarginTop    struct{ Value values.LengthPercentageOrAuto }
	MarginRight  struct{ Value values.LengthPercentageOrAuto }
	MarginBottom struct{ Value values.LengthPercentageOrAuto }
	MarginLeft   struct{ Value values.LengthPercentageOrAuto }

	// Padding

	Padding       struct{ Value values.SidedValue[values.LengthPercentageOrAuto] }
	PaddingTop    struct{ Value values.LengthPercentageOrAuto }
	PaddingRight  struct{ Value values.LengthPercentageOrAuto }
	PaddingBottom struct{ Value values.LengthPercentageOrAuto }
	PaddingLeft   struct{ Value values.LengthPercentageOrAuto }

	// Borders

	BorderWidth       struct{ Value values.SidedValue[values.LengthPercentageOrAuto] }
	BorderWidthTop    struct{ Value values.LengthPercentageOrAuto }
	BorderWidthRight  struct{ Value values.LengthPercentageOrAuto }
	BorderWidthBottom struct{ Value values.LengthPercentageOrAuto }
	BorderWidthLeft   struct{ Value values.LengthPercentageOrAuto }

	// Color

	Color struct{ Value parser.Color }
)

func (Display) isDeclaration()           {}
func (Direction) isDeclaration()         {}
func (Width) isDeclaration()             {}
func (Height) isDeclaration()            {}
func (MinWidth) isDeclaration()          {}
func (MinHeight) isDeclaration()         {}
func (MaxWidth) isDeclaration()          {}
func (MaxHeight) isDeclaration()         {}
func (Overflow) isDeclaration()          {}
func (Position) isDeclaration()          {}
func (Top) isDeclaration()               {}
func (Right) isDeclaration()             {}
func (Bottom) isDeclaration()            {}
func (Left) isDeclaration()              {}
func (FlexDirection) isDeclaration()     {}
func (FlexWrap) isDeclaration()          {}
func (FlexGrow) isDeclaration()          {}
func (FlexShrink) isDeclaration()        {}
func (FlexBasis) isDeclaration()         {}
func (AspectRatio) isDeclaration()       {}
func (AlignItems) isDeclaration()        {}
func (AlignSelf) isDeclaration()         {}
func (AlignContent) isDeclaration()      {}
func (JustifyContent) isDeclaration()    {}
func (Margin) isDeclaration()            {}
func (MarginTop) isDeclaration()         {}
func (MarginRight) isDeclaration()       {}
func (MarginBottom) isDeclaration()      {}
func (MarginLeft) isDeclaration()        {}
func (Padding) isDeclaration()           {}
func (PaddingTop) isDeclaration()        {}
func (PaddingRight) isDeclaration()      {}
func (PaddingBottom) isDeclaration()     {}
func (PaddingLeft) isDeclaration()       {}
func (BorderWidth) isDeclaration()       {}
func (BorderWidthTop) isDeclaration()    {}
func (BorderWidthRight) isDeclaration()  {}
func (BorderWidthBottom) isDeclaration() {}
func (BorderWidthLeft) isDeclaration()   {}
func (Color) isDeclaration()             {}

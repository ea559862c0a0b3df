// Package values implements the CSS value model : typed numeric kinds
// (lengths, percentages, ratios, bare numbers) with unit conversion and
// resolution to concrete pixel values under a caller supplied [Context].
package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// Fl is the concrete type of computed values.
type Fl = utils.Fl

// Numeric is implemented by every parsed value kind.
type Numeric interface {
	IsZero() bool
	IsNegative() bool
	IsInfinite() bool
}

// DefaultFontSize is the platform default font size, in pixels.
const DefaultFontSize Fl = 16

// Context is the measurement basis needed to resolve relative
// units to absolute pixels. It is supplied by the caller per resolution.
type Context struct {
	// FontSize is the font size of the styled element, in pixels.
	FontSize Fl
	// RootFontSize is the font size of the root element, in pixels,
	// used by rem units.
	RootFontSize Fl
	// VerticalText is true when text flows vertically, which changes
	// the axis the ch unit measures.
	VerticalText bool
	// ViewportSize is the (width, height) of the viewport, in pixels.
	ViewportSize [2]Fl
}

// DefaultContext returns a context with the platform default font
// size and a zero viewport.
func DefaultContext() Context {
	return Context{FontSize: DefaultFontSize, RootFontSize: DefaultFontSize}
}

// AllowedValues restricts the numeric range accepted when parsing
// a value.
type AllowedValues uint8

const (
	// AllowedAll accepts any value.
	AllowedAll AllowedValues = iota
	// AllowedNonNegative accepts zero or positive values.
	AllowedNonNegative
	// AllowedAtLeastOne accepts values greater than or equal to one.
	AllowedAtLeastOne
)

// Accepts reports whether `value` is in the allowed range.
// Out of range literals are rejected at parse time, not clamped.
func (a AllowedValues) Accepts(value Fl) bool {
	switch a {
	case AllowedNonNegative:
		return value >= 0
	case AllowedAtLeastOne:
		return value >= 1
	default:
		return true
	}
}

// Clamp restricts `value` to the allowed range. This is only used for
// values computed from calc() expressions, which carry a clamping
// policy instead of being rejected.
func (a AllowedValues) Clamp(value Fl) Fl {
	switch a {
	case AllowedNonNegative:
		return utils.MaxF(0, value)
	case AllowedAtLeastOne:
		return utils.MaxF(1, value)
	default:
		return value
	}
}

func errEndOfInput(it *parser.TokensIter, expected string) error {
	return parser.NewErrorf(it.Position(), parser.ErrEndOfInput, "expected %s, got end of input", expected)
}

func errUnexpectedToken(token parser.Token, expected string) error {
	return parser.NewErrorf(token.Pos(), parser.ErrUnexpectedToken, "expected %s, got %s", expected, token.Kind())
}

func errFunction(fn parser.FunctionBlock) error {
	return parser.NewErrorf(fn.Pos(), parser.ErrFunctionNotSupported, "function not supported: %s()", fn.Name)
}

func errOutOfRange(token parser.Token) error {
	return parser.NewErrorf(token.Pos(), parser.ErrInvalidValue, "value out of range: %s", parser.Serialize([]parser.Token{token}))
}

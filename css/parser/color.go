package parser

import (
	"strconv"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

type ColorType uint8

const (
	// ColorInvalid is an empty or invalid color specification.
	ColorInvalid ColorType = iota
	// ColorCurrentColor represents the special value "currentColor"
	// which need document context to be resolved.
	ColorCurrentColor
	// ColorRGBA is a fully resolved color.
	ColorRGBA
)

// RGBA is a color with non-premultiplied components,
// in the range 0 to 1.
type RGBA struct {
	R, G, B, A utils.Fl
}

type Color struct {
	RGBA RGBA
	Type ColorType
}

// IsNone returns true if the color is invalid.
func (c Color) IsNone() bool { return c.Type == ColorInvalid }

func rgb8(r, g, b uint8) Color {
	return Color{
		Type: ColorRGBA,
		RGBA: RGBA{R: utils.Fl(r) / 255, G: utils.Fl(g) / 255, B: utils.Fl(b) / 255, A: 1},
	}
}

// the 16 basic CSS color keywords, plus a few common extensions
var colorKeywords = map[string]Color{
	"black":   rgb8(0, 0, 0),
	"silver":  rgb8(192, 192, 192),
	"gray":    rgb8(128, 128, 128),
	"grey":    rgb8(128, 128, 128),
	"white":   rgb8(255, 255, 255),
	"maroon":  rgb8(128, 0, 0),
	"red":     rgb8(255, 0, 0),
	"purple":  rgb8(128, 0, 128),
	"fuchsia": rgb8(255, 0, 255),
	"green":   rgb8(0, 128, 0),
	"lime":    rgb8(0, 255, 0),
	"olive":   rgb8(128, 128, 0),
	"yellow":  rgb8(255, 255, 0),
	"navy":    rgb8(0, 0, 128),
	"blue":    rgb8(0, 0, 255),
	"teal":    rgb8(0, 128, 128),
	"aqua":    rgb8(0, 255, 255),
	"orange":  rgb8(255, 165, 0),

	"transparent": {Type: ColorRGBA},
}

// ParseColorString tokenizes `color` and calls `ParseColor`.
func ParseColorString(color string) Color {
	l := tokenizeString(color, true)
	token := NewIter(l).NextSignificant()
	if token == nil {
		return Color{}
	}
	return ParseColor(token)
}

// ParseColor parses a <color> component value :
// a color keyword, a hex hash, or one of the rgb(),
// rgba(), hsl() and hsla() functions.
// An invalid specification returns a zero Color.
func ParseColor(token Token) Color {
	switch token := token.(type) {
	case Ident:
		keyword := utils.AsciiLower(token.Value)
		if keyword == "currentcolor" {
			return Color{Type: ColorCurrentColor}
		}
		return colorKeywords[keyword]
	case Hash:
		return parseHexColor(token.Value)
	case FunctionBlock:
		return parseColorFunction(token)
	}
	return Color{}
}

func hexPair(s string) (utils.Fl, bool) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return utils.Fl(v) / 255, true
}

// parseHexColor supports 3, 4, 6 and 8 digits forms.
func parseHexColor(hex string) Color {
	var parts [4]string
	switch len(hex) {
	case 8:
		parts = [4]string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	case 6:
		parts = [4]string{hex[0:2], hex[2:4], hex[4:6], "ff"}
	case 4:
		parts = [4]string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3], hex[3:4] + hex[3:4]}
	case 3:
		parts = [4]string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3], "ff"}
	default:
		return Color{}
	}
	var out RGBA
	for i, dst := range []*utils.Fl{&out.R, &out.G, &out.B, &out.A} {
		v, ok := hexPair(parts[i])
		if !ok {
			return Color{}
		}
		*dst = v
	}
	return Color{Type: ColorRGBA, RGBA: out}
}

func clampUnit(v utils.Fl) utils.Fl {
	return utils.MinF(1, utils.MaxF(0, v))
}

// significant arguments, with "," and "/" separators dropped
func colorArgs(arguments []Token) []Token {
	var args []Token
	iter := NewIter(arguments)
	for {
		token := iter.NextSignificant()
		if token == nil {
			return args
		}
		if lit, ok := token.(Literal); ok && (lit.Value == "," || lit.Value == "/") {
			continue
		}
		args = append(args, token)
	}
}

func parseColorFunction(fn FunctionBlock) Color {
	args := colorArgs(fn.Arguments)
	switch utils.AsciiLower(fn.Name) {
	case "rgb", "rgba":
		return parseRGB(args)
	case "hsl", "hsla":
		return parseHSL(args)
	}
	return Color{}
}

// alpha defaults to 1 when omitted
func parseAlpha(args []Token) (utils.Fl, bool) {
	if len(args) == 0 {
		return 1, true
	}
	if len(args) != 1 {
		return 0, false
	}
	switch token := args[0].(type) {
	case Number:
		return clampUnit(token.Value), true
	case Percentage:
		return clampUnit(token.Value / 100), true
	}
	return 0, false
}

func parseRGB(args []Token) Color {
	if len(args) < 3 {
		return Color{}
	}
	alpha, ok := parseAlpha(args[3:])
	if !ok {
		return Color{}
	}
	var out RGBA
	out.A = alpha
	for i, dst := range []*utils.Fl{&out.R, &out.G, &out.B} {
		switch token := args[i].(type) {
		case Number:
			*dst = clampUnit(token.Value / 255)
		case Percentage:
			*dst = clampUnit(token.Value / 100)
		default:
			return Color{}
		}
	}
	return Color{Type: ColorRGBA, RGBA: out}
}

func parseHSL(args []Token) Color {
	if len(args) < 3 {
		return Color{}
	}
	alpha, ok := parseAlpha(args[3:])
	if !ok {
		return Color{}
	}
	hueToken, ok := args[0].(Number)
	if !ok {
		return Color{}
	}
	saturationToken, ok1 := args[1].(Percentage)
	lightnessToken, ok2 := args[2].(Percentage)
	if !ok1 || !ok2 {
		return Color{}
	}
	r, g, b := hslToRGB(hueToken.Value, saturationToken.Value/100, lightnessToken.Value/100)
	return Color{Type: ColorRGBA, RGBA: RGBA{R: r, G: g, B: b, A: alpha}}
}

// http://www.w3.org/TR/css3-color/#hsl-color
func hslToRGB(hue, saturation, lightness utils.Fl) (r, g, b utils.Fl) {
	for hue < 0 {
		hue += 360
	}
	for hue >= 360 {
		hue -= 360
	}
	hue /= 360
	saturation = clampUnit(saturation)
	lightness = clampUnit(lightness)

	var m2 utils.Fl
	if lightness <= 0.5 {
		m2 = lightness * (saturation + 1)
	} else {
		m2 = lightness + saturation - lightness*saturation
	}
	m1 := lightness*2 - m2

	hueToRGB := func(h utils.Fl) utils.Fl {
		for h < 0 {
			h += 1
		}
		for h > 1 {
			h -= 1
		}
		switch {
		case h*6 < 1:
			return m1 + (m2-m1)*h*6
		case h*2 < 1:
			return m2
		case h*3 < 2:
			return m1 + (m2-m1)*(2./3-h)*6
		default:
			return m1
		}
	}
	return hueToRGB(hue + 1./3), hueToRGB(hue), hueToRGB(hue - 1./3)
}

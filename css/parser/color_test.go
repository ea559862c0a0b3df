package parser

import (
	"testing"

	"github.com/sharky-david/bevy-prototype-css/utils"
	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func TestParseColorHex(t *testing.T) {
	tu.AssertEqual(t, ParseColorString("#369"), Color{Type: ColorRGBA, RGBA: RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}})
	tu.AssertEqual(t, ParseColorString("#336699"), Color{Type: ColorRGBA, RGBA: RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}})
	tu.AssertEqual(t, ParseColorString("#0000"), Color{Type: ColorRGBA})
	tu.AssertEqual(t, ParseColorString("#12345"), Color{})
	tu.AssertEqual(t, ParseColorString("#xyz"), Color{})
}

func TestParseColorKeywords(t *testing.T) {
	tu.AssertEqual(t, ParseColorString("red"), Color{Type: ColorRGBA, RGBA: RGBA{R: 1, A: 1}})
	tu.AssertEqual(t, ParseColorString("RED"), Color{Type: ColorRGBA, RGBA: RGBA{R: 1, A: 1}})
	tu.AssertEqual(t, ParseColorString("transparent"), Color{Type: ColorRGBA})
	tu.AssertEqual(t, ParseColorString("currentColor"), Color{Type: ColorCurrentColor})
	tu.AssertEqual(t, ParseColorString("not-a-color"), Color{})
}

func TestParseColorFunctions(t *testing.T) {
	exp := Color{Type: ColorRGBA, RGBA: RGBA{R: 1, A: 1}}
	tu.AssertEqual(t, ParseColorString("rgb(255, 0, 0)"), exp)
	tu.AssertEqual(t, ParseColorString("rgb(100%, 0%, 0%)"), exp)
	tu.AssertEqual(t, ParseColorString("rgba(255, 0, 0, 1)"), exp)
	tu.AssertEqual(t, ParseColorString("rgb(255 0 0)"), exp)

	halved := ParseColorString("rgba(255, 0, 0, 0.5)")
	tu.AssertEqual(t, halved.RGBA.A, utils.Fl(0.5))

	// out of range channels are clamped
	tu.AssertEqual(t, ParseColorString("rgb(300, 0, 0)"), exp)

	tu.AssertEqual(t, ParseColorString("rgb(1, 2)"), Color{})
	tu.AssertEqual(t, ParseColorString("rgb(1, 2, red)"), Color{})
}

func TestParseColorHsl(t *testing.T) {
	exp := Color{Type: ColorRGBA, RGBA: RGBA{R: 1, A: 1}}
	tu.AssertEqual(t, ParseColorString("hsl(0, 100%, 50%)"), exp)
	tu.AssertEqual(t, ParseColorString("hsl(360, 100%, 50%)"), exp)
	tu.AssertEqual(t, ParseColorString("hsla(0, 100%, 50%, 1)"), exp)

	green := ParseColorString("hsl(120, 100%, 50%)")
	tu.AssertEqual(t, green.RGBA, RGBA{G: 1, A: 1})
}

func TestParseColorFromDeclaration(t *testing.T) {
	declaration := parseOneDeclarationString("color:#369", false)
	decl, ok := declaration.(Declaration)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, ParseColor(decl.Value[0]).RGBA, RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1})
}

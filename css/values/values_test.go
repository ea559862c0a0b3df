package values

import (
	"testing"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func iterFromString(css string) *parser.TokensIter {
	return parser.NewIter(parser.Tokenize([]byte(css), true))
}

func assertErrKind(t *testing.T, err error, kind parser.ErrorKind) {
	t.Helper()
	tu.AssertEqual(t, err != nil, true)
	parseError, ok := err.(parser.ParseError)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, parseError.Code(), kind)
}

func TestAbsoluteLengthToPx(t *testing.T) {
	for _, test := range []struct {
		length AbsoluteLength
		px     utils.Fl
	}{
		{AbsoluteLength{Value: 10, Unit: Px}, 10},
		{AbsoluteLength{Value: 254, Unit: Mm}, 10},
		{AbsoluteLength{Value: 127, Unit: Cm}, 50},
		{AbsoluteLength{Value: 508, Unit: Q}, 5},
		{AbsoluteLength{Value: 5, Unit: In}, 480},
		{AbsoluteLength{Value: 6, Unit: Pc}, 96},
		{AbsoluteLength{Value: 9, Unit: Pt}, 12},
		{AbsoluteLength{Value: -9, Unit: Pt}, -12},
		{AbsoluteLength{}, 0},
	} {
		tu.AssertEqual(t, test.length.ToPx(), test.px)
	}
}

func TestFontRelativeLengthToPx(t *testing.T) {
	ctx := Context{FontSize: 10, RootFontSize: 20}
	tu.AssertEqual(t, FontRelativeLength{Value: 2, Unit: Em}.ToComputedPx(&ctx), utils.Fl(20))
	tu.AssertEqual(t, FontRelativeLength{Value: 2, Unit: Rem}.ToComputedPx(&ctx), utils.Fl(40))
	tu.AssertEqual(t, FontRelativeLength{Value: 2, Unit: Ex}.ToComputedPx(&ctx), utils.Fl(10))
	tu.AssertEqual(t, FontRelativeLength{Value: 2, Unit: Ch}.ToComputedPx(&ctx), utils.Fl(10))

	vertical := Context{FontSize: 10, RootFontSize: 20, VerticalText: true}
	tu.AssertEqual(t, FontRelativeLength{Value: 2, Unit: Ch}.ToComputedPx(&vertical), utils.Fl(20))
}

func TestViewportRelativeLengthToPx(t *testing.T) {
	ctx := Context{ViewportSize: [2]utils.Fl{800, 601}}
	tu.AssertEqual(t, ViewportRelativeLength{Value: 50, Unit: Vw}.ToComputedPx(&ctx), utils.Fl(400))
	tu.AssertEqual(t, ViewportRelativeLength{Value: 50, Unit: Vh}.ToComputedPx(&ctx), utils.Fl(300))
	tu.AssertEqual(t, ViewportRelativeLength{Value: 50, Unit: Vmin}.ToComputedPx(&ctx), utils.Fl(300))
	tu.AssertEqual(t, ViewportRelativeLength{Value: 50, Unit: Vmax}.ToComputedPx(&ctx), utils.Fl(400))
}

func TestParseLength(t *testing.T) {
	length, err := ParseLength(iterFromString("4px"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, length, NoCalcLength(AbsoluteLength{Value: 4, Unit: Px}))

	length, err = ParseLength(iterFromString("1.5REM"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, length, NoCalcLength(FontRelativeLength{Value: 1.5, Unit: Rem}))

	length, err = ParseLength(iterFromString("25vmin"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, length, NoCalcLength(ViewportRelativeLength{Value: 25, Unit: Vmin}))

	// zero may omit its unit, any other number may not
	length, err = ParseLength(iterFromString("0"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, length.IsZero(), true)

	_, err = ParseLength(iterFromString("4"), AllowedAll)
	assertErrKind(t, err, parser.ErrMissingDimension)

	_, err = ParseLength(iterFromString("4furlong"), AllowedAll)
	assertErrKind(t, err, parser.ErrUnexpectedDimension)

	_, err = ParseLength(iterFromString("-4px"), AllowedNonNegative)
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParseLength(iterFromString(""), AllowedAll)
	assertErrKind(t, err, parser.ErrEndOfInput)

	_, err = ParseLength(iterFromString("red"), AllowedAll)
	assertErrKind(t, err, parser.ErrUnexpectedToken)
}

func TestParseCalcRejected(t *testing.T) {
	_, err := ParseLength(iterFromString("calc(100% - 4px)"), AllowedAll)
	assertErrKind(t, err, parser.ErrFunctionNotSupported)

	_, err = ParseNumber(iterFromString("calc(1 + 1)"), AllowedAll)
	assertErrKind(t, err, parser.ErrFunctionNotSupported)

	_, err = ParsePercentage(iterFromString("calc(50%)"), AllowedAll)
	assertErrKind(t, err, parser.ErrFunctionNotSupported)
}

func TestParsePercentage(t *testing.T) {
	pc, err := ParsePercentage(iterFromString("75%"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, pc.Get(), utils.Fl(0.75))
	tu.AssertEqual(t, pc.AsPercent(), utils.Fl(75))

	_, err = ParsePercentage(iterFromString("-10%"), AllowedNonNegative)
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParsePercentage(iterFromString("50%"), AllowedAtLeastOne)
	assertErrKind(t, err, parser.ErrInvalidValue)
}

func TestPercentageClamping(t *testing.T) {
	clamping := AllowedNonNegative
	pc := Percentage{Value: -0.5, Clamping: &clamping}
	tu.AssertEqual(t, pc.Get(), utils.Fl(0))
	// without the calc() tag the raw fraction is kept
	tu.AssertEqual(t, Percentage{Value: -0.5}.Get(), utils.Fl(-0.5))
}

func TestPercentageHelpers(t *testing.T) {
	tu.AssertEqual(t, Percentage{Value: 0.3}.Reverse(), Percentage{Value: 0.7})
	tu.AssertEqual(t, Percentage{Value: 1.5}.LimitToHundred(), Percentage{Value: 1})
	tu.AssertEqual(t, Percentage{Value: 0.5}.LimitToHundred(), Percentage{Value: 0.5})
}

func TestParseLengthPercentage(t *testing.T) {
	lp, err := ParseLengthPercentage(iterFromString("100%"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, lp, LengthPercentage(Percentage{Value: 1}))

	lp, err = ParseLengthPercentage(iterFromString("4px"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, lp, LengthPercentage(AbsoluteLength{Value: 4, Unit: Px}))
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber(iterFromString("1.5"), AllowedAll)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, n, Number(1.5))

	_, err = ParseNumber(iterFromString("-1"), AllowedNonNegative)
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParseNumber(iterFromString("0.5"), AllowedAtLeastOne)
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParseNumber(iterFromString("4px"), AllowedAll)
	assertErrKind(t, err, parser.ErrUnexpectedToken)
}

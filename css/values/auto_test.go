package values

import (
	"testing"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func TestParseMaybeAuto(t *testing.T) {
	for _, css := range []string{"auto", "AUTO", "  Auto"} {
		lp, err := ParseLengthPercentageOrAuto(iterFromString(css), AllowedAll)
		tu.AssertNoErr(t, err)
		tu.AssertEqual(t, lp.Auto, true)

		ratio, err := ParseRatioOrAuto(iterFromString(css))
		tu.AssertNoErr(t, err)
		tu.AssertEqual(t, ratio.Auto, true)
	}

	lp, err := ParseLengthPercentageOrAuto(iterFromString("4px"), AllowedAll)
	tu.AssertNoErr(t, err)
	value, ok := lp.NotAuto()
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, value, LengthPercentage(AbsoluteLength{Value: 4, Unit: Px}))

	_, err = ParseLengthPercentageOrAuto(iterFromString("none"), AllowedAll)
	assertErrKind(t, err, parser.ErrUnexpectedToken)
}

func TestMaybeAutoPredicates(t *testing.T) {
	// Auto is neither zero, negative nor infinite, whatever it wraps
	auto := AutoValue[Number]()
	tu.AssertEqual(t, auto.IsZero(), false)
	tu.AssertEqual(t, auto.IsNegative(), false)
	tu.AssertEqual(t, auto.IsInfinite(), false)

	lpAuto := AutoValue[LengthPercentage]()
	tu.AssertEqual(t, lpAuto.IsZero(), false)
	tu.AssertEqual(t, lpAuto.IsNegative(), false)
	tu.AssertEqual(t, lpAuto.IsInfinite(), false)

	ratioAuto := AutoValue[Ratio]()
	tu.AssertEqual(t, ratioAuto.IsZero(), false)
	tu.AssertEqual(t, ratioAuto.IsNegative(), false)
	tu.AssertEqual(t, ratioAuto.IsInfinite(), false)

	specified := Specified(Number(-2))
	tu.AssertEqual(t, specified.IsNegative(), true)
}

func TestMaybeAutoOr(t *testing.T) {
	auto := AutoValue[Number]()
	tu.AssertEqual(t, auto.AutoOr(func() Number { return 3 }), Number(3))
	tu.AssertEqual(t, Specified(Number(7)).AutoOr(func() Number { return 3 }), Number(7))
}

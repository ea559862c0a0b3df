package values

import (
	"testing"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func TestParseRatio(t *testing.T) {
	ratio, err := ParseRatio(iterFromString("16 / 9"))
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, ratio, NewRatio(16, 9))

	ratio, err = ParseRatio(iterFromString("16/9"))
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, ratio, NewRatio(16, 9))

	// the denominator defaults to one
	ratio, err = ParseRatio(iterFromString("2.5"))
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, ratio, NewRatio(2.5, 1))

	_, err = ParseRatio(iterFromString("-1 / 2"))
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParseRatio(iterFromString("1 / -2"))
	assertErrKind(t, err, parser.ErrInvalidValue)

	_, err = ParseRatio(iterFromString("auto"))
	assertErrKind(t, err, parser.ErrUnexpectedToken)
}

func TestRatioTrailingSlash(t *testing.T) {
	// a slash commits to a second number
	_, err := ParseRatio(iterFromString("2 /"))
	assertErrKind(t, err, parser.ErrEndOfInput)
}

func TestRatioDegenerate(t *testing.T) {
	for _, test := range []struct {
		ratio      Ratio
		degenerate bool
	}{
		{NewRatio(1, 0), true},
		{NewRatio(0, 1), true},
		{NewRatio(0, 0), true},
		{NewRatio(1, 1), false},
		{NewRatio(1, 2), false},
	} {
		tu.AssertEqual(t, test.ratio.IsDegenerate(), test.degenerate)
	}
}

func TestRatioQuotient(t *testing.T) {
	tu.AssertEqual(t, NewRatio(16, 8).Quotient(), Fl(2))
	tu.AssertEqual(t, NewRatio(1, 2).Quotient(), Fl(0.5))
}

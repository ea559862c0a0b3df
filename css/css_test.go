package css

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties"
	"github.com/sharky-david/bevy-prototype-css/css/properties/keywords"
	"github.com/sharky-david/bevy-prototype-css/css/selector"
	"github.com/sharky-david/bevy-prototype-css/css/values"
	"github.com/sharky-david/bevy-prototype-css/logger"
	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func collectErrors(errs *[]*ContextualError) ErrorHandler {
	return func(err *ContextualError) { *errs = append(*errs, err) }
}

func mustIdentity(t *testing.T, tag string) selector.Identity {
	t.Helper()
	identity, err := selector.NewIdentity(tag)
	tu.AssertNoErr(t, err)
	return identity
}

const sheetSource = `
/* node styling */
#main.card, .panel {
	display: flex;
	width: 100px;
	margin: 1px 2px;
}

.panel {
	justify-content: space-between;
	color: rgb(65, 75, 85);
}
`

func TestParseStylesheet(t *testing.T) {
	var errs []*ContextualError
	sheet := ParseStylesheetWith(sheetSource, collectErrors(&errs))
	tu.AssertEqual(t, len(errs), 0)
	tu.AssertEqual(t, len(sheet.Rules), 2)

	first, ok := sheet.Rules[0].(StyleRule)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, first.Selectors.String(), "#main.card, .panel")
	tu.AssertEqual(t, len(first.Declarations), 3)

	second := sheet.Rules[1].(StyleRule)
	tu.AssertEqual(t, len(second.Declarations), 2)
}

func TestMatchingDeclarations(t *testing.T) {
	sheet := ParseStylesheet(sheetSource)

	// the first rule only
	decls := sheet.MatchingDeclarations(mustIdentity(t, "#main.card"))
	tu.AssertEqual(t, len(decls), 3)

	// both rules, in document order
	decls = sheet.MatchingDeclarations(mustIdentity(t, ".panel"))
	tu.AssertEqual(t, len(decls), 5)

	decls = sheet.MatchingDeclarations(mustIdentity(t, ".unrelated"))
	tu.AssertEqual(t, len(decls), 0)
}

func TestStylesheetApply(t *testing.T) {
	sheet := ParseStylesheet(sheetSource)
	ctx := values.DefaultContext()

	style := properties.NewStyle()
	sheet.ApplyToStyle(mustIdentity(t, ".panel"), &ctx, style)
	tu.AssertEqual(t, style.Display, keywords.DisplayFlex)
	tu.AssertEqual(t, style.Size.Width, properties.Px(100))
	tu.AssertEqual(t, style.Margin, properties.UiRect{
		Top: properties.Px(1), Bottom: properties.Px(1),
		Right: properties.Px(2), Left: properties.Px(2),
	})
	tu.AssertEqual(t, style.JustifyContent, keywords.JustifySpaceBetween)

	paint := properties.NewPaint()
	sheet.ApplyToPaint(mustIdentity(t, ".panel"), paint)
	tu.AssertEqual(t, paint.Color, parser.RGBA{R: 65.0 / 255, G: 75.0 / 255, B: 85.0 / 255, A: 1})
}

func TestStylesheetRecovery(t *testing.T) {
	source := `
@media screen { .a { width: 10px } }
.ok { width: 10px; border: 1px; color: #zzz; height: 20px }
div { width: 10px }
.broken { width: bad!value }
`
	var errs []*ContextualError
	sheet := ParseStylesheetWith(source, collectErrors(&errs))

	// the valid declarations of .ok survive, and .broken parses to an
	// empty but present rule
	tu.AssertEqual(t, len(sheet.Rules), 2)
	ok := sheet.Rules[0].(StyleRule)
	tu.AssertEqual(t, len(ok.Declarations), 2)

	kinds := make([]ErrorKind, len(errs))
	for i, err := range errs {
		kinds[i] = err.Kind
	}
	tu.AssertEqual(t, kinds, []ErrorKind{
		UnsupportedAtRule,   // @media
		UnsupportedProperty, // border
		InvalidValue,        // #zzz
		InvalidValue,        // div selector
		InvalidValue,        // bad!value
	})

	tu.AssertEqual(t, errs[1].BadCSS, "border:1px")
	tu.AssertEqual(t, strings.HasPrefix(errs[0].Error(), "Failed to parse css at (line: 2, col: 1)"), true)
}

func TestParseInline(t *testing.T) {
	var errs []*ContextualError
	decls := ParseInlineWith("width: 50%; nope: 1px; height: 4px", collectErrors(&errs))
	tu.AssertEqual(t, len(decls), 2)
	tu.AssertEqual(t, len(errs), 1)
	tu.AssertEqual(t, errs[0].Kind, UnsupportedProperty)
}

func TestInlineStyle(t *testing.T) {
	ctx := values.DefaultContext()
	inline := NewInlineStyle("position: absolute; top: 1em; color: red")

	style := inline.ToStyle(&ctx)
	tu.AssertEqual(t, style.PositionType, keywords.PositionAbsolute)
	tu.AssertEqual(t, style.Position.Top, properties.Px(16))

	paint := inline.ToPaint()
	tu.AssertEqual(t, paint.Color, parser.RGBA{R: 1, G: 0, B: 0, A: 1})
}

func TestImportantIgnored(t *testing.T) {
	decls := ParseInlineWith("width: 10px !important", func(*ContextualError) {})
	tu.AssertEqual(t, len(decls), 1)
	tu.AssertEqual(t, decls[0], properties.Declaration(properties.Width{
		Value: values.Specified[values.LengthPercentage](values.AbsoluteLength{Value: 10, Unit: values.Px}),
	}))
}

func TestParseStylesheetFile(t *testing.T) {
	logger.ProgressLogger.SetOutput(io.Discard)
	defer logger.ProgressLogger.SetOutput(os.Stdout)

	path := filepath.Join(t.TempDir(), "test.css")
	err := os.WriteFile(path, []byte(".a { width: 1px }"), 0o644)
	tu.AssertNoErr(t, err)

	sheet, err := ParseStylesheetFile(path)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, len(sheet.Rules), 1)

	_, err = ParseStylesheetFile(filepath.Join(t.TempDir(), "absent.css"))
	tu.AssertEqual(t, err != nil, true)
}

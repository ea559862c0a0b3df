package parser

import (
	"testing"

	tu "github.com/sharky-david/bevy-prototype-css/utils/testutils"
)

func parseOneDeclarationString(css string, skipComments bool) Compound {
	l := tokenizeString(css, skipComments)
	return ParseOneDeclaration(l)
}

func TestOneDeclaration(t *testing.T) {
	declaration := parseOneDeclarationString("width : 50%", true)
	decl, ok := declaration.(Declaration)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, decl.Name, "width")
	tu.AssertEqual(t, decl.Important, false)
	value := NewIter(decl.Value).NextSignificant()
	tu.AssertEqual(t, value.Kind(), KPercentage)

	declaration = parseOneDeclarationString(" : red", true)
	_, ok = declaration.(ParseError)
	tu.AssertEqual(t, ok, true)

	declaration = parseOneDeclarationString("color red", true)
	_, ok = declaration.(ParseError)
	tu.AssertEqual(t, ok, true)

	declaration = parseOneDeclarationString("", true)
	parseError, ok := declaration.(ParseError)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, parseError.Code(), ErrEmpty)
}

func TestImportant(t *testing.T) {
	declaration := parseOneDeclarationString("width: 50% ! important", true)
	decl := declaration.(Declaration)
	tu.AssertEqual(t, decl.Important, true)
	// the "!important" tokens are not part of the value
	tu.AssertEqual(t, NewIter(decl.Value).Exhausted(), false)
	for _, token := range decl.Value {
		if token.Kind() == KLiteral || token.Kind() == KIdent {
			t.Fatalf("unexpected token %s in value", token.Kind())
		}
	}

	declaration = parseOneDeclarationString("width: 50% !IMPORTANT", true)
	tu.AssertEqual(t, declaration.(Declaration).Important, true)

	// "!" alone is just an invalid value, not an important flag
	declaration = parseOneDeclarationString("width: 50% !", true)
	tu.AssertEqual(t, declaration.(Declaration).Important, false)
}

func TestDeclarationList(t *testing.T) {
	compounds := ParseDeclarationListString("width: 4px; color: red;; height : auto", true, true)
	tu.AssertEqual(t, len(compounds), 3)
	names := make([]string, len(compounds))
	for i, compound := range compounds {
		names[i] = compound.(Declaration).Name
	}
	tu.AssertEqual(t, names, []string{"width", "color", "height"})
}

func TestDeclarationListRecovery(t *testing.T) {
	// the invalid chunk is dropped at the first ";", the rest is kept
	compounds := ParseDeclarationListString("width; color: red", true, true)
	tu.AssertEqual(t, len(compounds), 2)
	_, ok := compounds[0].(ParseError)
	tu.AssertEqual(t, ok, true)
	decl, ok := compounds[1].(Declaration)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, decl.Name, "color")
}

func TestAtRule(t *testing.T) {
	compounds := ParseStylesheetBytes([]byte("@import \"foo.css\"; #a { width: 4px }"), true, true)
	tu.AssertEqual(t, len(compounds), 2)

	atRule, ok := compounds[0].(AtRule)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, atRule.AtKeyword, "import")
	tu.AssertEqual(t, atRule.Content == nil, true)

	rule, ok := compounds[1].(QualifiedRule)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, rule.Prelude[0].Kind(), KHash)
}

func TestAtRuleWithBlock(t *testing.T) {
	compounds := ParseStylesheetBytes([]byte("@media print { #a { color: red } }"), true, true)
	tu.AssertEqual(t, len(compounds), 1)
	atRule := compounds[0].(AtRule)
	tu.AssertEqual(t, atRule.AtKeyword, "media")
	tu.AssertEqual(t, atRule.Content != nil, true)
}

func TestRuleWithoutBlock(t *testing.T) {
	compounds := ParseStylesheetBytes([]byte("#a .b"), true, true)
	tu.AssertEqual(t, len(compounds), 1)
	_, ok := compounds[0].(ParseError)
	tu.AssertEqual(t, ok, true)
}

func TestOneRule(t *testing.T) {
	rule := ParseOneRule(tokenizeString(" #a { width: 4px } ", true))
	_, ok := rule.(QualifiedRule)
	tu.AssertEqual(t, ok, true)

	invalid := ParseOneRule(tokenizeString("#a {} #b {}", true))
	parseError, ok := invalid.(ParseError)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, parseError.Code(), ErrExtraInput)
}

func TestRuleList(t *testing.T) {
	compounds := ParseRuleList(tokenizeString(`#a { width: 4px } @import "foo.css"; .b {}`, true), true, true)
	tu.AssertEqual(t, len(compounds), 3)
	_, ok := compounds[0].(QualifiedRule)
	tu.AssertEqual(t, ok, true)
	atRule, ok := compounds[1].(AtRule)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, atRule.AtKeyword, "import")
	_, ok = compounds[2].(QualifiedRule)
	tu.AssertEqual(t, ok, true)

	// unlike ParseStylesheet, legacy "<!--" and "-->" tokens are kept
	compounds = ParseRuleList(tokenizeString("<!-- #a {} -->", true), true, true)
	tu.AssertEqual(t, len(compounds), 2)
	rule, ok := compounds[0].(QualifiedRule)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, rule.Prelude[0].Kind(), KLiteral)
	_, ok = compounds[1].(ParseError)
	tu.AssertEqual(t, ok, true)
}

func TestStylesheetComments(t *testing.T) {
	// top-level legacy "<!--" and "-->" tokens are ignored
	compounds := ParseStylesheetBytes([]byte("<!-- #a { width: 4px } -->"), true, true)
	tu.AssertEqual(t, len(compounds), 1)
	_, ok := compounds[0].(QualifiedRule)
	tu.AssertEqual(t, ok, true)
}

func TestIterBacktrack(t *testing.T) {
	iter := NewIter(tokenizeString("auto 4px", true))
	save := iter.Save()
	first := iter.NextSignificant()
	tu.AssertEqual(t, first.Kind(), KIdent)
	iter.Restore(save)
	first = iter.NextSignificant()
	tu.AssertEqual(t, first.Kind(), KIdent)
	tu.AssertEqual(t, iter.NextSignificant().Kind(), KDimension)
	tu.AssertEqual(t, iter.Exhausted(), true)
	tu.AssertEqual(t, iter.NextSignificant() == nil, true)
}

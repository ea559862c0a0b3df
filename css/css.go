// Package css ties the tokenizer, the selector engine and the
// property registry together into a stylesheet model : rules are
// parsed leniently, invalid chunks being reported and skipped, and
// parsed declarations can be applied to style and paint targets.
package css

import (
	"os"
	"strings"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties"
	"github.com/sharky-david/bevy-prototype-css/css/selector"
	"github.com/sharky-david/bevy-prototype-css/css/values"
	"github.com/sharky-david/bevy-prototype-css/logger"
)

// Rule is a top level stylesheet rule. Style rules are the only kind
// currently retained : at-rules are reported and dropped.
type Rule interface {
	isRule()
}

// StyleRule is a selector group and the declarations of its block.
// The declarations slice is shared by every selector of the group.
type StyleRule struct {
	Selectors    selector.SelectorGroup
	Declarations []properties.Declaration
}

func (StyleRule) isRule() {}

// Stylesheet is an ordered list of parsed rules.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses `source` as a stylesheet, reporting every
// rejected chunk through [logger.WarningLogger].
func ParseStylesheet(source string) Stylesheet {
	return ParseStylesheetWith(source, nil)
}

// ParseStylesheetBytes is [ParseStylesheet] for a raw byte source.
func ParseStylesheetBytes(input []byte) Stylesheet {
	return parseStylesheet(input, nil)
}

// ParseStylesheetFile reads and parses the stylesheet at `path`.
func ParseStylesheetFile(path string) (Stylesheet, error) {
	logger.ProgressLogger.Printf("Fetching and parsing CSS - %s", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return Stylesheet{}, err
	}
	return parseStylesheet(content, nil), nil
}

// ParseStylesheetWith is [ParseStylesheet] with an explicit
// diagnostics handler.
func ParseStylesheetWith(source string, handler ErrorHandler) Stylesheet {
	return parseStylesheet([]byte(source), handler)
}

func parseStylesheet(input []byte, handler ErrorHandler) Stylesheet {
	if handler == nil {
		handler = logError
	}
	var sheet Stylesheet
	for _, compound := range parser.ParseStylesheetBytes(input, true, true) {
		switch compound := compound.(type) {
		case parser.QualifiedRule:
			if rule, ok := parseStyleRule(compound, handler); ok {
				sheet.Rules = append(sheet.Rules, rule)
			}
		case parser.AtRule:
			handler(atRuleError(compound))
		case parser.ParseError:
			handler(newContextualError(InvalidValue, "", compound))
		}
	}
	return sheet
}

func parseStyleRule(rule parser.QualifiedRule, handler ErrorHandler) (StyleRule, bool) {
	group, err := selector.Parse(rule.Prelude)
	if err != nil {
		handler(newContextualError(InvalidValue, strings.TrimSpace(parser.Serialize(rule.Prelude)), err))
		return StyleRule{}, false
	}
	return StyleRule{
		Selectors:    group,
		Declarations: parseDeclarations(rule.Content, handler),
	}, true
}

// parseDeclarations parses a declaration block, skipping and
// reporting the invalid entries.
func parseDeclarations(content []parser.Token, handler ErrorHandler) []properties.Declaration {
	var out []properties.Declaration
	for _, compound := range parser.ParseDeclarationList(content, true, true) {
		switch compound := compound.(type) {
		case parser.Declaration:
			declaration, err := properties.ParseTokens(compound.Name, compound.Value)
			if err != nil {
				handler(declarationError(compound, err))
				continue
			}
			out = append(out, declaration)
		case parser.AtRule:
			handler(atRuleError(compound))
		case parser.ParseError:
			handler(newContextualError(InvalidValue, "", compound))
		}
	}
	return out
}

func declarationError(declaration parser.Declaration, err error) *ContextualError {
	kind := InvalidValue
	if parseError, ok := err.(parser.ParseError); ok && parseError.Code() == parser.ErrUnknownProperty {
		kind = UnsupportedProperty
	}
	badCSS := declaration.Name + ":" + strings.TrimSpace(parser.Serialize(declaration.Value))
	return newContextualError(kind, badCSS, err)
}

func atRuleError(rule parser.AtRule) *ContextualError {
	kind := UnsupportedAtRule
	if hasParseError(rule.Prelude) || hasParseError(rule.Content) {
		kind = InvalidAtRule
	}
	err := parser.NewErrorf(rule.Pos(), parser.ErrInvalid, "@-rules are not evaluated")
	return newContextualError(kind, "@"+rule.AtKeyword, err)
}

func hasParseError(tokens []parser.Token) bool {
	for _, token := range tokens {
		if _, ok := token.(parser.ParseError); ok {
			return true
		}
	}
	return false
}

// MatchingDeclarations returns, in document order, the declarations
// of every rule whose selector group matches `identity`. No cascade
// is involved : a later declaration simply overrides an earlier one
// when applied.
func (s Stylesheet) MatchingDeclarations(identity selector.Identity) []properties.Declaration {
	var out []properties.Declaration
	for _, rule := range s.Rules {
		styleRule, ok := rule.(StyleRule)
		if !ok {
			continue
		}
		if styleRule.Selectors.Matches(identity) {
			out = append(out, styleRule.Declarations...)
		}
	}
	return out
}

// ApplyToStyle applies the declarations matching `identity` to
// `target`, in document order.
func (s Stylesheet) ApplyToStyle(identity selector.Identity, ctx *values.Context, target properties.StyleTarget) {
	for _, declaration := range s.MatchingDeclarations(identity) {
		properties.ApplyToStyle(declaration, ctx, target)
	}
}

// ApplyToPaint applies the declarations matching `identity` to
// `target`, in document order.
func (s Stylesheet) ApplyToPaint(identity selector.Identity, target properties.PaintTarget) {
	for _, declaration := range s.MatchingDeclarations(identity) {
		properties.ApplyToPaint(declaration, target)
	}
}

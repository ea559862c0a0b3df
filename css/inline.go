package css

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties"
	"github.com/sharky-david/bevy-prototype-css/css/values"
)

// ParseInline parses `source` as a bare declaration block, like the
// "style" attribute of an HTML element. Invalid declarations are
// reported through [logger.WarningLogger] and skipped.
func ParseInline(source string) []properties.Declaration {
	return ParseInlineWith(source, nil)
}

// ParseInlineWith is [ParseInline] with an explicit diagnostics
// handler.
func ParseInlineWith(source string, handler ErrorHandler) []properties.Declaration {
	if handler == nil {
		handler = logError
	}
	return parseDeclarations(parser.Tokenize([]byte(source), true), handler)
}

// InlineStyle holds the parsed declarations of an inline style
// string, ready to be applied.
type InlineStyle struct {
	Declarations []properties.Declaration
}

// NewInlineStyle parses `source` as a declaration block.
func NewInlineStyle(source string) InlineStyle {
	return InlineStyle{Declarations: ParseInline(source)}
}

// ToStyle applies the declarations to a fresh default style.
func (s InlineStyle) ToStyle(ctx *values.Context) *properties.Style {
	style := properties.NewStyle()
	for _, declaration := range s.Declarations {
		properties.ApplyToStyle(declaration, ctx, style)
	}
	return style
}

// ToPaint applies the declarations to a fresh default paint.
func (s InlineStyle) ToPaint() *properties.Paint {
	paint := properties.NewPaint()
	for _, declaration := range s.Declarations {
		properties.ApplyToPaint(declaration, paint)
	}
	return paint
}

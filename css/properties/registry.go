package properties

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/css/properties/keywords"
	"github.com/sharky-david/bevy-prototype-css/css/values"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

type parseFunc = func(*parser.TokensIter) (Declaration, error)

// registry is the closed set of supported properties. Names are
// matched ASCII-case-insensitively.
var registry = map[string]parseFunc{
	// display
	"display":    parseDisplay,
	"direction":  parseDirection,
	"width":      lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Width{v} }),
	"height":     lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Height{v} }),
	"min-width":  lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MinWidth{v} }),
	"min-height": lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MinHeight{v} }),
	"max-width":  lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MaxWidth{v} }),
	"max-height": lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MaxHeight{v} }),
	"overflow":   parseOverflow,

	// position
	"position": parsePosition,
	"top":      lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Top{v} }),
	"right":    lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Right{v} }),
	"bottom":   lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Bottom{v} }),
	"left":     lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return Left{v} }),

	// flex box
	"flex-direction": parseFlexDirection,
	"flex-wrap":      parseFlexWrap,
	"flex-grow":      parseFlexGrow,
	"flex-shrink":    parseFlexShrink,
	"flex-basis":     lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return FlexBasis{v} }),
	"aspect-ratio":   parseAspectRatio,

	// alignment
	"align-items":     parseAlignItems,
	"align-self":      parseAlignSelf,
	"align-content":   parseAlignContent,
	"justify-content": parseJustifyContent,

	// margins
	"margin":        sided(func(v values.SidedValue[values.LengthPercentageOrAuto]) Declaration { return Margin{v} }),
	"margin-top":    lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MarginTop{v} }),
	"margin-right":  lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MarginRight{v} }),
	"margin-bottom": lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MarginBottom{v} }),
	"margin-left":   lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return MarginLeft{v} }),

	// padding
	"padding":        sided(func(v values.SidedValue[values.LengthPercentageOrAuto]) Declaration { return Padding{v} }),
	"padding-top":    lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return PaddingTop{v} }),
	"padding-right":  lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return PaddingRight{v} }),
	"padding-bottom": lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return PaddingBottom{v} }),
	"padding-left":   lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return PaddingLeft{v} }),

	// borders
	"border-width":        sided(func(v values.SidedValue[values.LengthPercentageOrAuto]) Declaration { return BorderWidth{v} }),
	"border-width-top":    lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return BorderWidthTop{v} }),
	"border-width-right":  lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return BorderWidthRight{v} }),
	"border-width-bottom": lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return BorderWidthBottom{v} }),
	"border-width-left":   lengthAuto(func(v values.LengthPercentageOrAuto) Declaration { return BorderWidthLeft{v} }),

	// color
	"color": parseColor,
}

// IsSupported reports whether `name` is a supported property name.
func IsSupported(name string) bool {
	_, ok := registry[utils.AsciiLower(name)]
	return ok
}

// ParseDeclaration parses the value of the property `name` from `it`,
// and asserts that nothing significant remains after it. Unknown
// property names and invalid values are reported with distinct error
// kinds.
func ParseDeclaration(name string, it *parser.TokensIter) (Declaration, error) {
	parse, ok := registry[utils.AsciiLower(name)]
	if !ok {
		return nil, parser.NewErrorf(it.Position(), parser.ErrUnknownProperty, "unknown property: %s", name)
	}
	declaration, err := parse(it)
	if err != nil {
		return nil, err
	}
	if !it.Exhausted() {
		token := it.NextSignificant()
		return nil, parser.NewErrorf(token.Pos(), parser.ErrValueNotExhausted,
			"unexpected %s after the value of %s", token.Kind(), name)
	}
	return declaration, nil
}

// ParseTokens is a convenience wrapper around [ParseDeclaration] for
// an already tokenized value.
func ParseTokens(name string, value []parser.Token) (Declaration, error) {
	return ParseDeclaration(name, parser.NewIter(value))
}

func parseKeyword[T ~uint8](it *parser.TokensIter, lookup func(string) T, property string) (T, error) {
	token := it.NextSignificant()
	switch token := token.(type) {
	case parser.Ident:
		if k := lookup(utils.AsciiLower(token.Value)); k != 0 {
			return k, nil
		}
		return 0, parser.NewErrorf(token.Pos(), parser.ErrInvalidKeyword,
			"invalid %s keyword: %s", property, token.Value)
	case nil:
		return 0, parser.NewErrorf(it.Position(), parser.ErrEndOfInput,
			"expected a %s keyword, got end of input", property)
	default:
		return 0, parser.NewErrorf(token.Pos(), parser.ErrUnexpectedToken,
			"expected a %s keyword, got %s", property, token.Kind())
	}
}

func parseDisplay(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewDisplay, "display")
	return Display{k}, err
}

func parseDirection(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewDirection, "direction")
	return Direction{k}, err
}

func parseOverflow(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewOverflow, "overflow")
	return Overflow{k}, err
}

func parsePosition(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewPositionType, "position")
	return Position{k}, err
}

func parseFlexDirection(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewFlexDirection, "flex-direction")
	return FlexDirection{k}, err
}

func parseFlexWrap(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewFlexWrap, "flex-wrap")
	return FlexWrap{k}, err
}

func parseAlignItems(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewAlignItems, "align-items")
	return AlignItems{k}, err
}

func parseAlignSelf(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewAlignSelf, "align-self")
	return AlignSelf{k}, err
}

func parseAlignContent(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewAlignContent, "align-content")
	return AlignContent{k}, err
}

func parseJustifyContent(it *parser.TokensIter) (Declaration, error) {
	k, err := parseKeyword(it, keywords.NewJustifyContent, "justify-content")
	return JustifyContent{k}, err
}

func lengthAuto(wrap func(values.LengthPercentageOrAuto) Declaration) parseFunc {
	return func(it *parser.TokensIter) (Declaration, error) {
		v, err := values.ParseLengthPercentageOrAuto(it, values.AllowedAll)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

func sided(wrap func(values.SidedValue[values.LengthPercentageOrAuto]) Declaration) parseFunc {
	return func(it *parser.TokensIter) (Declaration, error) {
		v, err := values.ParseSided(it, func(it *parser.TokensIter) (values.LengthPercentageOrAuto, error) {
			return values.ParseLengthPercentageOrAuto(it, values.AllowedAll)
		})
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

func parseFlexGrow(it *parser.TokensIter) (Declaration, error) {
	v, err := values.ParseNonNegativeNumber(it)
	if err != nil {
		return nil, err
	}
	return FlexGrow{v}, nil
}

func parseFlexShrink(it *parser.TokensIter) (Declaration, error) {
	v, err := values.ParseNonNegativeNumber(it)
	if err != nil {
		return nil, err
	}
	return FlexShrink{v}, nil
}

func parseAspectRatio(it *parser.TokensIter) (Declaration, error) {
	v, err := values.ParseRatioOrAuto(it)
	if err != nil {
		return nil, err
	}
	return AspectRatio{v}, nil
}

func parseColor(it *parser.TokensIter) (Declaration, error) {
	token := it.NextSignificant()
	if token == nil {
		return nil, parser.NewErrorf(it.Position(), parser.ErrEndOfInput, "expected a color, got end of input")
	}
	color := parser.ParseColor(token)
	if color.IsNone() {
		return nil, parser.NewErrorf(token.Pos(), parser.ErrInvalidValue,
			"invalid color: %s", parser.Serialize([]parser.Token{token}))
	}
	return Color{color}, nil
}

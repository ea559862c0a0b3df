package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

// Kind identifies the concrete type of a [Token].
type Kind uint8

const (
	KIdent Kind = iota
	KAtKeyword
	KHash
	KString
	KURL
	KNumber
	KPercentage
	KDimension
	KLiteral
	KWhitespace
	KComment
	KParseError
	KFunctionBlock
	KParenthesesBlock
	KSquareBracketsBlock
	KCurlyBracketsBlock
)

func (k Kind) String() string {
	switch k {
	case KIdent:
		return "ident"
	case KAtKeyword:
		return "at-keyword"
	case KHash:
		return "hash"
	case KString:
		return "string"
	case KURL:
		return "url"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KLiteral:
		return "literal"
	case KWhitespace:
		return "whitespace"
	case KComment:
		return "comment"
	case KParseError:
		return "error"
	case KFunctionBlock:
		return "function"
	case KParenthesesBlock:
		return "() block"
	case KSquareBracketsBlock:
		return "[] block"
	case KCurlyBracketsBlock:
		return "{} block"
	default:
		return "<invalid token kind>"
	}
}

// Pos is the position of a token in the original source,
// used in error messages. The first character of a line
// is in column 1.
type Pos struct {
	Line, Column int
}

func newPosition(line, column int) Pos { return Pos{Line: line, Column: column} }

// Token is a CSS component value: either a simple token, or
// a block or function token holding its content.
type Token interface {
	Pos() Pos
	Kind() Kind
	serializeTo(io.StringWriter)
}

type Ident struct {
	pos   Pos
	Value string
}

type AtKeyword struct {
	pos   Pos
	Value string
}

type Hash struct {
	pos     Pos
	Value   string
	isIdent bool
}

// IsIdentifier reports whether the hash token would also
// parse as an identifier, as required for an id selector.
func (t Hash) IsIdentifier() bool { return t.isIdent }

type String struct {
	pos     Pos
	Value   string
	isError bool
}

const (
	isErrorInString uint8 = 1 << iota
	isErrorInURL
)

type URL struct {
	pos   Pos
	Value string
	flag  uint8
}

type numeric struct {
	pos Pos
	// Repr is the textual representation found in the source.
	Repr  string
	Value utils.Fl
	IsInt bool
}

type Number struct{ numeric }

type Percentage struct{ numeric }

type Dimension struct {
	numeric
	Unit string
}

type Literal struct {
	pos   Pos
	Value string
}

type Whitespace struct {
	pos   Pos
	Value string
}

type Comment struct {
	pos   Pos
	Value string
}

type ParenthesesBlock struct {
	pos       Pos
	Arguments []Token
}

type SquareBracketsBlock struct {
	pos       Pos
	Arguments []Token
}

type CurlyBracketsBlock struct {
	pos       Pos
	Arguments []Token
}

type FunctionBlock struct {
	pos       Pos
	Name      string
	Arguments []Token
}

func (t Ident) Pos() Pos               { return t.pos }
func (t AtKeyword) Pos() Pos           { return t.pos }
func (t Hash) Pos() Pos                { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t URL) Pos() Pos                 { return t.pos }
func (t numeric) Pos() Pos             { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t Whitespace) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t ParseError) Pos() Pos          { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }
func (t FunctionBlock) Pos() Pos       { return t.pos }

func (t Ident) Kind() Kind               { return KIdent }
func (t AtKeyword) Kind() Kind           { return KAtKeyword }
func (t Hash) Kind() Kind                { return KHash }
func (t String) Kind() Kind              { return KString }
func (t URL) Kind() Kind                 { return KURL }
func (t Number) Kind() Kind              { return KNumber }
func (t Percentage) Kind() Kind          { return KPercentage }
func (t Dimension) Kind() Kind           { return KDimension }
func (t Literal) Kind() Kind             { return KLiteral }
func (t Whitespace) Kind() Kind          { return KWhitespace }
func (t Comment) Kind() Kind             { return KComment }
func (t ParseError) Kind() Kind          { return KParseError }
func (t ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (t SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (t CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }
func (t FunctionBlock) Kind() Kind       { return KFunctionBlock }

// NewIdent returns an ident token with the given value.
func NewIdent(value string, pos Pos) Ident { return Ident{pos: pos, Value: value} }

// NewLiteral returns a literal token with the given value.
func NewLiteral(value string, pos Pos) Literal { return Literal{pos: pos, Value: value} }

// NewNumber returns a number token with the given value.
func NewNumber(value utils.Fl, pos Pos) Number {
	repr := strconv.FormatFloat(float64(value), 'g', -1, 32)
	return Number{numeric{pos: pos, Repr: repr, Value: value, IsInt: value == utils.Fl(int(value))}}
}

// NewDimension returns a dimension token with the given value and unit.
func NewDimension(value utils.Fl, unit string, pos Pos) Dimension {
	return Dimension{numeric: NewNumber(value, pos).numeric, Unit: unit}
}

// NewFunctionBlock returns a function token with the given name and arguments.
func NewFunctionBlock(name string, arguments []Token, pos Pos) FunctionBlock {
	return FunctionBlock{pos: pos, Name: name, Arguments: arguments}
}

// ErrorKind describes the reason of a [ParseError].
type ErrorKind string

const (
	errBadString   ErrorKind = "bad-string"
	errBadURL      ErrorKind = "bad-url"
	errEofInString ErrorKind = "eof-in-string"
	errEofInURL    ErrorKind = "eof-in-url"
	errP           ErrorKind = ")"
	errB           ErrorKind = "]"
	errC           ErrorKind = "}"

	ErrEmpty      ErrorKind = "empty"
	ErrExtraInput ErrorKind = "extra-input"
	ErrInvalid    ErrorKind = "invalid"

	// errors raised when parsing property values

	ErrUnexpectedToken      ErrorKind = "unexpected token"
	ErrEndOfInput           ErrorKind = "end of input"
	ErrMissingDimension     ErrorKind = "missing dimension"
	ErrUnexpectedDimension  ErrorKind = "unexpected dimension"
	ErrFunctionNotSupported ErrorKind = "function not supported"
	ErrInvalidKeyword       ErrorKind = "invalid keyword"
	ErrInvalidValue         ErrorKind = "invalid value"
	ErrUnknownProperty      ErrorKind = "unknown property"
	ErrValueNotExhausted    ErrorKind = "value not exhausted"
	ErrInvalidSelector      ErrorKind = "invalid selector"
)

// ParseError is a diagnostic emitted for malformed input. It is
// both a component value, so that bad strings or unmatched brackets
// survive tokenization, and a Go error.
type ParseError struct {
	pos     Pos
	kind    ErrorKind
	Message string
}

// NewError returns a ParseError of the given kind.
func NewError(pos Pos, kind ErrorKind, message string) ParseError {
	return ParseError{pos: pos, kind: kind, Message: message}
}

// NewErrorf returns a ParseError of the given kind, formatting its message.
func NewErrorf(pos Pos, kind ErrorKind, format string, args ...interface{}) ParseError {
	return ParseError{pos: pos, kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Code returns the reason of the error.
func (t ParseError) Code() ErrorKind { return t.kind }

func (t ParseError) Error() string { return t.Message }

package css

import (
	"fmt"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/logger"
)

// ErrorKind classifies why part of a stylesheet was rejected.
type ErrorKind uint8

const (
	// UnsupportedAtRule is an at-rule this engine does not evaluate.
	UnsupportedAtRule ErrorKind = iota
	// InvalidAtRule is an at-rule whose content is itself malformed.
	InvalidAtRule
	// UnsupportedProperty is a declaration for a property outside the
	// supported set.
	UnsupportedProperty
	// InvalidValue is a declaration, selector or rule that is
	// syntactically broken.
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedAtRule:
		return "unsupported @-rule"
	case InvalidAtRule:
		return "invalid @-rule"
	case UnsupportedProperty:
		return "unsupported property"
	default:
		return "invalid value"
	}
}

// ContextualError describes one rejected chunk of a stylesheet, with
// the raw CSS at fault and its position in the source.
type ContextualError struct {
	Err    error
	BadCSS string
	Kind   ErrorKind
}

func (e *ContextualError) Error() string {
	pos := parser.Pos{Line: 1, Column: 1}
	if parseError, ok := e.Err.(parser.ParseError); ok {
		pos = parseError.Pos()
	}
	return fmt.Sprintf("Failed to parse css at (line: %d, col: %d): %s (%s), %s",
		pos.Line, pos.Column, e.Kind, e.BadCSS, e.Err)
}

func (e *ContextualError) Unwrap() error { return e.Err }

// ErrorHandler receives the diagnostics emitted while parsing a
// stylesheet. A nil handler logs through [logger.WarningLogger].
type ErrorHandler func(*ContextualError)

func logError(err *ContextualError) {
	logger.WarningLogger.Println(err)
}

func newContextualError(kind ErrorKind, badCSS string, err error) *ContextualError {
	return &ContextualError{Kind: kind, BadCSS: badCSS, Err: err}
}

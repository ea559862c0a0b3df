package values

import (
	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// MaybeAuto adds the "auto" keyword state to a value type.
type MaybeAuto[T Numeric] struct {
	Value T
	Auto  bool
}

// AutoValue returns the auto state.
func AutoValue[T Numeric]() MaybeAuto[T] { return MaybeAuto[T]{Auto: true} }

// Specified wraps a parsed value.
func Specified[T Numeric](value T) MaybeAuto[T] { return MaybeAuto[T]{Value: value} }

// NotAuto returns the wrapped value, and false for auto.
func (m MaybeAuto[T]) NotAuto() (T, bool) { return m.Value, !m.Auto }

// AutoOr returns the wrapped value, or the result of `fallback`
// for auto.
func (m MaybeAuto[T]) AutoOr(fallback func() T) T {
	if m.Auto {
		return fallback()
	}
	return m.Value
}

// "auto" is a keyword, not a number : all three predicates report
// false on it, whatever the wrapped type would say.

func (m MaybeAuto[T]) IsZero() bool     { return !m.Auto && m.Value.IsZero() }
func (m MaybeAuto[T]) IsNegative() bool { return !m.Auto && m.Value.IsNegative() }
func (m MaybeAuto[T]) IsInfinite() bool { return !m.Auto && m.Value.IsInfinite() }

// ParseMaybeAuto reads the "auto" keyword (matched
// case-insensitively), or delegates to `parse`.
func ParseMaybeAuto[T Numeric](it *parser.TokensIter, parse func(*parser.TokensIter) (T, error)) (MaybeAuto[T], error) {
	save := it.Save()
	if ident, ok := it.NextSignificant().(parser.Ident); ok && utils.AsciiLower(ident.Value) == "auto" {
		return MaybeAuto[T]{Auto: true}, nil
	}
	it.Restore(save)
	value, err := parse(it)
	if err != nil {
		return MaybeAuto[T]{}, err
	}
	return MaybeAuto[T]{Value: value}, nil
}

// Package selector implements parsing and matching for the selector
// subset used by UI stylesheets : the universal selector, id and class
// selectors, and pseudo-class stubs, without combinators.
package selector

import (
	"strings"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
	"github.com/sharky-david/bevy-prototype-css/utils"
)

// CaseSensitivity is the comparison policy for id and class names.
type CaseSensitivity uint8

const (
	CaseSensitive CaseSensitivity = iota
	ASCIICaseInsensitive
)

func (c CaseSensitivity) eq(a, b string) bool {
	if c == ASCIICaseInsensitive {
		return utils.AsciiEqualFold(a, b)
	}
	return a == b
}

// Sel is a single selector : a sequence of simple selectors, all of
// which must match.
type Sel interface {
	Matches(identity Identity) bool
	Specificity() Specificity
	String() string
}

type simpleKind uint8

const (
	universal simpleKind = iota
	idSelector
	classSelector
	pseudoClass
)

type simpleSelector struct {
	kind simpleKind
	name string
}

func (s simpleSelector) matches(identity Identity, sensitivity CaseSensitivity) bool {
	switch s.kind {
	case universal:
		return true
	case idSelector:
		return identity.ID != "" && sensitivity.eq(identity.ID, s.name)
	case classSelector:
		for _, class := range identity.Classes {
			if sensitivity.eq(class, s.name) {
				return true
			}
		}
		return false
	default:
		// pseudo classes are parsed but never match
		return false
	}
}

func (s simpleSelector) String() string {
	switch s.kind {
	case universal:
		return "*"
	case idSelector:
		return "#" + s.name
	case classSelector:
		return "." + s.name
	default:
		return ":" + s.name
	}
}

// Selector is a compound selector, matching when every one of its
// simple selectors matches.
type Selector struct {
	simples     []simpleSelector
	Sensitivity CaseSensitivity
}

// Matches reports whether every simple selector matches `identity`.
func (s Selector) Matches(identity Identity) bool {
	for _, simple := range s.simples {
		if !simple.matches(identity, s.Sensitivity) {
			return false
		}
	}
	return true
}

// Specificity returns the (id, class, type) counts of the selector.
// Pseudo classes count as classes, per css3-selectors.
func (s Selector) Specificity() Specificity {
	var out Specificity
	for _, simple := range s.simples {
		switch simple.kind {
		case idSelector:
			out[0]++
		case classSelector, pseudoClass:
			out[1]++
		}
	}
	return out
}

func (s Selector) String() string {
	var sb strings.Builder
	for _, simple := range s.simples {
		sb.WriteString(simple.String())
	}
	return sb.String()
}

// SelectorGroup is a comma separated list of selectors, matching when
// any member matches.
type SelectorGroup []Selector

// Matches reports whether any selector of the group matches `identity`.
func (g SelectorGroup) Matches(identity Identity) bool {
	for _, sel := range g {
		if sel.Matches(identity) {
			return true
		}
	}
	return false
}

// MatchWithSpecificity returns the greatest specificity among the
// matching selectors of the group, and false when none match.
func (g SelectorGroup) MatchWithSpecificity(identity Identity) (Specificity, bool) {
	var best Specificity
	matched := false
	for _, sel := range g {
		if !sel.Matches(identity) {
			continue
		}
		if spec := sel.Specificity(); !matched || best.Less(spec) {
			best = spec
		}
		matched = true
	}
	return best, matched
}

func (g SelectorGroup) String() string {
	chunks := make([]string, len(g))
	for i, sel := range g {
		chunks[i] = sel.String()
	}
	return strings.Join(chunks, ", ")
}

// Specificity is the (id, class, type) counts of a selector,
// compared lexicographically.
type Specificity [3]int

// Less reports whether `s` has lower priority than `other`.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Add returns the pairwise sum of two specificities.
func (s Specificity) Add(other Specificity) Specificity {
	return Specificity{s[0] + other[0], s[1] + other[1], s[2] + other[2]}
}

func errInvalidSelector(pos parser.Pos, format string, args ...interface{}) error {
	return parser.NewErrorf(pos, parser.ErrInvalidSelector, format, args...)
}

// ParseGroup tokenizes `source` and parses it as a comma separated
// selector list.
func ParseGroup(source string) (SelectorGroup, error) {
	return Parse(parser.Tokenize([]byte(source), true))
}

// MustCompile is like [ParseGroup] but panics on invalid input. It
// simplifies the declaration of selector variables.
func MustCompile(source string) SelectorGroup {
	group, err := ParseGroup(source)
	if err != nil {
		panic(err)
	}
	return group
}

// Parse reads a comma separated selector list from `tokens`.
func Parse(tokens []parser.Token) (SelectorGroup, error) {
	var (
		group   SelectorGroup
		current []parser.Token
	)
	flush := func(trailer parser.Pos) error {
		sel, err := parseSelector(current, trailer)
		if err != nil {
			return err
		}
		group = append(group, sel)
		current = current[:0]
		return nil
	}
	for _, token := range tokens {
		if lit, ok := token.(parser.Literal); ok && lit.Value == "," {
			if err := flush(lit.Pos()); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, token)
	}
	var end parser.Pos
	if len(tokens) != 0 {
		end = tokens[len(tokens)-1].Pos()
	}
	if err := flush(end); err != nil {
		return nil, err
	}
	return group, nil
}

// parseSelector reads one compound selector : a sequence of simple
// selectors with no whitespace between them.
func parseSelector(tokens []parser.Token, end parser.Pos) (Selector, error) {
	var sel Selector
	it := parser.NewIter(tokens)
	// leading and trailing whitespace is fine, inner whitespace would
	// be a descendant combinator, which is not supported
	for it.HasNext() {
		token := it.Next()
		if isSpace(token) {
			if len(sel.simples) != 0 && it.PeekSignificant() != nil {
				return Selector{}, errInvalidSelector(token.Pos(), "combinators are not supported")
			}
			continue
		}
		simple, err := parseSimple(token, it)
		if err != nil {
			return Selector{}, err
		}
		sel.simples = append(sel.simples, simple)
	}
	if len(sel.simples) == 0 {
		return Selector{}, errInvalidSelector(end, "empty selector")
	}
	return sel, nil
}

func parseSimple(token parser.Token, it *parser.TokensIter) (simpleSelector, error) {
	switch token := token.(type) {
	case parser.Literal:
		switch token.Value {
		case "*":
			return simpleSelector{kind: universal}, nil
		case ".":
			ident, ok := it.Next().(parser.Ident)
			if !ok {
				return simpleSelector{}, errInvalidSelector(token.Pos(), "expected a class name after '.'")
			}
			return simpleSelector{kind: classSelector, name: ident.Value}, nil
		case ":":
			ident, ok := it.Next().(parser.Ident)
			if !ok {
				return simpleSelector{}, errInvalidSelector(token.Pos(), "expected a pseudo class name after ':'")
			}
			return simpleSelector{kind: pseudoClass, name: ident.Value}, nil
		}
	case parser.Hash:
		if token.IsIdentifier() {
			return simpleSelector{kind: idSelector, name: token.Value}, nil
		}
		return simpleSelector{}, errInvalidSelector(token.Pos(), "invalid id selector #%s", token.Value)
	}
	return simpleSelector{}, errInvalidSelector(token.Pos(), "unexpected %s in selector", token.Kind())
}

func isSpace(token parser.Token) bool {
	switch token.(type) {
	case parser.Whitespace, parser.Comment:
		return true
	}
	return false
}

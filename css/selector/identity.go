package selector

import (
	"strings"

	"github.com/sharky-david/bevy-prototype-css/css/parser"
)

// Identity is the matchable description of a styled element : its id,
// if any, and its classes.
type Identity struct {
	ID      string
	Classes []string
}

// NewIdentity builds an identity from a tag string like
// "#id.class1.class2". Both parts are optional, but names may not
// contain whitespace.
func NewIdentity(tag string) (Identity, error) {
	var identity Identity
	rest := tag
	for rest != "" {
		marker := rest[0]
		if marker != '#' && marker != '.' {
			return Identity{}, errInvalidIdentity(tag, "expected '#' or '.', got %q", marker)
		}
		end := 1 + strings.IndexAny(rest[1:], "#.")
		if end == 0 {
			end = len(rest)
		}
		name := rest[1:end]
		rest = rest[end:]
		if name == "" {
			return Identity{}, errInvalidIdentity(tag, "empty name after %q", marker)
		}
		if strings.IndexFunc(name, isWhitespace) != -1 {
			return Identity{}, errInvalidIdentity(tag, "whitespace in name %q", name)
		}
		if marker == '#' {
			if identity.ID != "" {
				return Identity{}, errInvalidIdentity(tag, "more than one id")
			}
			identity.ID = name
		} else {
			identity.Classes = append(identity.Classes, name)
		}
	}
	return identity, nil
}

func errInvalidIdentity(tag, format string, args ...interface{}) error {
	err := parser.NewErrorf(parser.Pos{Line: 1, Column: 1}, parser.ErrInvalidSelector, format, args...)
	err.Message = "invalid identity " + tag + ": " + err.Message
	return err
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func (i Identity) String() string {
	var sb strings.Builder
	if i.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(i.ID)
	}
	for _, class := range i.Classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	return sb.String()
}

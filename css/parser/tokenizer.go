package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

var (
	numberRe    = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)
	hexEscapeRe = regexp.MustCompile(`^([0-9A-Fa-f]{1,6})[ \n\t]?`)
)

// frame is a block or function whose content is still being consumed.
type frame struct {
	tokens []Token
	name   string // function name, empty for plain blocks
	start  Pos
	end    byte // expected closing character, 0 at the top level
}

func (f frame) close() Token {
	switch f.end {
	case ')':
		if f.name != "" {
			return FunctionBlock{pos: f.start, Name: f.name, Arguments: f.tokens}
		}
		return ParenthesesBlock{pos: f.start, Arguments: f.tokens}
	case ']':
		return SquareBracketsBlock{pos: f.start, Arguments: f.tokens}
	default:
		return CurlyBracketsBlock{pos: f.start, Arguments: f.tokens}
	}
}

type tokenizer struct {
	src []byte
	pos int

	counted     int // prefix of src already scanned for newlines
	line        int
	lastNewline int

	stack        []frame // enclosing blocks, in order, innermost last
	skipComments bool
}

func tokenizeString(css string, skipComments bool) []Token {
	return Tokenize([]byte(css), skipComments)
}

// Tokenize parses a list of component values.
// If `skipComments` is true, ignore CSS comments :
// the return values (and recursively its blocks and functions)
// will not contain any `Comment` object.
func Tokenize(css []byte, skipComments bool) []Token {
	// This turns out to be faster than a regexp:
	css = bytes.ReplaceAll(css, []byte("\u0000"), []byte("\uFFFD"))
	css = bytes.ReplaceAll(css, []byte("\r\n"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\r"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\f"), []byte("\n"))

	tz := tokenizer{
		src:          css,
		line:         1,
		lastNewline:  -1,
		stack:        []frame{{}},
		skipComments: skipComments,
	}
	for tz.pos < len(tz.src) {
		for i := tz.counted; i < tz.pos; i++ {
			if tz.src[i] == '\n' {
				tz.line++
				tz.lastNewline = i
			}
		}
		tz.counted = tz.pos
		// First character in a line is in column 1.
		tz.step(newPosition(tz.line, tz.pos-tz.lastNewline))
	}
	for len(tz.stack) > 1 { // blocks left open at EOF
		tz.closeBlock()
	}
	return tz.stack[0].tokens
}

func (tz *tokenizer) emit(t Token) {
	f := &tz.stack[len(tz.stack)-1]
	f.tokens = append(f.tokens, t)
}

func (tz *tokenizer) openBlock(endChar byte, name string, pos Pos) {
	tz.stack = append(tz.stack, frame{name: name, start: pos, end: endChar})
}

func (tz *tokenizer) closeBlock() {
	f := tz.stack[len(tz.stack)-1]
	tz.stack = tz.stack[:len(tz.stack)-1]
	tz.emit(f.close())
}

// step consumes exactly one token (or opens/closes one block),
// advancing tz.pos.
func (tz *tokenizer) step(tokenPos Pos) {
	css, length := tz.src, len(tz.src)
	pos := tz.pos
	c := css[pos]

	if c == ' ' || c == '\n' || c == '\t' {
		start := pos
		for pos++; pos < length; pos++ {
			if u := css[pos]; u != ' ' && u != '\n' && u != '\t' {
				break
			}
		}
		tz.emit(Whitespace{pos: tokenPos, Value: string(css[start:pos])})
		tz.pos = pos
		return
	}

	if bytes.HasPrefix(css[pos:], []byte("-->")) { // Check before identifiers
		tz.emit(Literal{pos: tokenPos, Value: "-->"})
		tz.pos = pos + 3
		return
	}

	if isIdentStart(css, pos) {
		value, newPos := consumeIdent(css, pos)
		pos = newPos
		if !(pos < length && css[pos] == '(') { // Not a function
			tz.emit(Ident{pos: tokenPos, Value: value})
			tz.pos = pos
			return
		}
		pos++ // Skip the "("
		if utils.AsciiLower(value) == "url" {
			// Unquoted urls are their own token
			urlPos := pos
			for urlPos < length && (css[urlPos] == ' ' || css[urlPos] == '\n' || css[urlPos] == '\t') {
				urlPos++
			}
			if urlPos >= length || (css[urlPos] != '"' && css[urlPos] != '\'') {
				tz.pos = tz.urlToken(tokenPos, pos)
				return
			}
		}
		tz.openBlock(')', value, tokenPos)
		tz.pos = pos
		return
	}

	if match := numberRe.FindIndex(css[pos:]); match != nil {
		repr := string(css[pos : pos+match[1]])
		pos += match[1]
		value, _ := strconv.ParseFloat(repr, 32)
		if value == 0 {
			value = 0. // workaround -0
		}
		_, intErr := strconv.ParseInt(repr, 10, 0)
		n := numeric{
			pos:   tokenPos,
			Repr:  repr,
			Value: utils.Fl(value),
			IsInt: intErr == nil,
		}
		switch {
		case pos < length && isIdentStart(css, pos):
			var unit string
			unit, pos = consumeIdent(css, pos)
			tz.emit(Dimension{numeric: n, Unit: unit})
		case pos < length && css[pos] == '%':
			pos++
			tz.emit(Percentage{numeric: n})
		default:
			tz.emit(Number{numeric: n})
		}
		tz.pos = pos
		return
	}

	switch c {
	case '@':
		pos++
		if pos < length && isIdentStart(css, pos) {
			var ident string
			ident, pos = consumeIdent(css, pos)
			tz.emit(AtKeyword{pos: tokenPos, Value: ident})
		} else {
			tz.emit(Literal{pos: tokenPos, Value: "@"})
		}
		tz.pos = pos
	case '#':
		pos++
		if pos < length {
			r, _ := utf8.DecodeRune(css[pos:])
			if ('0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '-' || r == '_') ||
				r > 0x7F || // Non-ASCII
				(r == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))) { // Valid escape
				isIdentifier := isIdentStart(css, pos)
				var ident string
				ident, pos = consumeIdent(css, pos)
				tz.emit(Hash{pos: tokenPos, Value: ident, isIdent: isIdentifier})
				tz.pos = pos
				return
			}
		}
		tz.emit(Literal{pos: tokenPos, Value: "#"})
		tz.pos = pos
	case '{':
		tz.openBlock('}', "", tokenPos)
		tz.pos = pos + 1
	case '[':
		tz.openBlock(']', "", tokenPos)
		tz.pos = pos + 1
	case '(':
		tz.openBlock(')', "", tokenPos)
		tz.pos = pos + 1
	case '}', ']', ')':
		if f := tz.stack[len(tz.stack)-1]; f.end == c {
			tz.closeBlock()
		} else {
			tz.emit(ParseError{pos: tokenPos, kind: ErrorKind(rune(c)), Message: "Unmatched " + string(rune(c))})
		}
		tz.pos = pos + 1
	case '\'', '"':
		quotedString, newPos, addValue, kind := consumeQuotedString(css, pos)
		if addValue {
			tz.emit(String{pos: tokenPos, Value: quotedString, isError: kind != ""})
		}
		if kind != "" {
			tz.emit(ParseError{pos: tokenPos, kind: kind, Message: "bad string token"})
		}
		tz.pos = newPos
	default:
		switch {
		case bytes.HasPrefix(css[pos:], []byte("/*")): // Comment
			index := bytes.Index(css[pos+2:], []byte("*/"))
			if index == -1 {
				if !tz.skipComments {
					tz.emit(Comment{pos: tokenPos, Value: string(css[pos+2:])})
				}
				tz.pos = length
				return
			}
			if !tz.skipComments {
				tz.emit(Comment{pos: tokenPos, Value: string(css[pos+2 : pos+2+index])})
			}
			tz.pos = pos + 2 + index + 2
		case bytes.HasPrefix(css[pos:], []byte("<!--")):
			tz.emit(Literal{pos: tokenPos, Value: "<!--"})
			tz.pos = pos + 4
		case bytes.HasPrefix(css[pos:], []byte("||")):
			tz.emit(Literal{pos: tokenPos, Value: "||"})
			tz.pos = pos + 2
		case c == '~' || c == '|' || c == '^' || c == '$' || c == '*':
			if pos+1 < length && css[pos+1] == '=' {
				tz.emit(Literal{pos: tokenPos, Value: string(rune(c)) + "="})
				tz.pos = pos + 2
			} else {
				tz.emit(Literal{pos: tokenPos, Value: string(rune(c))})
				tz.pos = pos + 1
			}
		default:
			r, w := utf8.DecodeRune(css[pos:])
			tz.emit(Literal{pos: tokenPos, Value: string(r)})
			tz.pos = pos + w
		}
	}
}

// urlToken consumes an unquoted url, emitting an URL token
// and/or a ParseError, and returns the new position.
func (tz *tokenizer) urlToken(tokenPos Pos, pos int) int {
	value, newPos, addValue, kind := consumeUrl(tz.src, pos)
	if addValue {
		var flag uint8
		switch kind {
		case errEofInString:
			flag = isErrorInString
		case errEofInURL:
			flag = isErrorInURL
		}
		tz.emit(URL{pos: tokenPos, Value: value, flag: flag})
	}
	if kind != "" {
		tz.emit(ParseError{pos: tokenPos, kind: kind, Message: string(kind)})
	}
	return newPos
}

// http://dev.w3.org/csswg/css-syntax/#non-printable-character
const nonPrintable = "\"'(\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f\x7f"

// Return true if the given character is a name-start code point.
func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// Return true if the given position is the start of a CSS identifier.
func isIdentStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos += 1
		// Name-start code point
		nameStart := pos < len(css) && (isNameStart(css, pos) || css[pos] == '-')
		// Valid escape
		validEscape := pos < len(css) && css[pos] == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))
		return nameStart || validEscape
	} else if css[pos] == '\\' {
		return !bytes.HasPrefix(css[pos:], []byte("\\\n"))
	}
	return false
}

func consumeIdent(value []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-a-name
	var chunks strings.Builder
	L := len(value)
	startPos := pos
	for pos < L {
		c, w := utf8.DecodeRune(value[pos:])
		if strings.ContainsRune("abcdefghijklmnopqrstuvwxyz-_0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", c) || c > 0x7F {
			pos += w
		} else if c == '\\' && !bytes.HasPrefix(value[pos:], []byte("\\\n")) {
			// Valid escape
			chunks.Write(value[startPos:pos])
			var car string
			car, pos = consumeEscape(value, pos+w)
			chunks.WriteString(car)
			startPos = pos
		} else {
			break
		}
	}
	chunks.Write(value[startPos:pos])
	return chunks.String(), pos
}

// http://dev.w3.org/csswg/css-syntax/#consume-a-url-token
func consumeUrl(css []byte, pos int) (value string, newPos int, addValue bool, kind ErrorKind) {
	length := len(css)
	// Skip whitespace
	for pos < length && strings.ContainsRune(" \n\t", rune(css[pos])) {
		pos += 1
	}
	if pos >= length { // EOF
		return "", pos, true, errEofInURL
	}
	c := rune(css[pos])
	if c == '"' || c == '\'' {
		value, pos, addValue, kind = consumeQuotedString(css, pos)
	} else if c == ')' {
		return "", pos + 1, true, ""
	} else {
		var chunks strings.Builder
		startPos := pos
	mainLoop:
		for {
			if pos >= length { // EOF
				chunks.Write(css[startPos:pos])
				return chunks.String(), pos, true, errEofInURL
			}
			c, w := utf8.DecodeRune(css[pos:])
			switch {
			case c == ')':
				chunks.Write(css[startPos:pos])
				pos += w
				return chunks.String(), pos, true, ""
			case c == ' ' || c == '\n' || c == '\t':
				chunks.Write(css[startPos:pos])
				value = chunks.String()
				pos += w
				break mainLoop
			case c == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n")):
				// Valid escape
				chunks.Write(css[startPos:pos])
				var cs string
				cs, pos = consumeEscape(css, pos+w)
				chunks.WriteString(cs)
				startPos = pos
			default:
				pos += w
				// http://dev.w3.org/csswg/css-syntax/#non-printable-character
				if strings.ContainsRune(nonPrintable, c) {
					kind = errBadURL
					break mainLoop
				}
			}
		}
	}

	if kind == "" {
		for pos < length {
			r, w := utf8.DecodeRune(css[pos:])
			if strings.ContainsRune(" \n\t", r) {
				pos += w
			} else {
				break
			}
		}
		if pos < length {
			if css[pos] == ')' {
				return value, pos + 1, true, kind
			}
		} else {
			return value, pos, true, errEofInURL
		}
	}

	// http://dev.w3.org/csswg/css-syntax/#consume-the-remnants-of-a-bad-url0
	for pos < length {
		if bytes.HasPrefix(css[pos:], []byte("\\)")) {
			pos += 2
		} else if css[pos] == ')' {
			pos += 1
			break
		} else {
			_, w := utf8.DecodeRune(css[pos:])
			pos += w
		}
	}
	return "", pos, false, errBadURL
}

// Returns unescapedValue
// http://dev.w3.org/csswg/css-syntax/#consume-a-string-token
// css[pos] is assumed to be a quote
func consumeQuotedString(css []byte, pos int) (string, int, bool, ErrorKind) {
	quote := rune(css[pos])
	pos += 1
	var chunks strings.Builder
	length := len(css)
	startPos := pos
	hasBroken := false
mainLoop:
	for pos < length {
		c, w := utf8.DecodeRune(css[pos:])
		switch c {
		case quote:
			chunks.Write(css[startPos:pos])
			pos += w
			hasBroken = true
			break mainLoop
		case '\\':
			chunks.Write(css[startPos:pos])
			pos += w
			if pos < length {
				if css[pos] == '\n' { // Ignore escaped newlines
					pos += 1
				} else {
					var cs string
					cs, pos = consumeEscape(css, pos)
					chunks.WriteString(cs)
				}
			} // else: Escaped EOF, do nothing
			startPos = pos
		case '\n': // Unescaped newline
			return "", pos, false, errBadString
		default:
			pos += w
		}
	}
	var kind ErrorKind
	if !hasBroken {
		chunks.Write(css[startPos:pos])
		kind = errEofInString
	}
	return chunks.String(), pos, true, kind
}

// Return (unescapedChar, newPos).
// Assumes a valid escape: pos is just after '\' and not followed by '\n'.
func consumeEscape(css []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-an-escaped-character
	hexMatch := hexEscapeRe.FindSubmatch(css[pos:])
	if len(hexMatch) >= 2 {
		codepoint, _ := strconv.ParseInt(string(hexMatch[1]), 16, 0)
		char := "\uFFFD"
		if 0 < codepoint && codepoint <= unicode.MaxRune {
			char = string(rune(codepoint))
		}
		return char, pos + len(hexMatch[0])
	} else if pos < len(css) {
		r, w := utf8.DecodeRune(css[pos:])
		return string(r), pos + w
	} else {
		return "\uFFFD", pos
	}
}

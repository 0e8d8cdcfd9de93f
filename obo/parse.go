package obo

import (
	"errors"
	"fmt"
	"strings"
)

// ParseIdent parses a raw identifier token into the matching variant.
//
// Classification follows the OBO grammar priority: URL identifiers are
// detected first (a `scheme://...` token would otherwise split as
// prefixed), then a token with exactly one unescaped ':' becomes a
// prefixed identifier, and every other token is unprefixed. Surrounding
// spaces and tabs are skipped; anything else around the token is a
// *SyntaxError.
func ParseIdent(text string) (Ident, error) {
	c := &cursor{input: text}
	c.skipWS()
	start := c.pos
	raw, err := c.scanIdentToken("")
	if err != nil {
		return nil, err
	}
	id, err := classifyIdent(text, start, raw)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !c.eof() {
		return nil, c.syntaxErrorf("unexpected trailing characters")
	}
	return id, nil
}

// classifyIdent turns a scanned raw token (escape sequences intact)
// into an identifier variant. offset is the token position in input,
// used for error reporting.
func classifyIdent(input string, offset int, raw string) (Ident, error) {
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch == '\\' {
			i++
			continue
		}
		if ch == '\n' || ch == '\r' {
			return nil, syntaxErrorAt(input, offset+i, errors.New("raw newline in identifier"))
		}
		if ch < 0x20 || ch == 0x7f {
			return nil, syntaxErrorAt(input, offset+i, errors.New("raw control character in identifier"))
		}
		if ch == '"' {
			return nil, syntaxErrorAt(input, offset+i, errors.New(`unescaped '"' in identifier`))
		}
	}

	if urlLike(raw) {
		value := unescapeToken(raw)
		if err := validateAbsoluteURL(value); err != nil {
			return nil, syntaxErrorAt(input, offset, err)
		}
		return URLIdent{value: value}, nil
	}

	colon := -1
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch == '\\' {
			i++
			continue
		}
		if ch != ':' {
			continue
		}
		if colon >= 0 {
			return nil, syntaxErrorAt(input, offset+i, errors.New("more than one unescaped ':' in identifier"))
		}
		colon = i
	}
	if colon >= 0 {
		if colon == 0 {
			return nil, syntaxErrorAt(input, offset, errors.New("empty identifier prefix"))
		}
		if colon == len(raw)-1 {
			return nil, syntaxErrorAt(input, offset+colon, errors.New("empty local identifier"))
		}
		return PrefixedIdent{prefix: unescapeToken(raw[:colon]), local: unescapeToken(raw[colon+1:])}, nil
	}
	return UnprefixedIdent{value: unescapeToken(raw)}, nil
}

// urlLike reports whether a raw token should classify as a URL: a
// valid scheme followed by the hierarchical `://` marker. Opaque
// absolute URIs (`urn:`, `mailto:`) are left to the prefixed branch so
// that prefix:local identifiers are not swallowed by the URL rule.
func urlLike(raw string) bool {
	i := strings.Index(raw, "://")
	if i <= 0 || !isAlpha(raw[0]) {
		return false
	}
	for j := 1; j < i; j++ {
		ch := raw[j]
		if !isAlnum(ch) && ch != '+' && ch != '-' && ch != '.' {
			return false
		}
	}
	return true
}

// cursor is a byte-position scanner over a single clause line.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) eof() bool { return c.pos >= len(c.input) }

// peek returns the byte at the current position. Callers check eof
// first.
func (c *cursor) peek() byte { return c.input[c.pos] }

func (c *cursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t':
			c.pos++
		default:
			return
		}
	}
}

func (c *cursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

// scanIdentToken scans a bare identifier token, keeping escape
// sequences intact. The token ends at unescaped whitespace or at any
// unescaped byte in stop.
func (c *cursor) scanIdentToken(stop string) (string, error) {
	start := c.pos
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '\\' {
			if c.pos+1 >= len(c.input) {
				return "", c.syntaxErrorf("truncated escape sequence")
			}
			c.pos += 2
			continue
		}
		if ch == ' ' || ch == '\t' || strings.IndexByte(stop, ch) >= 0 {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return "", c.syntaxErrorf("expected identifier")
	}
	return c.input[start:c.pos], nil
}

// scanQuotedString scans a double-quoted string, resolving backslash
// escapes, and returns the unescaped content.
func (c *cursor) scanQuotedString() (string, error) {
	if !c.consume('"') {
		return "", c.syntaxErrorf("expected quoted string")
	}
	var b strings.Builder
	for c.pos < len(c.input) {
		switch ch := c.input[c.pos]; ch {
		case '"':
			c.pos++
			return b.String(), nil
		case '\\':
			if c.pos+1 >= len(c.input) {
				return "", c.syntaxErrorf("truncated escape in quoted string")
			}
			switch next := c.input[c.pos+1]; next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'f':
				b.WriteByte('\f')
			default:
				b.WriteByte(next)
			}
			c.pos += 2
		case '\n', '\r':
			return "", c.syntaxErrorf("raw newline in quoted string")
		default:
			b.WriteByte(ch)
			c.pos++
		}
	}
	return "", c.syntaxErrorf("unterminated quoted string")
}

func (c *cursor) syntaxErrorf(format string, args ...interface{}) error {
	return syntaxErrorAt(c.input, c.pos, fmt.Errorf(format, args...))
}

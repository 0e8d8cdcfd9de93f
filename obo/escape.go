package obo

import "strings"

// OBO tokens use backslash escapes. Bare identifier tokens escape
// whitespace and clause delimiters; quoted strings only escape what
// cannot appear raw between double quotes.

// escapeIdentToken renders the unescaped content of a bare identifier
// token.
func escapeIdentToken(s string) string {
	if !strings.ContainsAny(s, "\n\r\f\t :\"\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\t':
			b.WriteString(`\t`)
		case ' ':
			b.WriteString(`\ `)
		case ':':
			b.WriteString(`\:`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// escapeListDelims escapes the cross-reference list delimiters in an
// already rendered identifier token, so the token stays a single
// element inside a bracketed list.
func escapeListDelims(rendered string) string {
	if !strings.ContainsAny(rendered, ",[]") {
		return rendered
	}
	var b strings.Builder
	b.Grow(len(rendered) + 1)
	for i := 0; i < len(rendered); i++ {
		ch := rendered[i]
		if ch == '\\' && i+1 < len(rendered) {
			b.WriteByte(ch)
			b.WriteByte(rendered[i+1])
			i++
			continue
		}
		if ch == ',' || ch == '[' || ch == ']' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// unescapeToken resolves backslash escapes in a scanned token. The
// scanner rejects tokens ending in a lone backslash before this runs.
func unescapeToken(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch next := s[i]; next {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(next)
		}
	}
	return b.String()
}

// escapeQuoted renders literal content for a double-quoted string.
func escapeQuoted(s string) string {
	if !strings.ContainsAny(s, "\n\r\f\"\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Canonical identifier character classes: a canonical prefix is
// alphabetic followed by alphanumerics, a canonical local part is all
// digits. Canonical identifiers never need escaping and resolve under
// the OBO Foundry PURL scheme.

func isCanonicalPrefix(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

func isCanonicalLocal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAlpha(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlnum(ch byte) bool { return isAlpha(ch) || isDigit(ch) }

// hasForbiddenControl reports whether s contains a control character
// with no escape sequence, which therefore could not round-trip.
func hasForbiddenControl(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 0x20 && ch != '\n' && ch != '\r' && ch != '\t' && ch != '\f' {
			return true
		}
		if ch == 0x7f {
			return true
		}
	}
	return false
}

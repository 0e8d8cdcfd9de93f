package obo

import (
	"errors"
	"fmt"
	"net/url"
)

// IdentKind identifies OBO identifier variants.
type IdentKind uint8

const (
	// IdentUnprefixed represents a bare identifier without an idspace
	// prefix.
	IdentUnprefixed IdentKind = iota
	// IdentPrefixed represents a prefix:local identifier.
	IdentPrefixed
	// IdentURL represents an identifier that is an absolute URL.
	IdentURL
)

// String returns the variant name.
func (k IdentKind) String() string {
	switch k {
	case IdentUnprefixed:
		return "UnprefixedIdent"
	case IdentPrefixed:
		return "PrefixedIdent"
	case IdentURL:
		return "URLIdent"
	default:
		return fmt.Sprintf("IdentKind(%d)", uint8(k))
	}
}

// Ident is an OBO identifier, either unprefixed, prefixed, or a URL.
//
// The variant set is closed: the three identifier types in this package
// are the only implementations. Identifiers are immutable values.
// Equality on Ident values is structural, and identifiers of different
// variants are never equal even when their textual forms coincide.
type Ident interface {
	// Kind returns the variant tag.
	Kind() IdentKind
	// String returns the canonical rendering. The rendering re-parses
	// to an equal identifier.
	String() string

	sealedIdent()
}

// UnprefixedIdent is a bare identifier token without an idspace prefix,
// such as `created_by`. The content is stored unescaped.
type UnprefixedIdent struct {
	value string
}

// NewUnprefixedIdent creates an unprefixed identifier from its
// unescaped content.
func NewUnprefixedIdent(value string) (UnprefixedIdent, error) {
	if value == "" {
		return UnprefixedIdent{}, &ValueError{Kind: "unprefixed identifier", Value: value, Err: errEmptyValue}
	}
	if hasForbiddenControl(value) {
		return UnprefixedIdent{}, &ValueError{Kind: "unprefixed identifier", Value: value, Err: errControlChar}
	}
	return UnprefixedIdent{value: value}, nil
}

// Value returns the unescaped content.
func (id UnprefixedIdent) Value() string { return id.value }

// Kind returns IdentUnprefixed.
func (id UnprefixedIdent) Kind() IdentKind { return IdentUnprefixed }

// String returns the escaped token form.
func (id UnprefixedIdent) String() string { return escapeIdentToken(id.value) }

func (UnprefixedIdent) sealedIdent() {}

// PrefixedIdent is an identifier with an idspace prefix and a local
// part, such as `GO:0070412`. Both parts are stored unescaped.
type PrefixedIdent struct {
	prefix string
	local  string
}

// NewPrefixedIdent creates a prefixed identifier from its unescaped
// prefix and local parts.
func NewPrefixedIdent(prefix, local string) (PrefixedIdent, error) {
	if prefix == "" {
		return PrefixedIdent{}, &ValueError{Kind: "identifier prefix", Value: prefix, Err: errEmptyValue}
	}
	if hasForbiddenControl(prefix) {
		return PrefixedIdent{}, &ValueError{Kind: "identifier prefix", Value: prefix, Err: errControlChar}
	}
	if local == "" {
		return PrefixedIdent{}, &ValueError{Kind: "local identifier", Value: local, Err: errEmptyValue}
	}
	if hasForbiddenControl(local) {
		return PrefixedIdent{}, &ValueError{Kind: "local identifier", Value: local, Err: errControlChar}
	}
	return PrefixedIdent{prefix: prefix, local: local}, nil
}

// Prefix returns the unescaped idspace prefix.
func (id PrefixedIdent) Prefix() string { return id.prefix }

// Local returns the unescaped local part.
func (id PrefixedIdent) Local() string { return id.local }

// IsCanonical reports whether the identifier has the canonical OBO
// shape: an alphabetic prefix followed by alphanumerics and an
// all-digit local part, as in `GO:0070412`.
func (id PrefixedIdent) IsCanonical() bool {
	return isCanonicalPrefix(id.prefix) && isCanonicalLocal(id.local)
}

// Kind returns IdentPrefixed.
func (id PrefixedIdent) Kind() IdentKind { return IdentPrefixed }

// String returns the escaped `prefix:local` form.
func (id PrefixedIdent) String() string {
	return escapeIdentToken(id.prefix) + ":" + escapeIdentToken(id.local)
}

func (PrefixedIdent) sealedIdent() {}

// URLIdent is an identifier that is an absolute URL, such as
// `http://purl.obolibrary.org/obo/GO_0070412`.
type URLIdent struct {
	value string
}

// NewURLIdent creates a URL identifier from an absolute URL string.
// The value must use the hierarchical `scheme://` form, the same set of
// tokens ParseIdent classifies as URLs, so every constructed identifier
// renders to a string that re-parses to an equal value. Opaque URIs
// (`urn:...`, `mailto:...`) are rejected; they parse as prefixed
// identifiers.
func NewURLIdent(value string) (URLIdent, error) {
	if err := validateURLIdent(value); err != nil {
		return URLIdent{}, &ValueError{Kind: "URL identifier", Value: value, Err: err}
	}
	return URLIdent{value: value}, nil
}

// Value returns the URL string.
func (id URLIdent) Value() string { return id.value }

// URL returns the parsed URL value.
func (id URLIdent) URL() *url.URL {
	u, _ := url.Parse(id.value) // validated at construction
	return u
}

// Kind returns IdentURL.
func (id URLIdent) Kind() IdentKind { return IdentURL }

// String returns the URL string. URLs carry no OBO escaping.
func (id URLIdent) String() string { return id.value }

func (URLIdent) sealedIdent() {}

// validateAbsoluteURL checks that value is a syntactically valid
// absolute URL: a scheme followed by a non-empty remainder, with no
// characters that would need percent-encoding.
func validateAbsoluteURL(value string) error {
	if value == "" {
		return errEmptyValue
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch < 0x20 || ch == 0x7f {
			return fmt.Errorf("control character at position %d", i)
		}
		switch ch {
		case ' ', '<', '>', '"', '\\':
			return fmt.Errorf("character %q at position %d must be percent-encoded", ch, i)
		}
	}
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL syntax: %w", err)
	}
	if !u.IsAbs() {
		return errors.New("missing URL scheme")
	}
	if u.Opaque == "" && u.Host == "" && u.Path == "" {
		return errors.New("URL has a scheme but no body")
	}
	return nil
}

// validateURLIdent checks that value is acceptable content for a
// URLIdent: a valid absolute URL in the hierarchical `scheme://` form.
// Constructor and parser accept the same set, which keeps the
// render/re-parse round trip exact.
func validateURLIdent(value string) error {
	if err := validateAbsoluteURL(value); err != nil {
		return err
	}
	if !urlLike(value) {
		return errors.New("URL must use the hierarchical scheme:// form")
	}
	return nil
}

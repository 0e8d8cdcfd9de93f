package obo

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FoundryBase is the OBO Foundry PURL base under which canonical
// prefixed identifiers resolve.
const FoundryBase = "http://purl.obolibrary.org/obo/"

// IDSpaceRegistry maps idspace prefixes to URL bases, supporting
// expansion of prefixed identifiers into URL identifiers and the
// reverse compaction. Canonical identifiers whose prefix is not
// registered fall back to the OBO Foundry PURL scheme
// `<FoundryBase><PREFIX>_<local>`.
type IDSpaceRegistry struct {
	bases map[string]string
}

// NewIDSpaceRegistry creates an empty registry.
func NewIDSpaceRegistry() *IDSpaceRegistry {
	return &IDSpaceRegistry{bases: make(map[string]string)}
}

// Add registers a URL base for an idspace prefix, replacing any
// previous mapping for that prefix.
func (r *IDSpaceRegistry) Add(prefix, base string) error {
	if prefix == "" {
		return &ValueError{Kind: "idspace prefix", Value: prefix, Err: errEmptyValue}
	}
	if err := validateURLIdent(base); err != nil {
		return &ValueError{Kind: "idspace base", Value: base, Err: err}
	}
	r.bases[prefix] = base
	return nil
}

// Base returns the registered URL base for a prefix.
func (r *IDSpaceRegistry) Base(prefix string) (string, bool) {
	base, ok := r.bases[prefix]
	return base, ok
}

// Expand converts a prefixed identifier to its URL form. Unregistered
// prefixes expand through the Foundry PURL scheme when the identifier
// is canonical. Expansion fails when no base applies or when the local
// part would not form a valid URL identifier.
func (r *IDSpaceRegistry) Expand(id PrefixedIdent) (URLIdent, bool) {
	if base, ok := r.bases[id.Prefix()]; ok {
		value := base + id.Local()
		if validateURLIdent(value) != nil {
			return URLIdent{}, false
		}
		return URLIdent{value: value}, true
	}
	if id.IsCanonical() {
		return URLIdent{value: FoundryBase + id.Prefix() + "_" + id.Local()}, true
	}
	return URLIdent{}, false
}

// Compact converts a URL identifier back to prefixed form: first
// against the registered bases (the longest matching base wins), then
// against the Foundry PURL scheme.
func (r *IDSpaceRegistry) Compact(id URLIdent) (PrefixedIdent, bool) {
	value := id.Value()

	bestPrefix, bestBase := "", ""
	for prefix, base := range r.bases {
		if !strings.HasPrefix(value, base) {
			continue
		}
		if len(base) > len(bestBase) || (len(base) == len(bestBase) && prefix < bestPrefix) {
			bestPrefix, bestBase = prefix, base
		}
	}
	if bestBase != "" {
		if local := value[len(bestBase):]; local != "" {
			return PrefixedIdent{prefix: bestPrefix, local: local}, true
		}
	}

	if rest, ok := strings.CutPrefix(value, FoundryBase); ok {
		if sep := strings.LastIndexByte(rest, '_'); sep > 0 && sep < len(rest)-1 {
			prefix, local := rest[:sep], rest[sep+1:]
			if isCanonicalPrefix(prefix) && isCanonicalLocal(local) {
				return PrefixedIdent{prefix: prefix, local: local}, true
			}
		}
	}
	return PrefixedIdent{}, false
}

// ParseIDSpacesYAML loads a registry from a YAML mapping of idspace
// prefixes to URL bases, the shape used by OBO Foundry registry
// exports:
//
//	GO: http://purl.obolibrary.org/obo/GO_
//	Wikipedia: http://en.wikipedia.org/wiki/
//
// Callers hand in bytes; this package performs no file I/O.
func ParseIDSpacesYAML(data []byte) (*IDSpaceRegistry, error) {
	var bases map[string]string
	if err := yaml.Unmarshal(data, &bases); err != nil {
		return nil, &ValueError{Kind: "idspace registry", Err: err}
	}
	r := NewIDSpaceRegistry()
	for prefix, base := range bases {
		if err := r.Add(prefix, base); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Package obo provides the structural atoms of the OBO flat-file
// format: identifiers and property-value annotations.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The package models the two value families every OBO construct is
// built from, with parsing, canonical rendering, ordering, and guarded
// mutation:
//   - Identifiers: ParseIdent() classifies a raw token into one of the
//     three closed variants UnprefixedIdent, PrefixedIdent, and
//     URLIdent, tagged by IdentKind.
//   - Property values: ParsePropertyValue() parses a clause into a
//     TypedPropertyValue (relation + quoted literal + datatype) or an
//     IdentifiedPropertyValue (relation + target identifier), tagged by
//     PropertyValueKind.
//
// Every value renders back to a canonical string that re-parses to an
// equal value. Identifiers are immutable; property values are mutable
// through setters that validate their operand before committing, so a
// constructed value keeps its invariants for its whole lifetime.
//
// Example (classifying identifiers):
//
//	id, err := obo.ParseIdent("GO:0070412")
//	if err != nil {
//	    // handle error
//	}
//	// id.(obo.PrefixedIdent).Prefix() == "GO"
//
// Example (parsing a property-value clause):
//
//	pv, err := obo.ParsePropertyValue(`creation_date "2019-04-08T23:21:05Z" xsd:date`)
//	if err != nil {
//	    // handle error
//	}
//	// pv.Kind() == obo.PropertyValueTyped
//
// Failures are reported as three distinct error kinds, catchable with
// errors.As and mappable to a programmatic code with Code():
//   - *TypeError: a value of the wrong kind reached a constructor,
//     setter, or comparison; existing state is never modified.
//   - *ValueError: a value of the right kind with invalid content,
//     such as a relative URL.
//   - *SyntaxError: malformed raw text during parsing; parsing is
//     all-or-nothing and never returns a partial value.
//
// Cross-references (Xref, XrefList) and the IDSpaceRegistry for
// translating between prefixed and URL identifiers round out the
// surface. The package performs no I/O and holds no global state;
// distinct values may be used freely from concurrent goroutines, while
// concurrent mutation of a single property value must be serialized by
// the caller.
package obo

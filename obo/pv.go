package obo

import "fmt"

// PropertyValueKind identifies property-value variants.
type PropertyValueKind uint8

const (
	// PropertyValueTyped represents a relation bound to a typed
	// literal.
	PropertyValueTyped PropertyValueKind = iota
	// PropertyValueIdentified represents a relation bound to another
	// identifier.
	PropertyValueIdentified
)

// String returns the variant name.
func (k PropertyValueKind) String() string {
	switch k {
	case PropertyValueTyped:
		return "TypedPropertyValue"
	case PropertyValueIdentified:
		return "IdentifiedPropertyValue"
	default:
		return fmt.Sprintf("PropertyValueKind(%d)", uint8(k))
	}
}

// PropertyValue is an OBO property-value clause: a relation bound
// either to a typed literal or to a target identifier.
//
// The variant set is closed. Unlike identifiers, property values are
// mutable; every setter validates its operand and leaves the field
// unchanged on failure, so a constructed value keeps its invariants
// for its whole lifetime.
type PropertyValue interface {
	// Kind returns the variant tag.
	Kind() PropertyValueKind
	// Relation returns the relation identifier.
	Relation() Ident
	// String returns the canonical clause rendering.
	String() string
	// Equal reports structural equality. Property values of different
	// variants are never equal.
	Equal(other PropertyValue) bool

	sealedPropertyValue()
}

// checkIdent guards a typed field against a missing identifier
// operand.
func checkIdent(field string, id Ident) error {
	if id == nil {
		return &TypeError{Field: field, Expected: "Ident", Actual: "nil"}
	}
	return nil
}

// TypedPropertyValue binds a relation to a literal value with an
// explicit datatype, as in `creation_date "2019-04-08T23:21:05Z"
// xsd:date`. The literal is stored unescaped.
type TypedPropertyValue struct {
	relation Ident
	value    string
	datatype Ident
}

// NewTypedPropertyValue creates a typed property value. Constraints
// are checked left to right: relation, value, datatype; the first
// violation is reported.
func NewTypedPropertyValue(relation Ident, value string, datatype Ident) (*TypedPropertyValue, error) {
	if err := checkIdent("relation", relation); err != nil {
		return nil, err
	}
	// value is a string by signature; nothing to validate at runtime.
	if err := checkIdent("datatype", datatype); err != nil {
		return nil, err
	}
	return &TypedPropertyValue{relation: relation, value: value, datatype: datatype}, nil
}

// Kind returns PropertyValueTyped.
func (pv *TypedPropertyValue) Kind() PropertyValueKind { return PropertyValueTyped }

// Relation returns the relation identifier.
func (pv *TypedPropertyValue) Relation() Ident { return pv.relation }

// SetRelation replaces the relation identifier.
func (pv *TypedPropertyValue) SetRelation(relation Ident) error {
	if err := checkIdent("relation", relation); err != nil {
		return err
	}
	pv.relation = relation
	return nil
}

// Value returns the unescaped literal value.
func (pv *TypedPropertyValue) Value() string { return pv.value }

// SetValue replaces the literal value.
func (pv *TypedPropertyValue) SetValue(value string) { pv.value = value }

// Datatype returns the datatype identifier.
func (pv *TypedPropertyValue) Datatype() Ident { return pv.datatype }

// SetDatatype replaces the datatype identifier.
func (pv *TypedPropertyValue) SetDatatype(datatype Ident) error {
	if err := checkIdent("datatype", datatype); err != nil {
		return err
	}
	pv.datatype = datatype
	return nil
}

// String renders `relation "value" datatype`.
func (pv *TypedPropertyValue) String() string {
	return pv.relation.String() + ` "` + escapeQuoted(pv.value) + `" ` + pv.datatype.String()
}

// Equal reports structural equality with another property value.
func (pv *TypedPropertyValue) Equal(other PropertyValue) bool {
	o, ok := other.(*TypedPropertyValue)
	if !ok || o == nil {
		return false
	}
	return pv.relation == o.relation && pv.value == o.value && pv.datatype == o.datatype
}

func (*TypedPropertyValue) sealedPropertyValue() {}

// IdentifiedPropertyValue binds a relation to another identifier, as
// in `derived_from MS:1000031`.
type IdentifiedPropertyValue struct {
	relation Ident
	value    Ident
}

// NewIdentifiedPropertyValue creates an identified property value.
// Constraints are checked left to right: relation, then value.
func NewIdentifiedPropertyValue(relation, value Ident) (*IdentifiedPropertyValue, error) {
	if err := checkIdent("relation", relation); err != nil {
		return nil, err
	}
	if err := checkIdent("value", value); err != nil {
		return nil, err
	}
	return &IdentifiedPropertyValue{relation: relation, value: value}, nil
}

// Kind returns PropertyValueIdentified.
func (pv *IdentifiedPropertyValue) Kind() PropertyValueKind { return PropertyValueIdentified }

// Relation returns the relation identifier.
func (pv *IdentifiedPropertyValue) Relation() Ident { return pv.relation }

// SetRelation replaces the relation identifier.
func (pv *IdentifiedPropertyValue) SetRelation(relation Ident) error {
	if err := checkIdent("relation", relation); err != nil {
		return err
	}
	pv.relation = relation
	return nil
}

// Value returns the target identifier.
func (pv *IdentifiedPropertyValue) Value() Ident { return pv.value }

// SetValue replaces the target identifier.
func (pv *IdentifiedPropertyValue) SetValue(value Ident) error {
	if err := checkIdent("value", value); err != nil {
		return err
	}
	pv.value = value
	return nil
}

// String renders `relation value`.
func (pv *IdentifiedPropertyValue) String() string {
	return pv.relation.String() + " " + pv.value.String()
}

// Equal reports structural equality with another property value.
func (pv *IdentifiedPropertyValue) Equal(other PropertyValue) bool {
	o, ok := other.(*IdentifiedPropertyValue)
	if !ok || o == nil {
		return false
	}
	return pv.relation == o.relation && pv.value == o.value
}

func (*IdentifiedPropertyValue) sealedPropertyValue() {}

// ParsePropertyValue parses a property-value clause. The relation
// identifier comes first; a double quote then opens a typed literal
// that must be followed by a datatype identifier, while anything else
// is parsed as a target identifier. Trailing content after the
// expected tokens is a *SyntaxError.
func ParsePropertyValue(text string) (PropertyValue, error) {
	c := &cursor{input: text}
	c.skipWS()
	start := c.pos
	raw, err := c.scanIdentToken("")
	if err != nil {
		return nil, err
	}
	relation, err := classifyIdent(text, start, raw)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if c.eof() {
		return nil, c.syntaxErrorf("expected property value after relation")
	}

	if c.peek() == '"' {
		value, err := c.scanQuotedString()
		if err != nil {
			return nil, err
		}
		c.skipWS()
		if c.eof() {
			return nil, c.syntaxErrorf("expected datatype after quoted value")
		}
		start = c.pos
		raw, err = c.scanIdentToken("")
		if err != nil {
			return nil, err
		}
		datatype, err := classifyIdent(text, start, raw)
		if err != nil {
			return nil, err
		}
		c.skipWS()
		if !c.eof() {
			return nil, c.syntaxErrorf("unexpected trailing characters")
		}
		return &TypedPropertyValue{relation: relation, value: value, datatype: datatype}, nil
	}

	start = c.pos
	raw, err = c.scanIdentToken("")
	if err != nil {
		return nil, err
	}
	value, err := classifyIdent(text, start, raw)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !c.eof() {
		return nil, c.syntaxErrorf("unexpected trailing characters")
	}
	return &IdentifiedPropertyValue{relation: relation, value: value}, nil
}

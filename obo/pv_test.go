package obo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUnprefixed(t *testing.T, value string) UnprefixedIdent {
	t.Helper()
	id, err := NewUnprefixedIdent(value)
	require.NoError(t, err)
	return id
}

func mustPrefixed(t *testing.T, prefix, local string) PrefixedIdent {
	t.Helper()
	id, err := NewPrefixedIdent(prefix, local)
	require.NoError(t, err)
	return id
}

func TestTypedPropertyValueRendering(t *testing.T) {
	pv, err := NewTypedPropertyValue(
		mustUnprefixed(t, "creation_date"),
		"2019-04-08T23:21:05Z",
		mustPrefixed(t, "xsd", "date"),
	)
	require.NoError(t, err)
	assert.Equal(t, PropertyValueTyped, pv.Kind())
	assert.Equal(t, `creation_date "2019-04-08T23:21:05Z" xsd:date`, pv.String())
}

func TestIdentifiedPropertyValueRendering(t *testing.T) {
	pv, err := NewIdentifiedPropertyValue(
		mustUnprefixed(t, "derived_from"),
		mustPrefixed(t, "MS", "1000031"),
	)
	require.NoError(t, err)
	assert.Equal(t, PropertyValueIdentified, pv.Kind())
	assert.Equal(t, "derived_from MS:1000031", pv.String())
}

func TestTypedPropertyValueEscapesLiteral(t *testing.T) {
	pv, err := NewTypedPropertyValue(
		mustUnprefixed(t, "note"),
		`a "quoted" word and a \`,
		mustPrefixed(t, "xsd", "string"),
	)
	require.NoError(t, err)
	assert.Equal(t, `note "a \"quoted\" word and a \\" xsd:string`, pv.String())
}

func TestPropertyValueConstructorGuards(t *testing.T) {
	relation := mustUnprefixed(t, "derived_from")
	datatype := mustPrefixed(t, "xsd", "date")

	var typeErr *TypeError

	_, err := NewTypedPropertyValue(nil, "v", datatype)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "relation", typeErr.Field)
	assert.Equal(t, ErrCodeType, Code(err))

	_, err = NewTypedPropertyValue(relation, "v", nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "datatype", typeErr.Field)

	// First violation wins: relation is reported before datatype.
	_, err = NewTypedPropertyValue(nil, "v", nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "relation", typeErr.Field)

	_, err = NewIdentifiedPropertyValue(nil, relation)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "relation", typeErr.Field)

	_, err = NewIdentifiedPropertyValue(relation, nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "value", typeErr.Field)
}

func TestParsePropertyValueIdentified(t *testing.T) {
	pv, err := ParsePropertyValue("married_to heather")
	require.NoError(t, err)
	ipv, ok := pv.(*IdentifiedPropertyValue)
	require.True(t, ok)
	assert.Equal(t, mustUnprefixed(t, "married_to"), ipv.Relation())
	assert.Equal(t, mustUnprefixed(t, "heather"), ipv.Value())
}

func TestParsePropertyValueTyped(t *testing.T) {
	pv, err := ParsePropertyValue(`shoe_size "8" xsd:positiveInteger`)
	require.NoError(t, err)
	tpv, ok := pv.(*TypedPropertyValue)
	require.True(t, ok)
	assert.Equal(t, mustUnprefixed(t, "shoe_size"), tpv.Relation())
	assert.Equal(t, "8", tpv.Value())
	assert.Equal(t, mustPrefixed(t, "xsd", "positiveInteger"), tpv.Datatype())
}

func TestParsePropertyValueQuotedEscapes(t *testing.T) {
	pv, err := ParsePropertyValue(`note "a \"quoted\" \\ word" xsd:string`)
	require.NoError(t, err)
	tpv, ok := pv.(*TypedPropertyValue)
	require.True(t, ok)
	assert.Equal(t, `a "quoted" \ word`, tpv.Value())
}

func TestParsePropertyValueURLTarget(t *testing.T) {
	pv, err := ParsePropertyValue("seeAlso http://purl.obolibrary.org/obo/go.owl")
	require.NoError(t, err)
	ipv, ok := pv.(*IdentifiedPropertyValue)
	require.True(t, ok)
	assert.Equal(t, IdentURL, ipv.Value().Kind())
}

func TestParsePropertyValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"relation only", "derived_from"},
		{"relation only with space", "derived_from   "},
		{"unterminated string", `note "oops`},
		{"missing datatype", `note "fine"`},
		{"trailing garbage identified", "derived_from MS:1000031 extra"},
		{"trailing garbage typed", `note "v" xsd:string extra`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv, err := ParsePropertyValue(tt.input)
			require.Error(t, err)
			assert.Nil(t, pv)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestPropertyValueEquality(t *testing.T) {
	relation := mustUnprefixed(t, "derived_from")
	target := mustPrefixed(t, "MS", "1000031")

	a, err := NewIdentifiedPropertyValue(relation, target)
	require.NoError(t, err)
	b, err := NewIdentifiedPropertyValue(relation, target)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c, err := NewIdentifiedPropertyValue(relation, mustPrefixed(t, "MS", "1000032"))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	// A typed value is never equal to an identified one, even with a
	// matching relation.
	typed, err := NewTypedPropertyValue(relation, "MS:1000031", mustPrefixed(t, "xsd", "string"))
	require.NoError(t, err)
	assert.False(t, typed.Equal(a))
	assert.False(t, a.Equal(typed))
}

func TestMutationGuard(t *testing.T) {
	relation := mustUnprefixed(t, "derived_from")
	target := mustPrefixed(t, "MS", "1000031")

	pv, err := NewIdentifiedPropertyValue(relation, target)
	require.NoError(t, err)

	err = pv.SetRelation(nil)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "relation", typeErr.Field)
	// The rejected assignment left the prior value in place.
	assert.Equal(t, Ident(relation), pv.Relation())

	err = pv.SetValue(nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, Ident(target), pv.Value())

	other := mustUnprefixed(t, "has_origin")
	require.NoError(t, pv.SetRelation(other))
	assert.Equal(t, Ident(other), pv.Relation())
}

func TestMutationGuardTyped(t *testing.T) {
	pv, err := NewTypedPropertyValue(
		mustUnprefixed(t, "creation_date"),
		"2019-04-08T23:21:05Z",
		mustPrefixed(t, "xsd", "date"),
	)
	require.NoError(t, err)

	var typeErr *TypeError
	err = pv.SetDatatype(nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "datatype", typeErr.Field)
	assert.Equal(t, Ident(mustPrefixed(t, "xsd", "date")), pv.Datatype())

	pv.SetValue("2020-01-01T00:00:00Z")
	assert.Equal(t, "2020-01-01T00:00:00Z", pv.Value())

	require.NoError(t, pv.SetDatatype(mustPrefixed(t, "xsd", "dateTime")))
	assert.Equal(t, `creation_date "2020-01-01T00:00:00Z" xsd:dateTime`, pv.String())
}

package obo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentVariantDiscrimination(t *testing.T) {
	id, err := ParseIdent("http://purl.obolibrary.org/obo/GO_0070412")
	require.NoError(t, err)
	u, ok := id.(URLIdent)
	require.True(t, ok)
	assert.Equal(t, "http://purl.obolibrary.org/obo/GO_0070412", u.Value())

	id, err = ParseIdent("GO:0070412")
	require.NoError(t, err)
	p, ok := id.(PrefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "GO", p.Prefix())
	assert.Equal(t, "0070412", p.Local())

	id, err = ParseIdent("created_by")
	require.NoError(t, err)
	un, ok := id.(UnprefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "created_by", un.Value())
}

func TestParseIdentURLPriority(t *testing.T) {
	// A scheme followed by `://` is a URL even though it would also
	// split as prefix:local.
	id, err := ParseIdent("https://www.ncbi.nlm.nih.gov/pubmed/26158829")
	require.NoError(t, err)
	assert.Equal(t, IdentURL, id.Kind())

	// Opaque URIs fall through to the prefixed branch.
	id, err = ParseIdent("mailto:john@example.com")
	require.NoError(t, err)
	p, ok := id.(PrefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "mailto", p.Prefix())
	assert.Equal(t, "john@example.com", p.Local())
}

func TestParseIdentEscapes(t *testing.T) {
	id, err := ParseIdent(`some\ thing`)
	require.NoError(t, err)
	un, ok := id.(UnprefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "some thing", un.Value())

	id, err = ParseIdent(`a\:b:1`)
	require.NoError(t, err)
	p, ok := id.(PrefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "a:b", p.Prefix())
	assert.Equal(t, "1", p.Local())

	id, err = ParseIdent(`GO:line\nbreak`)
	require.NoError(t, err)
	p, ok = id.(PrefixedIdent)
	require.True(t, ok)
	assert.Equal(t, "line\nbreak", p.Local())
}

func TestParseIdentSurroundingWhitespace(t *testing.T) {
	id, err := ParseIdent("  GO:0070412\t")
	require.NoError(t, err)
	assert.Equal(t, IdentPrefixed, id.Kind())
}

func TestParseIdentErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"trailing garbage", "GO:0070412 extra"},
		{"two colons", "a:b:c"},
		{"empty prefix", ":0070412"},
		{"empty local", "GO:"},
		{"raw newline", "bad\nid"},
		{"raw control", "bad\x01id"},
		{"unescaped quote", `bad"id`},
		{"truncated escape", `GO:1\`},
		{"url without body", "http://"},
		{"url with bad char", "http://exa<mple.org/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdent(tt.input)
			require.Error(t, err)
			assert.Nil(t, id)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, ErrCodeSyntax, Code(err))
		})
	}
}

func TestParseIdentErrorExcerpt(t *testing.T) {
	_, err := ParseIdent("GO:0070412 extra")
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "GO:0070412 extra", syntaxErr.Input)
	assert.Contains(t, syntaxErr.Error(), "^")
}

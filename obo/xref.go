package obo

import "strings"

// Xref is a database cross-reference: an identifier with an optional
// quoted description, as in `PMID:26158829 "PMC4631448"`.
type Xref struct {
	id      Ident
	desc    string
	hasDesc bool
}

// NewXref creates a cross-reference without a description.
func NewXref(id Ident) (*Xref, error) {
	if err := checkIdent("id", id); err != nil {
		return nil, err
	}
	return &Xref{id: id}, nil
}

// NewXrefWithDesc creates a cross-reference with a description.
func NewXrefWithDesc(id Ident, desc string) (*Xref, error) {
	if err := checkIdent("id", id); err != nil {
		return nil, err
	}
	return &Xref{id: id, desc: desc, hasDesc: true}, nil
}

// ID returns the referenced identifier.
func (x *Xref) ID() Ident { return x.id }

// SetID replaces the referenced identifier.
func (x *Xref) SetID(id Ident) error {
	if err := checkIdent("id", id); err != nil {
		return err
	}
	x.id = id
	return nil
}

// Desc returns the description and whether one is present.
func (x *Xref) Desc() (string, bool) { return x.desc, x.hasDesc }

// SetDesc replaces the description.
func (x *Xref) SetDesc(desc string) {
	x.desc = desc
	x.hasDesc = true
}

// ClearDesc removes the description.
func (x *Xref) ClearDesc() {
	x.desc = ""
	x.hasDesc = false
}

// String renders `ID` or `ID "description"`. List delimiters inside
// the identifier are escaped so the rendering is also valid inside an
// XrefList.
func (x *Xref) String() string {
	s := escapeListDelims(x.id.String())
	if !x.hasDesc {
		return s
	}
	return s + ` "` + escapeQuoted(x.desc) + `"`
}

// Equal reports structural equality.
func (x *Xref) Equal(other *Xref) bool {
	if other == nil {
		return false
	}
	return x.id == other.id && x.hasDesc == other.hasDesc && x.desc == other.desc
}

// ParseXref parses a single cross-reference.
func ParseXref(text string) (*Xref, error) {
	c := &cursor{input: text}
	x, err := c.scanXref("")
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !c.eof() {
		return nil, c.syntaxErrorf("unexpected trailing characters")
	}
	return x, nil
}

// scanXref scans one cross-reference, stopping the identifier token at
// any unescaped byte in stop (the list delimiters when scanning inside
// a bracketed list).
func (c *cursor) scanXref(stop string) (*Xref, error) {
	c.skipWS()
	start := c.pos
	raw, err := c.scanIdentToken(stop)
	if err != nil {
		return nil, err
	}
	id, err := classifyIdent(c.input, start, raw)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !c.eof() && c.peek() == '"' {
		desc, err := c.scanQuotedString()
		if err != nil {
			return nil, err
		}
		return &Xref{id: id, desc: desc, hasDesc: true}, nil
	}
	return &Xref{id: id}, nil
}

// XrefList is a bracketed list of cross-references, as in
// `[GO:0000067, GO:0000255 "via mitosis"]`.
type XrefList []*Xref

// ParseXrefList parses a bracketed cross-reference list. The empty
// list `[]` is valid.
func ParseXrefList(text string) (XrefList, error) {
	c := &cursor{input: text}
	if !c.consume('[') {
		return nil, c.syntaxErrorf("expected '['")
	}
	var list XrefList
	c.skipWS()
	if !c.eof() && c.peek() == ']' {
		c.pos++
	} else {
		for {
			x, err := c.scanXref(",]")
			if err != nil {
				return nil, err
			}
			list = append(list, x)
			c.skipWS()
			if c.eof() {
				return nil, c.syntaxErrorf("unterminated cross-reference list")
			}
			if ch := c.peek(); ch == ',' {
				c.pos++
				continue
			} else if ch != ']' {
				return nil, c.syntaxErrorf("expected ',' or ']'")
			}
			c.pos++
			break
		}
	}
	c.skipWS()
	if !c.eof() {
		return nil, c.syntaxErrorf("unexpected trailing characters")
	}
	return list, nil
}

// String renders the bracketed list form.
func (l XrefList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports element-wise structural equality.
func (l XrefList) Equal(other XrefList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

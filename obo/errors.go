package obo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeType indicates a value of the wrong kind was supplied to a
	// constructor, setter, or comparison.
	ErrCodeType ErrorCode = "TYPE_ERROR"
	// ErrCodeValue indicates a value of the right kind with
	// syntactically invalid content.
	ErrCodeValue ErrorCode = "VALUE_ERROR"
	// ErrCodeSyntax indicates malformed raw text during parsing.
	ErrCodeSyntax ErrorCode = "SYNTAX_ERROR"
)

var (
	errEmptyValue  = errors.New("empty value")
	errControlChar = errors.New("unescapable control character")
)

// Code returns the error code for an error, or ErrCodeSyntax if
// unknown. Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var typeErr *TypeError
	if errors.As(err, &typeErr) {
		return ErrCodeType
	}
	var valueErr *ValueError
	if errors.As(err, &valueErr) {
		return ErrCodeValue
	}
	// Default to syntax error for unknown errors.
	return ErrCodeSyntax
}

// TypeError reports a value of the wrong kind supplied to a
// constructor, setter, or comparison operator. The receiving value is
// left unchanged: the check runs before any state is committed.
type TypeError struct {
	Field    string // field or operand name (e.g. "relation")
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("obo: %s: expected %s, found %s", e.Field, e.Expected, e.Actual)
}

// ValueError reports a value of the right kind but with invalid
// content. Raised during construction only.
type ValueError struct {
	Kind  string // kind of value being constructed (e.g. "URL identifier")
	Value string // offending input, if printable
	Err   error  // underlying reason
}

func (e *ValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("obo: invalid %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("obo: invalid %s %q: %v", e.Kind, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// SyntaxError reports malformed raw text during parsing. Parsing is
// all-or-nothing: no partial value is ever returned alongside one.
type SyntaxError struct {
	Input  string // full input handed to the parser
	Offset int    // 0-based byte offset of the error
	Err    error  // underlying error
}

func (e *SyntaxError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "obo: offset %d: %v", e.Offset, e.Err)
	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

// formatExcerpt formats a readable excerpt of the input around the
// error offset, with a caret pointing at the position.
func (e *SyntaxError) formatExcerpt() string {
	if e.Input == "" {
		return ""
	}
	const contextLen = 40

	at := e.Offset
	if at < 0 {
		at = 0
	}
	if at > len(e.Input) {
		at = len(e.Input)
	}
	from := at - contextLen
	if from < 0 {
		from = 0
	}
	to := at + contextLen
	if to > len(e.Input) {
		to = len(e.Input)
	}

	excerpt := e.Input[from:to]
	caret := at - from
	if from > 0 {
		excerpt = "..." + excerpt
		caret += 3
	}
	if to < len(e.Input) {
		excerpt += "..."
	}

	var b strings.Builder
	b.WriteString(excerpt)
	b.WriteString("\n  ")
	for i := 0; i < caret; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErrorAt(input string, offset int, err error) error {
	return &SyntaxError{Input: input, Offset: offset, Err: err}
}

// Package errors defines the error kinds reported by the xmltree lexer,
// parser, and node accessors. Parse failures are fatal: a malformed
// document aborts the whole parse with no partial tree or recovery.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedString reports a quoted text run with no closing quote
	// before the end of input.
	ErrUnterminatedString = errors.New("unterminated quoted text")
	// ErrInvalidSymbol reports a character inside a tag that is neither part
	// of a name nor one of the tag's terminators.
	ErrInvalidSymbol = errors.New("invalid symbol inside tag")
	// ErrMissingName reports a position where a tag or attribute name was
	// required but no text token was present.
	ErrMissingName = errors.New("missing name")
	// ErrMissingValue reports an attribute name with no following value token.
	ErrMissingValue = errors.New("missing attribute value")
	// ErrMismatchedClose reports a closing tag whose name does not match the
	// element currently open.
	ErrMismatchedClose = errors.New("mismatched closing tag")
	// ErrUnexpectedToken reports a token kind that is not valid in the
	// current parse state.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrNoMarkup reports input that produced no tokens at all, such as
	// JSON or plain prose fed to the parser.
	ErrNoMarkup = errors.New("input contains no markup")

	// ErrNotFound reports a name lookup that matched no attribute or child.
	// Unlike the parse errors above it is a recoverable condition.
	ErrNotFound = errors.New("not found")
)

// SyntaxError is a fatal parse failure at a byte offset in the source.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xmltree: %s at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Package lexer splits a byte buffer of XML-like markup into tokens.
//
// The lexer never allocates per token: a token is an offset/length view into
// the input, and its literal is materialized only on request. Entity
// references such as &amp; are not decoded; they pass through as text.
package lexer

import (
	"unicode"
	"unicode/utf8"

	xmlerr "github.com/knielsen/go-xmltree/errors"
	"github.com/knielsen/go-xmltree/token"
)

// Mode is the lexical mode of the cursor. Text runs terminate differently
// between the two modes.
type Mode int

const (
	// OutsideTag scans element content: a text run extends to the next '<'.
	OutsideTag Mode = iota
	// InsideTag scans between '<' and '>': a text run stops at whitespace
	// or a structural symbol ('=', '>', '/', '?'), and characters outside
	// the name alphabet are fatal.
	InsideTag
)

// Lexer is a sequential cursor over a markup source.
type Lexer struct {
	input []byte
	pos   int
	mode  Mode
}

// New returns a lexer reading from the start of input in OutsideTag mode.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// Next scans the next token and advances the cursor past it. Consuming an
// OPEN token switches the lexer to InsideTag mode; a CLOSE token switches it
// back. An EOF token means no complete token exists before the end of input.
func (l *Lexer) Next() (token.Token, error) {
	tok, end, err := scan(l.input, l.pos, l.mode)
	if err != nil {
		return token.Token{}, err
	}
	l.pos = end
	switch tok.Kind {
	case token.OPEN:
		l.mode = InsideTag
	case token.CLOSE:
		l.mode = OutsideTag
	}
	return tok, nil
}

// Peek classifies the next token without consuming it or switching modes.
func (l *Lexer) Peek() (token.Token, error) {
	tok, _, err := scan(l.input, l.pos, l.mode)
	return tok, err
}

// Text returns tok's literal from the lexer's input.
func (l *Lexer) Text(tok token.Token) string {
	return tok.Text(l.input)
}

// Pos returns the cursor's byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Mode returns the cursor's lexical mode.
func (l *Lexer) Mode() Mode { return l.mode }

// Reset moves the cursor to the byte offset pos and sets the lexical mode.
func (l *Lexer) Reset(pos int, mode Mode) {
	l.pos = pos
	l.mode = mode
}

// scan classifies the token starting at or after pos under mode and returns
// it together with the cursor position just past it.
func scan(input []byte, pos int, mode Mode) (token.Token, int, error) {
	pos = skipInsignificant(input, pos, mode)
	if pos >= len(input) {
		return token.Token{Kind: token.EOF, Pos: pos}, pos, nil
	}
	switch input[pos] {
	case '<':
		return token.Token{Kind: token.OPEN, Pos: pos, Len: 1}, pos + 1, nil
	case '>':
		return token.Token{Kind: token.CLOSE, Pos: pos, Len: 1}, pos + 1, nil
	case '/':
		return token.Token{Kind: token.SLASH, Pos: pos, Len: 1}, pos + 1, nil
	case '?':
		return token.Token{Kind: token.PROLOGUE, Pos: pos, Len: 1}, pos + 1, nil
	}
	if mode == InsideTag {
		if input[pos] == '"' {
			return scanQuoted(input, pos)
		}
		return scanName(input, pos)
	}
	// Outside a tag a '"' has no lexical role; it is ordinary content.
	return scanContent(input, pos)
}

// skipInsignificant advances past whitespace and UTF-8 byte order marks,
// neither of which produce tokens. Inside a tag the '=' attribute separator
// is skipped as well; outside a tag a '=' is ordinary content.
func skipInsignificant(input []byte, pos int, mode Mode) int {
	for pos < len(input) {
		switch c := input[pos]; {
		case isSpace(c) || (c == '=' && mode == InsideTag):
			pos++
		case c == 0xEF && pos+2 < len(input) && input[pos+1] == 0xBB && input[pos+2] == 0xBF:
			pos += 3
		default:
			return pos
		}
	}
	return pos
}

// scanQuoted reads a double-quoted run inside a tag. The token spans both
// quotes; token.Text strips them again.
func scanQuoted(input []byte, pos int) (token.Token, int, error) {
	for i := pos + 1; i < len(input); i++ {
		if input[i] == '"' {
			end := i + 1
			return token.Token{Kind: token.TEXT, Pos: pos, Len: end - pos, Quoted: true}, end, nil
		}
	}
	return token.Token{}, 0, &xmlerr.SyntaxError{Offset: pos, Err: xmlerr.ErrUnterminatedString}
}

// scanName reads an unquoted run inside a tag: a tag name, attribute name,
// or unquoted attribute value.
func scanName(input []byte, pos int) (token.Token, int, error) {
	i := pos
	for i < len(input) {
		c := input[i]
		if isSpace(c) || c == '=' || c == '>' || c == '/' || c == '?' {
			break
		}
		r, size := utf8.DecodeRune(input[i:])
		if !isNameRune(r) {
			return token.Token{}, 0, &xmlerr.SyntaxError{Offset: i, Err: xmlerr.ErrInvalidSymbol}
		}
		i += size
	}
	if i >= len(input) {
		// The tag was cut off before any terminator.
		return token.Token{Kind: token.EOF, Pos: i}, i, nil
	}
	return token.Token{Kind: token.TEXT, Pos: pos, Len: i - pos}, i, nil
}

// scanContent reads bare element content up to the next '<'. Trailing
// whitespace belongs to the document's formatting, not the content, and is
// left out of the token. Input that never reaches a '<' holds no token at
// all, which is how non-markup text such as JSON is rejected.
func scanContent(input []byte, pos int) (token.Token, int, error) {
	i := pos
	for i < len(input) && input[i] != '<' {
		i++
	}
	if i >= len(input) {
		return token.Token{Kind: token.EOF, Pos: i}, i, nil
	}
	end := i
	for end > pos && isSpace(input[end-1]) {
		end--
	}
	return token.Token{Kind: token.TEXT, Pos: pos, Len: end - pos}, i, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '-' || r == '.' || r == ':'
}

// Package parser assembles the lexer's token stream into a node tree.
//
// The grammar needs no general backtracking: a two-token window over the
// stream (cur and peek, in the manner of a classic recursive-descent parser)
// is enough to tell a nested child element from the current element's own
// closing tag. A closing tag whose name does not match the element currently
// open is always a fatal error, even when it would match an ancestor.
package parser

import (
	"fmt"

	"github.com/knielsen/go-xmltree/ast"
	xmlerr "github.com/knielsen/go-xmltree/errors"
	"github.com/knielsen/go-xmltree/lexer"
	"github.com/knielsen/go-xmltree/token"
)

// Parser holds the state of the parser.
type Parser struct {
	l   *lexer.Lexer
	err error

	cur  token.Token
	peek token.Token
}

// New creates a new parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens, so cur and peek are both set.
	p.next()
	p.next()
	return p
}

// Parse consumes the whole input and returns its top-level nodes in order.
// Input that yields no tokens at all is rejected with errors.ErrNoMarkup,
// and any malformed construct aborts the parse with the first error.
func (p *Parser) Parse() (*ast.Document, error) {
	doc := &ast.Document{}
	for p.cur.Kind != token.EOF {
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	if p.err != nil {
		return nil, p.err
	}
	if len(doc.Nodes) == 0 {
		return nil, &xmlerr.SyntaxError{Offset: 0, Err: xmlerr.ErrNoMarkup}
	}
	return doc, nil
}

// ParseNode parses a single element from the current position, leaving the
// cursor just past its closing tag.
func (p *Parser) ParseNode() (*ast.Node, error) {
	return p.parseNode()
}

func (p *Parser) next() {
	p.cur = p.peek
	if p.err != nil {
		p.peek = token.Token{Kind: token.EOF, Pos: p.l.Pos()}
		return
	}
	tok, err := p.l.Next()
	if err != nil {
		p.err = err
		tok = token.Token{Kind: token.EOF, Pos: p.l.Pos()}
	}
	p.peek = tok
}

func (p *Parser) parseNode() (*ast.Node, error) {
	if p.cur.Kind != token.OPEN {
		if p.cur.Kind == token.EOF {
			return nil, p.unexpectedEnd()
		}
		return nil, p.errAt(p.cur, fmt.Errorf("%w: have %s, want '<'", xmlerr.ErrUnexpectedToken, p.cur.Kind))
	}
	p.next() // consume '<'

	n := &ast.Node{}
	if p.cur.Kind == token.PROLOGUE {
		n.Prologue = true
		p.next()
	}
	if p.cur.Kind != token.TEXT || p.cur.Quoted {
		if p.cur.Kind == token.EOF {
			return nil, p.unexpectedEnd()
		}
		return nil, p.errAt(p.cur, xmlerr.ErrMissingName)
	}
	n.Name = p.l.Text(p.cur)
	p.next()

	done, err := p.parseAttrs(n)
	if err != nil {
		return nil, err
	}
	if done {
		return n, nil
	}
	if err := p.parseBody(n); err != nil {
		return nil, err
	}
	return n, nil
}

// parseAttrs reads the attribute list after the name token. It reports
// done when the element terminated inside its tag: "/>" for an empty
// element or "?>" for a declaration.
func (p *Parser) parseAttrs(n *ast.Node) (done bool, err error) {
	for {
		switch p.cur.Kind {
		case token.CLOSE:
			// A declaration never has a body or a closing tag; it must
			// self-terminate with "?>".
			if n.Prologue {
				return false, p.errAt(p.cur, fmt.Errorf("%w: declaration <?%s ends with '>', want '?>'", xmlerr.ErrUnexpectedToken, n.Name))
			}
			p.next()
			return false, nil
		case token.SLASH:
			p.next()
			if p.cur.Kind != token.CLOSE {
				if p.cur.Kind == token.EOF {
					return false, p.unexpectedEnd()
				}
				return false, p.errAt(p.cur, fmt.Errorf("%w: have %s after '/', want '>'", xmlerr.ErrUnexpectedToken, p.cur.Kind))
			}
			p.next()
			return true, nil
		case token.PROLOGUE:
			if !n.Prologue {
				return false, p.errAt(p.cur, fmt.Errorf("%w: '?' outside a declaration", xmlerr.ErrUnexpectedToken))
			}
			p.next()
			if p.cur.Kind != token.CLOSE {
				if p.cur.Kind == token.EOF {
					return false, p.unexpectedEnd()
				}
				return false, p.errAt(p.cur, fmt.Errorf("%w: have %s after '?', want '>'", xmlerr.ErrUnexpectedToken, p.cur.Kind))
			}
			p.next()
			return true, nil
		case token.TEXT:
			if p.cur.Quoted {
				return false, p.errAt(p.cur, fmt.Errorf("quoted text where an attribute name is required: %w", xmlerr.ErrMissingName))
			}
			name := p.l.Text(p.cur)
			p.next()
			if p.cur.Kind != token.TEXT {
				if p.cur.Kind == token.EOF {
					return false, p.unexpectedEnd()
				}
				return false, p.errAt(p.cur, fmt.Errorf("%w for attribute %q", xmlerr.ErrMissingValue, name))
			}
			n.Attrs = append(n.Attrs, &ast.Attr{Name: name, Value: p.l.Text(p.cur)})
			p.next()
		case token.EOF:
			return false, p.unexpectedEnd()
		default:
			return false, p.errAt(p.cur, fmt.Errorf("%w: have %s in tag", xmlerr.ErrUnexpectedToken, p.cur.Kind))
		}
	}
}

// parseBody reads content runs and child elements until the element's own
// closing tag.
func (p *Parser) parseBody(n *ast.Node) error {
	for {
		switch p.cur.Kind {
		case token.TEXT:
			// Consecutive content runs concatenate; child elements between
			// them keep their own places in Children.
			n.Content += p.l.Text(p.cur)
			p.next()
		case token.OPEN:
			if p.peek.Kind == token.SLASH {
				return p.parseCloseTag(n)
			}
			child, err := p.parseNode()
			if err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case token.EOF:
			return p.unexpectedEnd()
		default:
			return p.errAt(p.cur, fmt.Errorf("%w: have %s in <%s>", xmlerr.ErrUnexpectedToken, p.cur.Kind, n.Name))
		}
	}
}

// parseCloseTag consumes "</name>" and checks the name against the element
// currently open.
func (p *Parser) parseCloseTag(n *ast.Node) error {
	p.next() // consume '<'
	p.next() // consume '/'
	if p.cur.Kind != token.TEXT {
		if p.cur.Kind == token.EOF {
			return p.unexpectedEnd()
		}
		return p.errAt(p.cur, xmlerr.ErrMissingName)
	}
	name := p.l.Text(p.cur)
	if name != n.Name {
		return p.errAt(p.cur, fmt.Errorf("%w: have </%s>, want </%s>", xmlerr.ErrMismatchedClose, name, n.Name))
	}
	p.next()
	if p.cur.Kind != token.CLOSE {
		if p.cur.Kind == token.EOF {
			return p.unexpectedEnd()
		}
		return p.errAt(p.cur, fmt.Errorf("%w: have %s in closing tag, want '>'", xmlerr.ErrUnexpectedToken, p.cur.Kind))
	}
	p.next()
	return nil
}

func (p *Parser) errAt(t token.Token, err error) error {
	return &xmlerr.SyntaxError{Offset: t.Pos, Err: err}
}

// unexpectedEnd reports the lexer's own error when one stopped the token
// stream, and a truncated-input error otherwise.
func (p *Parser) unexpectedEnd() error {
	if p.err != nil {
		return p.err
	}
	return p.errAt(p.cur, fmt.Errorf("unexpected end of input: %w", xmlerr.ErrUnexpectedToken))
}

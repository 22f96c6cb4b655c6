package ast

import (
	"bytes"
	"io"
	"strings"
)

// Flags select formatting behaviors of the serializer. Flags are independent
// and freely composable; no combination is invalid.
type Flags uint8

const (
	// CR ends lines with a carriage return.
	CR Flags = 1 << iota
	// LF ends lines with a line feed. Combined with CR the serializer emits
	// Windows-style "\r\n" endings.
	LF
	// RootSpacing surrounds each depth-1 child with a blank line.
	RootSpacing
	// SkipEmpty omits children that have no content, no children, and no
	// attributes.
	SkipEmpty
	// SelfCloseSpace puts a space before the "/>" of a self-closing element
	// that has attributes.
	SelfCloseSpace
)

// Settings control one serialization pass. The zero value renders the most
// compact form: no line endings, no indentation.
type Settings struct {
	Flags  Flags
	Indent int
}

// Compact returns settings that render everything on one line with no
// spacing between elements.
func Compact() Settings {
	return Settings{}
}

// Pretty returns settings for human-readable output: CRLF line endings and
// two-space indentation.
func Pretty() Settings {
	return Settings{Flags: CR | LF | SelfCloseSpace, Indent: 2}
}

// WriteTo renders the node and its subtree to w under s.
func (n *Node) WriteTo(w io.Writer, s Settings) error {
	p := &printer{w: w, s: s}
	return p.node(n, 0)
}

// String renders the node and its subtree in compact form.
func (n *Node) String() string {
	var buf bytes.Buffer
	_ = n.WriteTo(&buf, Compact())
	return buf.String()
}

// WriteTo renders each top-level node to w under s, separated by line
// endings when s enables them.
func (d *Document) WriteTo(w io.Writer, s Settings) error {
	p := &printer{w: w, s: s}
	for i, n := range d.Nodes {
		if i > 0 {
			if err := p.newline(); err != nil {
				return err
			}
		}
		if err := p.node(n, 0); err != nil {
			return err
		}
	}
	return nil
}

// String renders the document in compact form.
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.WriteTo(&buf, Compact())
	return buf.String()
}

// printer walks a tree depth-first and writes its textual form.
type printer struct {
	w io.Writer
	s Settings
}

func (p *printer) str(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

// newline writes the configured line ending, which may be empty.
func (p *printer) newline() error {
	switch {
	case p.s.Flags&CR != 0 && p.s.Flags&LF != 0:
		return p.str("\r\n")
	case p.s.Flags&CR != 0:
		return p.str("\r")
	case p.s.Flags&LF != 0:
		return p.str("\n")
	}
	return nil
}

func (p *printer) indent(depth int) error {
	if p.s.Indent <= 0 || depth <= 0 {
		return nil
	}
	return p.str(strings.Repeat(" ", p.s.Indent*depth))
}

// skippable reports whether n is omitted under the SkipEmpty flag.
func skippable(n *Node) bool {
	return n.Content == "" && len(n.Children) == 0 && len(n.Attrs) == 0
}

func (p *printer) node(n *Node, depth int) error { //nolint:gocognit
	open := "<"
	if n.Prologue {
		open = "<?"
	}
	if err := p.str(open + n.Name); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if err := p.str(" " + a.String()); err != nil {
			return err
		}
	}

	hasBody := n.Content != "" || len(n.Children) > 0
	switch {
	case n.Prologue:
		// Declarations self-terminate inline; any body follows the "?>".
		if err := p.str("?>"); err != nil {
			return err
		}
		if !hasBody {
			return nil
		}
	case !hasBody:
		if p.s.Flags&SelfCloseSpace != 0 && len(n.Attrs) > 0 {
			if err := p.str(" "); err != nil {
				return err
			}
		}
		return p.str("/>")
	default:
		if err := p.str(">"); err != nil {
			return err
		}
	}

	if n.Content != "" {
		if err := p.str(n.Content); err != nil {
			return err
		}
	}

	written := 0
	for _, c := range n.Children {
		if p.s.Flags&SkipEmpty != 0 && skippable(c) {
			continue
		}
		if err := p.newline(); err != nil {
			return err
		}
		if depth == 0 && p.s.Flags&RootSpacing != 0 {
			if err := p.newline(); err != nil {
				return err
			}
		}
		if err := p.indent(depth + 1); err != nil {
			return err
		}
		if err := p.node(c, depth+1); err != nil {
			return err
		}
		written++
	}

	if n.Prologue {
		// No closing tag for declarations.
		return nil
	}
	if written > 0 {
		if depth == 0 && p.s.Flags&RootSpacing != 0 {
			if err := p.newline(); err != nil {
				return err
			}
		}
		if err := p.newline(); err != nil {
			return err
		}
		if err := p.indent(depth); err != nil {
			return err
		}
	}
	return p.str("</" + n.Name + ">")
}

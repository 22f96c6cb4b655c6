// Package ast defines the node tree produced by the parser: named,
// attributed nodes with text content and ordered children, plus the
// serializer that renders a tree back to markup text.
package ast

import (
	"fmt"

	xmlerr "github.com/knielsen/go-xmltree/errors"
)

// Attr is a name/value attribute pair. Name is never empty on a node built
// by the parser; Value may be.
type Attr struct {
	Name  string
	Value string
}

// String renders the attribute in its serialized name="value" form.
func (a *Attr) String() string {
	return a.Name + `="` + a.Value + `"`
}

// Node is an element of the document tree. It owns its attributes, content,
// and children outright: detaching a subtree makes it unreachable from the
// document, and the usual reachability rules reclaim it.
//
// Attrs and Children keep document order. Attribute names are not required
// to be unique; lookups return the first match.
type Node struct {
	Name     string
	Attrs    []*Attr
	Content  string
	Children []*Node

	// Prologue marks a declaration node such as <?xml version="1.0"?>.
	// Prologue nodes have no closing tag and self-terminate with "?>".
	Prologue bool
}

// NewNode returns an element node with the given name and no attributes,
// content, or children. Such a node serializes as a self-closing tag.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// NewNodeContent returns an element node with the given name and text content.
func NewNodeContent(name, content string) *Node {
	return &Node{Name: name, Content: content}
}

// LookupAttr returns the first attribute with the given name, and whether
// one was found.
func (n *Node) LookupAttr(name string) (*Attr, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Attr returns the first attribute with the given name. It is the
// must-exist form of LookupAttr: a miss is reported as an error wrapping
// errors.ErrNotFound.
func (n *Node) Attr(name string) (*Attr, error) {
	if a, ok := n.LookupAttr(name); ok {
		return a, nil
	}
	return nil, fmt.Errorf("xmltree: attribute %q on <%s>: %w", name, n.Name, xmlerr.ErrNotFound)
}

// SetAttr updates the first attribute with the given name, or appends a new
// one, and returns it.
func (n *Node) SetAttr(name, value string) *Attr {
	if a, ok := n.LookupAttr(name); ok {
		a.Value = value
		return a
	}
	a := &Attr{Name: name, Value: value}
	n.Attrs = append(n.Attrs, a)
	return a
}

// RemoveAttr removes the first attribute with the given name and reports
// whether one was removed.
func (n *Node) RemoveAttr(name string) bool {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// LookupChild returns the first child with the given name, and whether one
// was found.
func (n *Node) LookupChild(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Child returns the first child with the given name. It is the must-exist
// form of LookupChild: a miss is reported as an error wrapping
// errors.ErrNotFound.
func (n *Node) Child(name string) (*Node, error) {
	if c, ok := n.LookupChild(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("xmltree: child <%s> of <%s>: %w", name, n.Name, xmlerr.ErrNotFound)
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// RemoveChild detaches the given child (matched by identity) and reports
// whether it was present. The detached subtree keeps its own descendants.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// SetContent replaces the node's text content.
func (n *Node) SetContent(content string) {
	n.Content = content
}

// Document is an ordered sequence of top-level nodes: any prologue
// declarations followed by the root element.
type Document struct {
	Nodes []*Node
}

// Root returns the document's first non-prologue node, or nil if the
// document holds only declarations.
func (d *Document) Root() *Node {
	for _, n := range d.Nodes {
		if !n.Prologue {
			return n
		}
	}
	return nil
}

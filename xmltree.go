package xmltree

import (
	"bytes"
	"io"

	"github.com/knielsen/go-xmltree/ast"
	"github.com/knielsen/go-xmltree/lexer"
	"github.com/knielsen/go-xmltree/parser"
)

// Aliases so that common use needs only the root package.
type (
	// Node is an element of the document tree. See the ast package.
	Node = ast.Node
	// Attr is a name/value attribute pair.
	Attr = ast.Attr
	// Document is an ordered sequence of top-level nodes.
	Document = ast.Document
	// Settings control serialization formatting.
	Settings = ast.Settings
)

// NewNode returns an element node with the given name and no attributes,
// content, or children.
func NewNode(name string) *ast.Node { return ast.NewNode(name) }

// NewNodeContent returns an element node with the given name and text content.
func NewNodeContent(name, content string) *ast.Node {
	return ast.NewNodeContent(name, content)
}

// Renderable is a tree value that can write itself out under serialization
// settings, i.e. *Node or *Document.
type Renderable interface {
	WriteTo(w io.Writer, s ast.Settings) error
}

// Parse parses data into a document tree: any prologue declarations followed
// by the root element. Input that produces no tokens at all (for example
// JSON or plain prose) is rejected with errors.ErrNoMarkup; any malformed
// construct aborts the whole parse with a *errors.SyntaxError.
func Parse(data []byte) (*ast.Document, error) {
	p := parser.New(lexer.New(data))
	return p.Parse()
}

// ParseNode parses a single element from the start of data, ignoring
// anything that follows its closing tag.
func ParseNode(data []byte) (*ast.Node, error) {
	p := parser.New(lexer.New(data))
	return p.ParseNode()
}

// Marshal returns the textual form of n under the given options. With no
// options the output is compact: no line endings, no indentation.
func Marshal(n Renderable, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

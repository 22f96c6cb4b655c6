package ast_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/knielsen/go-xmltree/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringCompact(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want string
	}{
		{
			"empty element",
			ast.NewNode("a"),
			`<a/>`,
		},
		{
			"empty element with attributes",
			func() *ast.Node {
				n := ast.NewNode("a")
				n.SetAttr("x", "1")
				n.SetAttr("y", "")
				return n
			}(),
			`<a x="1" y=""/>`,
		},
		{
			"content only",
			ast.NewNodeContent("a", "hi"),
			`<a>hi</a>`,
		},
		{
			"children",
			func() *ast.Node {
				n := ast.NewNode("a")
				n.AppendChild(ast.NewNodeContent("b", "x"))
				n.AppendChild(ast.NewNode("c"))
				return n
			}(),
			`<a><b>x</b><c/></a>`,
		},
		{
			"mixed content before children",
			func() *ast.Node {
				n := ast.NewNodeContent("a", "hi")
				n.AppendChild(ast.NewNode("b"))
				return n
			}(),
			`<a>hi<b/></a>`,
		},
		{
			"prologue",
			func() *ast.Node {
				n := &ast.Node{Name: "xml", Prologue: true}
				n.SetAttr("version", "1.0")
				return n
			}(),
			`<?xml version="1.0"?>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestWriteToPretty(t *testing.T) {
	root := ast.NewNode("Root")
	a := ast.NewNode("A")
	a.SetAttr("n", "1")
	root.AppendChild(a)
	root.AppendChild(ast.NewNodeContent("B", "hi"))

	got := render(t, root, ast.Pretty())
	want := "<Root>\r\n" +
		"  <A n=\"1\" />\r\n" +
		"  <B>hi</B>\r\n" +
		"</Root>"
	assert.Equal(t, want, got)
}

func TestWriteToPrettyNested(t *testing.T) {
	root := ast.NewNode("Root")
	b := ast.NewNode("B")
	b.AppendChild(ast.NewNode("C"))
	root.AppendChild(b)

	got := render(t, root, ast.Pretty())
	want := "<Root>\r\n" +
		"  <B>\r\n" +
		"    <C/>\r\n" +
		"  </B>\r\n" +
		"</Root>"
	assert.Equal(t, want, got)
}

func TestWriteToLineEndingFlags(t *testing.T) {
	root := ast.NewNode("a")
	root.AppendChild(ast.NewNode("b"))

	tests := []struct {
		name  string
		flags ast.Flags
		want  string
	}{
		{"none", 0, "<a><b/></a>"},
		{"lf", ast.LF, "<a>\n<b/>\n</a>"},
		{"cr", ast.CR, "<a>\r<b/>\r</a>"},
		{"crlf", ast.CR | ast.LF, "<a>\r\n<b/>\r\n</a>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, root, ast.Settings{Flags: tt.flags})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteToSkipEmpty(t *testing.T) {
	root := ast.NewNode("Root")
	root.AppendChild(ast.NewNodeContent("A", "x"))
	empty := ast.NewNode("B")
	root.AppendChild(empty)
	withAttr := ast.NewNode("C")
	withAttr.SetAttr("k", "v")
	root.AppendChild(withAttr)

	got := render(t, root, ast.Settings{Flags: ast.SkipEmpty})
	assert.Equal(t, `<Root><A>x</A><C k="v"/></Root>`, got)
}

func TestWriteToRootSpacing(t *testing.T) {
	root := ast.NewNode("Root")
	root.AppendChild(ast.NewNode("A"))
	root.AppendChild(ast.NewNode("B"))

	got := render(t, root, ast.Settings{Flags: ast.LF | ast.RootSpacing})
	want := "<Root>\n\n<A/>\n\n<B/>\n\n</Root>"
	assert.Equal(t, want, got)

	// The blank line applies at depth 1 only.
	nested := ast.NewNode("Root")
	mid := ast.NewNode("Mid")
	mid.AppendChild(ast.NewNode("Leaf"))
	nested.AppendChild(mid)
	got = render(t, nested, ast.Settings{Flags: ast.LF | ast.RootSpacing})
	want = "<Root>\n\n<Mid>\n<Leaf/>\n</Mid>\n\n</Root>"
	assert.Equal(t, want, got)
}

func TestWriteToSelfCloseSpace(t *testing.T) {
	n := ast.NewNode("a")
	n.SetAttr("x", "1")
	got := render(t, n, ast.Settings{Flags: ast.SelfCloseSpace})
	assert.Equal(t, `<a x="1" />`, got)

	// Without attributes there is nothing to separate.
	bare := ast.NewNode("a")
	got = render(t, bare, ast.Settings{Flags: ast.SelfCloseSpace})
	assert.Equal(t, `<a/>`, got)
}

func TestDocumentWriteTo(t *testing.T) {
	decl := &ast.Node{Name: "xml", Prologue: true}
	decl.SetAttr("version", "1.0")
	root := ast.NewNode("Root")
	doc := &ast.Document{Nodes: []*ast.Node{decl, root}}

	assert.Equal(t, `<?xml version="1.0"?><Root/>`, doc.String())

	got := render(t, doc, ast.Settings{Flags: ast.LF})
	assert.Equal(t, "<?xml version=\"1.0\"?>\n<Root/>", got)
}

func render(t *testing.T, n interface {
	WriteTo(io.Writer, ast.Settings) error
}, s ast.Settings) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.WriteTo(&buf, s))
	return buf.String()
}

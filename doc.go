/*
Package xmltree parses XML-like markup into a mutable in-memory node tree
and renders trees back to text under configurable formatting, so a document
can be parsed, edited in place, and serialized again.

Parsing starts from a byte buffer and produces a Document of named,
attributed nodes:

	doc, err := xmltree.Parse([]byte(`<Package Id="Apple"><Version>2</Version></Package>`))
	if err != nil {
		// handle error
	}
	root := doc.Root()

Nodes expose their attributes and children in document order and can be
edited in place. Lookups come in two forms: a comma-ok form for optional
data and an error form, wrapping errors.ErrNotFound, for call sites where
the name must exist.

	if a, ok := root.LookupAttr("Id"); ok {
		a.Value = "Pear"
	}
	v, err := root.Child("Version")

Marshal renders a tree back to text. The default is the most compact form;
functional options select line endings, indentation, and node omission:

	out, err := xmltree.Marshal(doc, xmltree.Pretty())

The library handles a deliberately small dialect: no DTDs, namespaces,
comments, or CDATA sections, and entity references such as &amp; pass
through as literal text. All parse failures are fatal for the whole parse;
the error kinds live in the errors sub-package. A tree is not safe for
concurrent mutation; callers sharing one across goroutines must provide
their own synchronization.
*/
package xmltree

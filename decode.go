package xmltree

import (
	"fmt"
	"io"

	"github.com/knielsen/go-xmltree/ast"
)

// Decoder reads a document tree from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to close r if required.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the remainder of the input and parses it into a document
// tree. See Parse for the error conditions.
//
// Note: this is a non-streaming implementation. It reads the entire reader
// into memory before parsing.
func (d *Decoder) Decode() (*ast.Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("xmltree: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

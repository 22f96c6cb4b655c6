package xmltree

import (
	"io"

	"github.com/knielsen/go-xmltree/ast"
)

// Encoder writes node trees to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the textual form of n to the stream.
func (e *Encoder) Encode(n Renderable) error {
	o := options{settings: ast.Compact()}
	for _, opt := range e.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}
	return n.WriteTo(e.w, o.settings)
}

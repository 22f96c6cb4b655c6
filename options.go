package xmltree

import (
	"fmt"

	"github.com/knielsen/go-xmltree/ast"
)

type options struct {
	settings ast.Settings
}

// Option configures serialization.
type Option func(*options) error

// Indent sets the indentation width per tree depth.
//
// The width n must be non-negative.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("xmltree: indent must be non-negative")
		}
		o.settings.Indent = n
		return nil
	}
}

// CRLF ends lines with "\r\n".
func CRLF() Option {
	return func(o *options) error {
		o.settings.Flags |= ast.CR | ast.LF
		return nil
	}
}

// LF ends lines with "\n".
func LF() Option {
	return func(o *options) error {
		o.settings.Flags |= ast.LF
		return nil
	}
}

// RootSpacing surrounds each depth-1 child with a blank line.
func RootSpacing() Option {
	return func(o *options) error {
		o.settings.Flags |= ast.RootSpacing
		return nil
	}
}

// SkipEmptyNodes omits children that have no content, no children, and no
// attributes.
func SkipEmptyNodes() Option {
	return func(o *options) error {
		o.settings.Flags |= ast.SkipEmpty
		return nil
	}
}

// SelfCloseSpace puts a space before the "/>" of self-closing elements that
// have attributes.
func SelfCloseSpace() Option {
	return func(o *options) error {
		o.settings.Flags |= ast.SelfCloseSpace
		return nil
	}
}

// Pretty applies the human-readable preset: CRLF line endings and two-space
// indentation. Options given after Pretty refine it.
func Pretty() Option {
	return func(o *options) error {
		o.settings = ast.Pretty()
		return nil
	}
}

// WithSettings replaces the settings wholesale.
func WithSettings(s ast.Settings) Option {
	return func(o *options) error {
		o.settings = s
		return nil
	}
}

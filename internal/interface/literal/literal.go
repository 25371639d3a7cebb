// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values with a printed representation.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (literal) is any value that can be written back out as text.
type T interface {
	Literal() string
}

// String returns the printed representation for a cell.
// Values without one are shown by type name.
func String(c cell.T) string {
	if c == nil {
		return "(|nil|)"
	}

	l, ok := c.(T)
	if !ok {
		return "(|" + c.Name() + "|)"
	}

	return l.Literal()
}

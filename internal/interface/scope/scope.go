// Released under an MIT license. See LICENSE.

// Package scope defines the interface for environment frames.
package scope

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (scope) is a frame of bindings linked to its enclosing frame.
type T interface {
	Enclosing() T

	Define(k string, v cell.T) cell.T
	Lookup(k string) (cell.T, error)
	Names() []string
}

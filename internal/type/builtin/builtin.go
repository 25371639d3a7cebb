// Released under an MIT license. See LICENSE.

// Package builtin provides the primitive function reference type.
package builtin

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "primitive"

// T (builtin) names a native function in the primitive table.
type T string

// New creates a reference to the primitive called v.
func New(v string) cell.T {
	b := T(v)
	return &b
}

// The builtin type is a cell.

// Equal returns true if c refers to the same primitive as b.
func (b *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	return ok && *b == *o
}

// Name returns the type name for the builtin b.
func (b *T) Name() string {
	return name
}

// The builtin type has a literal representation.

// Literal returns the literal representation of the builtin b.
func (b *T) Literal() string {
	return "(|" + name + " " + string(*b) + "|)"
}

// The builtin type is a stringer.

// String returns the name of the primitive that b refers to.
func (b *T) String() string {
	return string(*b)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it returns nil and false.
func To(c cell.T) (*T, bool) {
	b, ok := c.(*T)
	return b, ok
}

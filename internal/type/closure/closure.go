// Released under an MIT license. See LICENSE.

// Package closure provides the user-defined function type.
package closure

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
)

const name = "closure"

// T (closure) pairs a parameter list and body with the scope where
// the closure was created. The scope is shared, not copied.
type T struct {
	Body   cell.T  // A single expression.
	Params cell.T  // Proper list of symbols.
	Scope  scope.T // Defining frame.
}

// New creates a closure over s.
func New(params, body cell.T, s scope.T) *T {
	return &T{
		Body:   body,
		Params: params,
		Scope:  s,
	}
}

// The closure type is a cell.

// Equal always returns false. Comparing captured scopes could recurse
// forever so closures are never equal, not even to themselves.
func (c *T) Equal(_ cell.T) bool {
	return false
}

// Name returns the type name for the closure c.
func (c *T) Name() string {
	return name
}

// The closure type has a literal representation.

// Literal returns the literal representation of the closure c.
func (c *T) Literal() string {
	return "(|" + name + " " + literal.String(c.Params) + "|)"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it returns nil and false.
func To(c cell.T) (*T, bool) {
	t, ok := c.(*T)
	return t, ok
}

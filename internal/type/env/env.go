// Released under an MIT license. See LICENSE.

// Package env provides lexical environment frames.
package env

import (
	"sort"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/type/builtin"
	"github.com/michaelmacinnis/lisp/internal/type/hash"
)

// T (env) is one frame of bindings and a link to the enclosing frame.
type T struct {
	previous scope.T
	*hash.T
}

// New creates a new, empty frame enclosed by previous.
func New(previous scope.T) scope.T {
	return &T{
		previous: previous,
		T:        hash.New(),
	}
}

// Root creates a parentless frame with every primitive bound to its name.
func Root() scope.T {
	e := &T{T: hash.New()}

	for _, k := range commands.Names() {
		e.Set(k, builtin.New(k))
	}

	return e
}

// Define associates the name k with the cell v in the frame e.
// Enclosing frames are never modified. The value v is returned.
func (e *T) Define(k string, v cell.T) cell.T {
	e.Set(k, v)
	return v
}

// Enclosing returns the enclosing frame, or nil for a root frame.
func (e *T) Enclosing() scope.T {
	return e.previous
}

// Lookup retrieves the value bound to k in e or the nearest enclosing frame.
func (e *T) Lookup(k string) (cell.T, error) {
	if v, ok := e.Get(k); ok {
		return v, nil
	}

	if e.previous == nil {
		return nil, fault.New(fault.Unbound, "%s", k)
	}

	return e.previous.Lookup(k)
}

// Names returns every name visible from the frame e, sorted.
func (e *T) Names() []string {
	seen := map[string]struct{}{}
	for _, k := range e.T.Names() {
		seen[k] = struct{}{}
	}

	if e.previous != nil {
		for _, k := range e.previous.Names() {
			seen[k] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// The two functions below could be generated for each type.

// Is returns true if s is a *T.
func Is(s scope.T) bool {
	_, ok := s.(*T)
	return ok
}

// To returns a *T if s is a *T; Otherwise it returns nil and false.
func To(s scope.T) (*T, bool) {
	t, ok := s.(*T)
	return t, ok
}

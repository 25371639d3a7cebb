// Released under an MIT license. See LICENSE.

// Package sym provides the symbol type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

const name = "symbol"

// T (symbol) wraps Go's string type. Short and common strings are interned.
type T string

// New creates a symbol cell.
func New(v string) cell.T {
	p, ok := symtry(v)
	if !ok {
		if len(v) <= 3 {
			syml.Lock()
			defer syml.Unlock()

			if p, ok = sym[v]; ok {
				return p
			}
		}

		s := T(v)
		p = &s

		if len(v) <= 3 {
			sym[v] = p
		}
	}

	return p
}

// True is the value returned by predicates that succeed.
func True() cell.T {
	return New("t")
}

// The symbol type is a cell.

// Equal returns true if c is a symbol and wraps the same string.
func (s *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	return ok && *s == *o
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return string(*s)
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.Literal()
}

// Functions specific to sym.

// Cache caches the specified symbols to reduce allocations.
func Cache(symbols ...string) {
	syml.Lock()
	defer syml.Unlock()

	for _, v := range symbols {
		s := T(v)
		sym[v] = &s
	}
}

var (
	sym  = map[string]cell.T{} //nolint:gochecknoglobals
	syml = &sync.RWMutex{}     //nolint:gochecknoglobals
)

func symtry(v string) (p cell.T, ok bool) {
	syml.RLock()
	defer syml.RUnlock()

	p, ok = sym[v]

	return
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it returns a not a symbol fault.
func To(c cell.T) (*T, error) {
	if t, ok := c.(*T); ok {
		return t, nil
	}

	return nil, fault.New(fault.NotSymbol, "%s", literal.String(c))
}

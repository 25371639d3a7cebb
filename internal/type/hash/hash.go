// Released under an MIT license. See LICENSE.

// Package hash provides the name to value mapping used by environment frames.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (hash) maps names to values. The last value set for a name wins.
type T struct {
	m map[string]cell.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]cell.T{}}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *T) Get(k string) (cell.T, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Names returns the names in the hash h in sorted order.
func (h *T) Names() []string {
	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *T) Set(k string, v cell.T) {
	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	return len(h.m)
}

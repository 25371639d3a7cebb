// Released under an MIT license. See LICENSE.

// Package cell defines the interface satisfied by every Lisp value.
package cell

// T (cell) is a Lisp value: the empty list, a symbol, a number,
// a pair, a primitive or a closure.
type T interface {
	Equal(c T) bool
	Name() string
}

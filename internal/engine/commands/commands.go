// Released under an MIT license. See LICENSE.

// Package commands provides the table of primitive functions.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// Func is a native function. It receives its arguments as a proper list
// and is responsible for its own arity and type checking.
type Func func(cell.T) (cell.T, error)

var table map[string]Func //nolint:gochecknoglobals

// Functions returns a fresh copy of the primitive table.
func Functions() map[string]Func {
	return map[string]Func{
		"*":        mul,
		"+":        add,
		"-":        sub,
		"/":        div,
		"<":        lt,
		"=":        numeq,
		">":        gt,
		"car":      car,
		"cdr":      cdr,
		"cons":     cons,
		"eq?":      eq,
		"exit":     exit,
		"last":     last,
		"length":   length,
		"list":     makeList,
		"not":      not,
		"null?":    isNull,
		"pair?":    isCons,
		"reverse!": reverse,
		"set-car!": setCar,
		"set-cdr!": setCdr,
	}
}

// Lookup returns the native function registered as name.
func Lookup(name string) (Func, bool) {
	f, ok := table[name]
	return f, ok
}

// Names returns the name of every primitive, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func boolean(b bool) cell.T {
	if b {
		return sym.True()
	}

	return pair.Null
}

//nolint:gochecknoinits
func init() {
	table = Functions()
}

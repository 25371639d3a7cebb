// Released under an MIT license. See LICENSE.

// Package fault provides the error type returned by the reader and evaluator.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Internal Kind = iota
	Arity
	NotFunction
	NotList
	NotPair
	NotSymbol
	Syntax
	Type
	Unbound
)

// String returns the label used when reporting a fault of kind k.
func (k Kind) String() string {
	switch k {
	case Arity:
		return "arity mismatch"
	case NotFunction:
		return "not a function"
	case NotList:
		return "not a proper list"
	case NotPair:
		return "not a pair"
	case NotSymbol:
		return "not a symbol"
	case Syntax:
		return "syntax error"
	case Type:
		return "type error"
	case Unbound:
		return "unbound symbol"
	}

	return "internal error"
}

// T (fault) is an error of a particular kind.
type T struct {
	Kind    Kind
	Message string
}

type fault = T

// New creates a fault of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) error {
	return &fault{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Error returns the kind and message of the fault f.
func (f *fault) Error() string {
	if f.Message == "" {
		return f.Kind.String()
	}

	return f.Kind.String() + ": " + f.Message
}

// Is returns true if err is, or wraps, a fault of kind k.
func Is(err error, k Kind) bool {
	var f *fault
	if !errors.As(err, &f) {
		return false
	}

	return f.Kind == k
}

// Count creates an arity fault stating the expected and actual counts.
func Count(label string, expected string, actual int) error {
	if label != "" {
		label += ": "
	}

	return New(Arity, "%sexpected %s, passed %d", label, expected, actual)
}

// Plural returns n followed by label, pluralized with p when n is not 1.
func Plural(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Released under an MIT license. See LICENSE.

// Package num provides the floating-point number type.
package num

import (
	"errors"
	"math"
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

const name = "number"

// T (number) wraps Go's float64 type.
type T float64

// New creates a number cell.
func New(f float64) cell.T {
	n := T(f)
	return &n
}

// Finite creates a number cell if f is finite; Otherwise it returns a type fault.
func Finite(f float64) (cell.T, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fault.New(fault.Type, "%v is not a finite %s", f, name)
	}

	return New(f), nil
}

// Parse creates a number from the text s, if s is a valid number.
// Numbers start with a digit, optionally preceded by a sign or a
// decimal point, so names like "inf" and "-" remain symbols.
// Numeric text too large for a float64 returns ok and an error.
func Parse(s string) (c cell.T, ok bool, err error) {
	if !numeric(s) {
		return nil, false, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return nil, true, err
	} else if err != nil {
		return nil, false, nil
	}

	return New(f), true, nil
}

// The number type is a cell.

// Equal returns true if c is a number with exactly the same value as n.
func (n *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	return ok && *n == *o
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// The number type has a literal representation.

// Literal returns the literal representation of the number n.
// Integral values print without an exponent up to 1e21.
func (n *T) Literal() string {
	f := float64(*n)
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// The number type is a stringer.

// String returns the text of the number n.
func (n *T) String() string {
	return n.Literal()
}

// Functions specific to num.

// Value returns the float64 held by c or a type fault if c is not a number.
func Value(c cell.T) (float64, error) {
	n, err := To(c)
	if err != nil {
		return 0, err
	}

	return float64(*n), nil
}

func numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s != "" && s[0] == '.' {
		s = s[1:]
	}

	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it returns a type fault.
func To(c cell.T) (*T, error) {
	if n, ok := c.(*T); ok {
		return n, nil
	}

	return nil, fault.New(fault.Type, "%s is not a %s", literal.String(c), name)
}

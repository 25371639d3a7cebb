// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type and the empty list.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

const name = "cons"

// Null is the empty list. It is also used to mark the end of a list.
var Null cell.T = null{} //nolint:gochecknoglobals

// T (pair) is a cons cell. Pairs are shared by pointer so every value
// holding the same *T sees mutations made through any of them.
type T struct {
	car cell.T
	cdr cell.T
}

// The pair type is a cell.

// Equal returns true if c is a pair with elements that are equal to p's.
// The comparison does not terminate for circular lists.
func (p *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	for {
		if !p.car.Equal(o.car) {
			return false
		}

		pn, pok := p.cdr.(*T)
		on, ook := o.cdr.(*T)

		if !pok || !ook {
			return p.cdr.Equal(o.cdr)
		}

		p, o = pn, on
	}
}

// Name returns the name for a pair type.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal returns the literal representation of the pair p.
// An improper list shows its final cdr after " . ".
func (p *T) Literal() string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for {
		next, ok := tail.(*T)
		if !ok {
			break
		}

		b.WriteString(" ")
		b.WriteString(literal.String(next.car))

		tail = next.cdr
	}

	if tail != Null {
		b.WriteString(" . ")
		b.WriteString(literal.String(tail))
	}

	b.WriteString(")")

	return b.String()
}

// The pair type is a stringer.

// String returns the text representation of the pair p.
func (p *T) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of Null is Null.
func Car(c cell.T) (cell.T, error) {
	if c == Null {
		return Null, nil
	}

	p, err := To(c)
	if err != nil {
		return nil, err
	}

	return p.car, nil
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of Null is Null.
func Cdr(c cell.T) (cell.T, error) {
	if c == Null {
		return Null, nil
	}

	p, err := To(c)
	if err != nil {
		return nil, err
	}

	return p.cdr, nil
}

// Cadr returns the car of the cdr of c.
func Cadr(c cell.T) (cell.T, error) {
	t, err := Cdr(c)
	if err != nil {
		return nil, err
	}

	return Car(t)
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.T) cell.T {
	return &T{car: h, cdr: t}
}

// Is returns true if c is a pair. The empty list is not a pair.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// IsNull returns true if c is the Null cell.
func IsNull(c cell.T) bool {
	return c == Null
}

// SetCar sets the car/head/first of the pair c to value.
func SetCar(c, value cell.T) error {
	p, err := To(c)
	if err != nil {
		return err
	}

	p.car = value

	return nil
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
func SetCdr(c, value cell.T) error {
	p, err := To(c)
	if err != nil {
		return err
	}

	p.cdr = value

	return nil
}

// To returns a *T if c is a pair; Otherwise it returns a not a pair fault.
func To(c cell.T) (*T, error) {
	if p, ok := c.(*T); ok {
		return p, nil
	}

	return nil, fault.New(fault.NotPair, "%s", literal.String(c))
}

// The empty list.

type null struct{}

// Equal returns true if c is also the empty list.
func (null) Equal(c cell.T) bool {
	return c == Null
}

// Name returns the type name for the empty list.
func (null) Name() string {
	return "null"
}

// Literal returns the literal representation of the empty list.
func (null) Literal() string {
	return "()"
}

// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

// Each calls fn with every element of the proper list l, in order.
// Iteration stops at the first error returned by fn.
func Each(l cell.T, fn func(cell.T) error) error {
	for l != pair.Null {
		p, ok := l.(*pair.T)
		if !ok {
			return improper(l)
		}

		h, _ := pair.Car(p)
		if err := fn(h); err != nil {
			return err
		}

		l, _ = pair.Cdr(p)
	}

	return nil
}

// Last returns the car of the final pair in the proper list l.
// The list must be non-circular.
func Last(l cell.T) (cell.T, error) {
	if _, err := pair.To(l); err != nil {
		return nil, err
	}

	for {
		t, _ := pair.Cdr(l)
		if t == pair.Null {
			return pair.Car(l)
		}

		if !pair.Is(t) {
			return nil, improper(t)
		}

		l = t
	}
}

// Length returns the number of elements in the proper list l.
// The list must be non-circular.
func Length(l cell.T) (int, error) {
	n := 0

	for l != pair.Null {
		if !pair.Is(l) {
			return 0, improper(l)
		}

		n++

		l, _ = pair.Cdr(l)
	}

	return n, nil
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.T) cell.T {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Reverse destructively reverses the proper list l and returns the new head.
// Each cell's cdr is swapped with an accumulator so no cells are allocated.
// The list is checked before any cell is modified so an improper
// list is returned untouched along with the error.
// The list must be non-circular.
func Reverse(l cell.T) (cell.T, error) {
	if _, err := Length(l); err != nil {
		return l, err
	}

	reversed := pair.Null

	for l != pair.Null {
		next, _ := pair.Cdr(l)

		_ = pair.SetCdr(l, reversed)

		reversed, l = l, next
	}

	return reversed, nil
}

// Slice copies the elements of the proper list l into a Go slice.
func Slice(l cell.T) ([]cell.T, error) {
	s := []cell.T{}

	err := Each(l, func(c cell.T) error {
		s = append(s, c)
		return nil
	})

	return s, err
}

func improper(tail cell.T) error {
	return fault.New(fault.NotList, "improper tail %s", literal.String(tail))
}

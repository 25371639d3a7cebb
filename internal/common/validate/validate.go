// Released under an MIT license. See LICENSE.

// Package validate checks argument lists passed to primitives.
package validate

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

// Variadic returns at least min and at most max leading elements of actual
// and the remaining, unconsumed, list.
func Variadic(actual cell.T, min, max int) ([]cell.T, cell.T, error) {
	expected := make([]cell.T, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				return nil, nil, fault.Count("", atLeast(min, max), i)
			}

			break
		}

		p, err := pair.To(actual)
		if err != nil {
			return nil, nil, fault.New(fault.NotList, "argument list")
		}

		h, _ := pair.Car(p)
		expected = append(expected, h)

		actual, _ = pair.Cdr(p)
	}

	return expected, actual, nil
}

// Fixed returns between min and max elements of actual.
// Any additional elements are an arity fault.
func Fixed(actual cell.T, min, max int) ([]cell.T, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != pair.Null {
		n, err := list.Length(actual)
		if err != nil {
			return nil, err
		}

		return nil, fault.Count("", atMost(min, max), n)
	}

	return expected, nil
}

func atLeast(min, max int) string {
	s := fault.Plural(min, "argument", "s")
	if min != max {
		s = "at least " + s
	}

	return s
}

func atMost(min, max int) string {
	s := fault.Plural(max, "argument", "s")
	if min != max {
		s = "at most " + s
	}

	return s
}

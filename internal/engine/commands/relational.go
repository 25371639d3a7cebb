// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
)

func eq(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean(v[0].Equal(v[1])), nil
}

func gt(args cell.T) (cell.T, error) {
	return chain(args, func(a, b float64) bool { return a > b })
}

func lt(args cell.T) (cell.T, error) {
	return chain(args, func(a, b float64) bool { return a < b })
}

func numeq(args cell.T) (cell.T, error) {
	return chain(args, func(a, b float64) bool { return a == b })
}

// chain returns true if cmp holds for every adjacent pair of numbers.
// Every argument is type checked even after cmp fails.
func chain(args cell.T, cmp func(a, b float64) bool) (cell.T, error) {
	if _, _, err := validate.Variadic(args, 2, 2); err != nil {
		return nil, err
	}

	v, err := list.Slice(args)
	if err != nil {
		return nil, err
	}

	ok := true

	prev, err := num.Value(v[0])
	if err != nil {
		return nil, err
	}

	for _, c := range v[1:] {
		curr, err := num.Value(c)
		if err != nil {
			return nil, err
		}

		ok = ok && cmp(prev, curr)
		prev = curr
	}

	return boolean(ok), nil
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

func add(args cell.T) (cell.T, error) {
	sum := 0.0

	err := list.Each(args, func(c cell.T) error {
		f, err := num.Value(c)
		sum += f

		return err
	})
	if err != nil {
		return nil, err
	}

	return num.Finite(sum)
}

func div(args cell.T) (cell.T, error) {
	return fold(args, quotient, func(a float64) (float64, error) { return quotient(1, a) })
}

func mul(args cell.T) (cell.T, error) {
	product := 1.0

	err := list.Each(args, func(c cell.T) error {
		f, err := num.Value(c)
		product *= f

		return err
	})
	if err != nil {
		return nil, err
	}

	return num.Finite(product)
}

func sub(args cell.T) (cell.T, error) {
	return fold(args, func(a, b float64) (float64, error) {
		return a - b, nil
	}, func(a float64) (float64, error) {
		return -a, nil
	})
}

// fold applies op left to right over at least one number.
// A single number is passed to unary instead.
func fold(args cell.T, op func(a, b float64) (float64, error), unary func(float64) (float64, error)) (cell.T, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	acc, err := num.Value(v[0])
	if err != nil {
		return nil, err
	}

	if rest == pair.Null {
		acc, err = unary(acc)
		if err != nil {
			return nil, err
		}

		return num.Finite(acc)
	}

	err = list.Each(rest, func(c cell.T) error {
		f, err := num.Value(c)
		if err != nil {
			return err
		}

		acc, err = op(acc, f)

		return err
	})
	if err != nil {
		return nil, err
	}

	return num.Finite(acc)
}

func quotient(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fault.New(fault.Type, "division by zero")
	}

	return a / b, nil
}

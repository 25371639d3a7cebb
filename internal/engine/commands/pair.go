// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

func car(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return pair.Car(v[0])
}

func cdr(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return pair.Cdr(v[0])
}

func cons(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return pair.Cons(v[0], v[1]), nil
}

func isCons(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean(pair.Is(v[0])), nil
}

func isNull(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean(pair.IsNull(v[0])), nil
}

func setCar(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return v[1], pair.SetCar(v[0], v[1])
}

func setCdr(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return v[1], pair.SetCdr(v[0], v[1])
}

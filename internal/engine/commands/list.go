// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
)

func last(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return list.Last(v[0])
}

func length(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	n, err := list.Length(v[0])
	if err != nil {
		return nil, err
	}

	return num.New(float64(n)), nil
}

// The evaluator builds a fresh argument list for every call so
// returning it as is does not expose the caller's structure.
func makeList(args cell.T) (cell.T, error) {
	return args, nil
}

func reverse(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return list.Reverse(v[0])
}

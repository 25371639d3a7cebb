// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/type/closure"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

type form func(operands cell.T, s scope.T) (cell.T, error)

// special returns the rule for the special form called name, or nil.
func special(name string) form {
	switch name {
	case "begin":
		return begin
	case "define":
		return define
	case "if":
		return branch
	case "lambda":
		return lambda
	case "quote":
		return quote
	}

	return nil
}

func begin(operands cell.T, s scope.T) (cell.T, error) {
	v, err := list.Slice(operands)
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return nil, fault.Count("begin", "at least 1 expression", 0)
	}

	var r cell.T

	for _, c := range v {
		r, err = Eval(c, s)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

func branch(operands cell.T, s scope.T) (cell.T, error) {
	v, err := shape("if", operands, 3)
	if err != nil {
		return nil, err
	}

	test, err := Eval(v[0], s)
	if err != nil {
		return nil, err
	}

	if test != pair.Null {
		return Eval(v[1], s)
	}

	return Eval(v[2], s)
}

func define(operands cell.T, s scope.T) (cell.T, error) {
	v, err := shape("define", operands, 2)
	if err != nil {
		return nil, err
	}

	k, err := sym.To(v[0])
	if err != nil {
		return nil, err
	}

	value, err := Eval(v[1], s)
	if err != nil {
		return nil, err
	}

	return s.Define(k.String(), value), nil
}

func lambda(operands cell.T, s scope.T) (cell.T, error) {
	v, err := shape("lambda", operands, 2)
	if err != nil {
		return nil, err
	}

	err = list.Each(v[0], func(c cell.T) error {
		_, err := sym.To(c)
		return err
	})
	if err != nil {
		return nil, err
	}

	return closure.New(v[0], v[1], s), nil
}

func quote(operands cell.T, _ scope.T) (cell.T, error) {
	v, err := shape("quote", operands, 1)
	if err != nil {
		return nil, err
	}

	return v[0], nil
}

// shape returns the operands of a form that takes exactly n of them.
func shape(name string, operands cell.T, n int) ([]cell.T, error) {
	v, err := list.Slice(operands)
	if err != nil {
		return nil, err
	}

	if len(v) != n {
		return nil, fault.Count(name, fault.Plural(n, "operand", "s"), len(v))
	}

	return v, nil
}

// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/type/builtin"
	"github.com/michaelmacinnis/lisp/internal/type/closure"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// Eval evaluates the expression c in the scope s.
// Everything other than symbols and pairs evaluates to itself.
func Eval(c cell.T, s scope.T) (cell.T, error) {
	switch t := c.(type) {
	case *sym.T:
		return s.Lookup(t.String())
	case *pair.T:
		return combination(t, s)
	}

	return c, nil
}

// Apply calls the function f with the proper list of arguments args.
func Apply(f, args cell.T) (cell.T, error) {
	switch t := f.(type) {
	case *closure.T:
		return call(t, args)
	case *builtin.T:
		fn, ok := commands.Lookup(t.String())
		if !ok {
			return nil, fault.New(fault.Internal, "no primitive named %s", t.String())
		}

		return fn(args)
	}

	return nil, fault.New(fault.NotFunction, "%s", literal.String(f))
}

func call(c *closure.T, args cell.T) (cell.T, error) {
	expected, err := list.Length(c.Params)
	if err != nil {
		return nil, err
	}

	actual, err := list.Length(args)
	if err != nil {
		return nil, err
	}

	if actual != expected {
		return nil, fault.Count("", fault.Plural(expected, "argument", "s"), actual)
	}

	frame := env.New(c.Scope)

	for params := c.Params; params != pair.Null; {
		k, err := sym.To(car(params))
		if err != nil {
			return nil, err
		}

		frame.Define(k.String(), car(args))

		params, args = cdr(params), cdr(args)
	}

	return Eval(c.Body, frame)
}

// combination evaluates a special form or a function call.
func combination(p *pair.T, s scope.T) (cell.T, error) {
	head, operands := car(p), cdr(p)

	if k, ok := head.(*sym.T); ok {
		if form := special(k.String()); form != nil {
			return form(operands, s)
		}
	}

	f, err := Eval(head, s)
	if err != nil {
		return nil, err
	}

	args, err := evalArgs(operands, s)
	if err != nil {
		return nil, err
	}

	return Apply(f, args)
}

// evalArgs evaluates each operand left to right. The results are consed
// onto the front of a fresh list and then reversed in place.
func evalArgs(operands cell.T, s scope.T) (cell.T, error) {
	if _, err := list.Length(operands); err != nil {
		return nil, err
	}

	args := pair.Null

	err := list.Each(operands, func(c cell.T) error {
		v, err := Eval(c, s)
		if err != nil {
			return err
		}

		args = pair.Cons(v, args)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return list.Reverse(args)
}

// The callers below have already established that c is a pair or Null.

func car(c cell.T) cell.T {
	v, _ := pair.Car(c)
	return v
}

func cdr(c cell.T) cell.T {
	v, _ := pair.Cdr(c)
	return v
}

// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed Lisp code.
package engine

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/type/env"
)

// T (engine) is a facade in front of the machinery for evaluating code.
// It holds the root scope so definitions persist across top-level forms.
type T struct {
	root  scope.T
	trace io.Writer
}

// New creates a new T with a fresh root scope holding the primitives
// and the procedures defined by the boot script.
func New() *T {
	root := env.Root()

	err := reader.Each("boot", boot.Script(), func(c cell.T) error {
		_, err := Eval(c, root)
		return err
	})
	if err != nil {
		// Error in the boot script. This should never happen.
		panic(err.Error())
	}

	return &T{root: root}
}

// Evaluate evaluates the top-level form c in the root scope.
func (e *T) Evaluate(c cell.T) (cell.T, error) {
	if e.trace != nil {
		fmt.Fprintf(e.trace, "eval: %s\n", literal.String(c))
	}

	v, err := Eval(c, e.root)

	if e.trace != nil {
		if err != nil {
			fmt.Fprintf(e.trace, "fail: %v\n", err)
		} else {
			fmt.Fprintf(e.trace, "done: %s\n", literal.String(v))
		}
	}

	return v, err
}

// Scope returns the root scope.
func (e *T) Scope() scope.T {
	return e.root
}

// Trace writes a line to w before and after each top-level evaluation.
// A nil writer disables tracing.
func (e *T) Trace(w io.Writer) {
	e.trace = w
}

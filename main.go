// Released under an MIT license. See LICENSE.

/*
Lisp is a small interpreter for a Scheme-like language. It has numbers,
symbols, pairs and closures, and the special forms quote, if, define,
lambda and begin:

    (define fact (lambda (n) (if (< n 2) 1 (* n (fact (- n 1))))))
    (fact 10)
    '(1 2 . 3)
    (reverse! (list 1 2 3))

Run without operands from a terminal, lisp starts a line editor.
Otherwise it evaluates a script, the expressions passed with -c, or
the expressions read from stdin, printing the value of each.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New()
	if options.Debug() {
		e.Trace(os.Stderr)
	}

	if err := run(e, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(e *engine.T, stdin io.Reader, stdout io.Writer) error {
	if c := options.Command(); c != "" {
		return ui.Source(e, "-c", strings.NewReader(c), stdout)
	}

	if s := options.Script(); s != "" {
		f, err := os.Open(s)
		if err != nil {
			return err
		}
		defer f.Close()

		return ui.Source(e, s, f, stdout)
	}

	if options.Interactive() {
		return ui.Run(e)
	}

	return ui.Source(e, "stdin", stdin, stdout)
}

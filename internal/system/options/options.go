// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lisp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	script      string
	usage       = `lisp

Usage:
  lisp [-d] SCRIPT
  lisp [-d] -c COMMAND
  lisp [-di]
  lisp -h
  lisp -v

Arguments:
  SCRIPT  Path to a file of expressions to evaluate.

Options:
  -c, --command=COMMAND  Evaluate the specified expressions.
  -d, --debug            Trace top-level evaluation on stderr.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print lisp version.

If lisp's stdin is a TTY and lisp was invoked with no operands, the
interactive line editor is enabled. Otherwise, expressions are read
from stdin and the value of each is printed.
`
)

// Command returns the expressions passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if evaluation should be traced.
func Debug() bool {
	return debug
}

// Interactive returns true if the line editor should be used.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	apply(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to evaluate, if any.
func Script() string {
	return script
}

func apply(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	debug, _ = opts.Bool("--debug")

	interactive = command == "" && script == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the interpreter.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(c cell.T) (cell.T, error)
	Scope() scope.T
}

// Run launches the line editor which sends expressions to the Evaluator.
// An error from one expression is reported and the session continues.
func Run(e Evaluator) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		cli.Close()
		return err
	}

	if err := history.Load(cli.ReadHistory); err != nil {
		report(err)
	}

	done := func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			report(err)
		}

		cli.Close()
	}

	exit := commands.Exit
	commands.Exit = func(status int) {
		done()
		exit(status)
	}

	defer func() {
		commands.Exit = exit
		done()
	}()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Scope()))

start:
	restart := false
	partial := false
	quit := false

	l := lexer.New("lisp")

	p := parser.New(func(c cell.T) {
		partial = false

		v, err := e.Evaluate(c)
		if err != nil {
			report(err)
			return
		}

		fmt.Println(literal.String(v))
	}, func() *token.T {
		for {
			t := l.Token()
			if t != nil {
				partial = true
				return t
			}

			prompt := "> "
			if partial {
				prompt = ". "
			}

			if merr := uncooked.ApplyMode(); merr != nil {
				report(merr)
				return nil
			}

			line, err := cli.Prompt(prompt)

			if merr := cooked.ApplyMode(); merr != nil {
				report(merr)
				return nil
			}

			switch err {
			case nil:
				if strings.TrimSpace(line) != "" {
					cli.AppendHistory(line)
				}
			case liner.ErrPromptAborted:
				restart = true
				return nil
			default:
				quit = true
				return nil
			}

			l.Scan(line + "\n")
		}
	})

	err = p.Parse()

	if quit {
		os.Stdout.WriteString("exit\n")
		return nil
	}

	if err != nil && !restart {
		report(err)

		// Discard the rest of the input and start afresh.
		restart = true
	}

	if restart {
		goto start
	}

	return nil
}

// Source evaluates every expression read from r, writing each value to w.
// It stops at the first error.
func Source(e Evaluator, name string, r io.Reader, w io.Writer) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return reader.Each(name, string(b), func(c cell.T) error {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, literal.String(v))

		return err
	})
}

// completer completes the word under the cursor with names visible in s.
func completer(s scope.T) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		start := strings.LastIndexAny(line[:pos], " \t()'") + 1

		head = line[:start]
		tail = line[pos:]
		prefix := line[start:pos]

		for _, k := range s.Names() {
			if strings.HasPrefix(k, prefix) {
				completions = append(completions, k)
			}
		}

		sort.Strings(completions)

		return
	}
}

func report(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
}

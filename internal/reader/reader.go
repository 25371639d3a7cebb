// Released under an MIT license. See LICENSE.

// Package reader encapsulates the lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
)

// Each parses text and calls fn with every complete datum, in order.
// It stops at the first syntax error or the first error returned by fn.
func Each(name, text string, fn func(cell.T) error) error {
	l := lexer.New(name)
	l.Scan(text + "\n")

	var err error

	p := parser.New(func(c cell.T) {
		if err == nil {
			err = fn(c)
		}
	}, func() *token.T {
		if err != nil {
			return nil
		}

		return l.Token()
	})

	if perr := p.Parse(); perr != nil {
		return perr
	}

	return err
}

// Read parses every datum in text.
func Read(name, text string) ([]cell.T, error) {
	data := []cell.T{}

	err := Each(name, text, func(c cell.T) error {
		data = append(data, c)
		return nil
	})

	return data, err
}

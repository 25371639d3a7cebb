// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for s-expressions.
package parser

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.T)    // Function to call to emit a parsed datum.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
// The producer returns nil when there is no more input.
func New(emit func(cell.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// Parsing stops at the first syntax error.
func (p *T) Parse() error {
	for t := p.peek(); t != nil; t = p.peek() {
		c, err := p.datum()
		if err != nil {
			return err
		}

		p.emit(c)
	}

	return nil
}

func (p *T) consume() *token.T {
	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) datum() (cell.T, error) {
	t := p.consume()

	switch {
	case t.Is('('):
		return p.list(t)
	case t.Is('\''):
		if p.peek() == nil {
			return nil, incomplete(t)
		}

		c, err := p.datum()
		if err != nil {
			return nil, err
		}

		return list.New(sym.New("quote"), c), nil
	case t.Is(')', '.'):
		return nil, unexpected(t)
	}

	n, ok, err := num.Parse(t.Value())
	if err != nil {
		return nil, fault.New(fault.Syntax, "%s: number out of range '%s'", t.Source(), t.Value())
	} else if ok {
		return n, nil
	}

	return sym.New(t.Value()), nil
}

func (p *T) list(open *token.T) (cell.T, error) {
	elements := []cell.T{}
	tail := pair.Null

	for {
		t := p.peek()

		switch {
		case t == nil:
			return nil, incomplete(open)
		case t.Is(')'):
			p.consume()

			return build(elements, tail), nil
		case t.Is('.'):
			if len(elements) == 0 {
				return nil, unexpected(t)
			}

			p.consume()

			if p.peek() == nil {
				return nil, incomplete(open)
			}

			c, err := p.datum()
			if err != nil {
				return nil, err
			}

			tail = c

			closing := p.peek()
			if closing == nil {
				return nil, incomplete(open)
			}

			if !closing.Is(')') {
				return nil, unexpected(closing)
			}

			p.consume()

			return build(elements, tail), nil
		}

		c, err := p.datum()
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		if p.token != nil {
			p.ahead = 1
		}
	}

	return p.token
}

func build(elements []cell.T, tail cell.T) cell.T {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

func incomplete(t *token.T) error {
	return fault.New(fault.Syntax, "%s: unexpected end of input after '%s'", t.Source(), t.Value())
}

func unexpected(t *token.T) error {
	return fault.New(fault.Syntax, "%s: unexpected '%s'", t.Source(), t.Value())
}

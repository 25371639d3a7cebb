package parser

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

func parse(t *testing.T, s string) string {
	l := lexer.New("test")

	l.Scan(s)

	p := ""
	err := New(func(c cell.T) {
		p += literal.String(c) + "\n"
	}, l.Token).Parse()
	if err != nil {
		t.Fatalf("Parsing %q failed: %v", s, err)
	}

	return p
}

// check parses s, prints the result, and reparses the printed text.
func check(t *testing.T, s, expected string) {
	p := parse(t, s)
	if p != expected {
		t.Fatalf("Parsed %q as %q; expected %q", s, p, expected)
	}

	r := parse(t, p)
	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func TestDottedPair(t *testing.T) {
	check(t, "(a . b)\n", "(a . b)\n")
	check(t, "(1 2 . 3)\n", "(1 2 . 3)\n")
	check(t, "(1 . (2 3))\n", "(1 2 3)\n")
}

func TestEmpty(t *testing.T) {
	check(t, "()\n", "()\n")
	check(t, "(() ())\n", "(() ())\n")
}

func TestNested(t *testing.T) {
	check(t, "(begin (define r 10) (* pi (* r r)))\n",
		"(begin (define r 10) (* pi (* r r)))\n")
}

func TestNumbers(t *testing.T) {
	check(t, "(1 -2 3.5 .25 +4 1e3)\n", "(1 -2 3.5 0.25 4 1000)\n")
}

func TestQuote(t *testing.T) {
	check(t, "'x\n", "(quote x)\n")
	check(t, "'(a 'b)\n", "(quote (a (quote b)))\n")
}

func TestSymbols(t *testing.T) {
	check(t, "(+ - inf set-car! null?)\n", "(+ - inf set-car! null?)\n")
}

func TestStructure(t *testing.T) {
	l := lexer.New("test")
	l.Scan("(x 1)\n")

	var got cell.T

	err := New(func(c cell.T) { got = c }, l.Token).Parse()
	if err != nil {
		t.Fatal(err)
	}

	h, _ := pair.Car(got)
	if !sym.Is(h) {
		t.Fatalf("Expected a symbol; got %s", h.Name())
	}

	n, _ := pair.Cadr(got)
	if !num.Is(n) || !n.Equal(num.New(1)) {
		t.Fatalf("Expected the number 1; got %s", literal.String(n))
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, s := range []string{
		")\n",
		"(. a)\n",
		"(a . b c)\n",
		"(a\n",
		"'\n",
		"(1e400)\n",
	} {
		l := lexer.New("test")
		l.Scan(s)

		err := New(func(cell.T) {}, l.Token).Parse()
		if !fault.Is(err, fault.Syntax) {
			t.Fatalf("Expected a syntax error for %q; got %v", s, err)
		}
	}
}

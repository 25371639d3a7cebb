package engine

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/type/builtin"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// run evaluates each datum in s and returns the value of the last one.
func run(e *T, s string) (cell.T, error) {
	var v cell.T

	err := reader.Each("test", s, func(c cell.T) error {
		var err error
		v, err = e.Evaluate(c)

		return err
	})

	return v, err
}

func expect(t *testing.T, s, expected string) {
	t.Helper()

	v, err := run(New(), s)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", s, err)
	}

	if actual := literal.String(v); actual != expected {
		t.Fatalf("%s: expected %s; got %s", s, expected, actual)
	}
}

func failure(t *testing.T, s string, k fault.Kind) error {
	t.Helper()

	_, err := run(New(), s)
	if !fault.Is(err, k) {
		t.Fatalf("%s: expected %v; got %v", s, k, err)
	}

	return err
}

func TestArgumentsInOrder(t *testing.T) {
	expect(t, "(list 1 2 3)", "(1 2 3)")
	expect(t, "(- 10 1 2)", "7")
	expect(t, "(list (define a 1) (define a 2)) a", "2")
}

func TestArity(t *testing.T) {
	err := failure(t, `
(define x (lambda (a b) (+ a b)))
(x 1 2 3)`, fault.Arity)

	if !strings.Contains(err.Error(), "expected 2 arguments, passed 3") {
		t.Fatalf("Expected counts in %q", err.Error())
	}

	failure(t, "((lambda () 1) 1)", fault.Arity)
	failure(t, "(car)", fault.Arity)
	failure(t, "(cons 1)", fault.Arity)
}

func TestBegin(t *testing.T) {
	expect(t, "(begin 1 2 3)", "3")
	expect(t, "(begin (define r 10) r)", "10")

	failure(t, "(begin)", fault.Arity)
}

func TestCircleArea(t *testing.T) {
	v, err := run(New(), "(begin (define r 10) (* 3.14 (* r r)))")
	if err != nil {
		t.Fatal(err)
	}

	f, err := num.Value(v)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(f-314) > 1e-9 {
		t.Fatalf("Expected 314; got %v", f)
	}
}

func TestClosureCapture(t *testing.T) {
	expect(t, "(begin (define mk (lambda (n) (lambda () n))) (define f (mk 5)) (f))", "5")

	// Frames are shared, not copied.
	expect(t, `
(define g (lambda () y))
(define y 3)
(g)`, "3")

	// Each application gets its own frame.
	expect(t, `
(define mk (lambda (n) (lambda () n)))
(define a (mk 1))
(define b (mk 2))
(list (a) (b))`, "(1 2)")
}

func TestDefine(t *testing.T) {
	expect(t, "(define x 7)", "7")
	expect(t, "(define x 7) (define x 8) x", "8")

	failure(t, "(define 1 2)", fault.NotSymbol)
	failure(t, "(define x)", fault.Arity)

	// Definitions in a closure body stay in the call's frame.
	failure(t, `
(define h (lambda (a) (define z a)))
(h 1)
z`, fault.Unbound)
}

func TestDefineAndCall(t *testing.T) {
	expect(t, "(define x (lambda (a b) (+ a b))) (x 3 4)", "7")
}

func TestIf(t *testing.T) {
	expect(t, "(if () 1 2)", "2")
	expect(t, "(if 0 1 2)", "1")
	expect(t, "(if (quote ()) 1 2)", "2")
	expect(t, "(if (< 1 2) (quote yes) (quote no))", "yes")

	// Only the selected branch is evaluated.
	expect(t, "(if () undefined 2)", "2")
	expect(t, "(if 1 2 undefined)", "2")

	failure(t, "(if 1 2)", fault.Arity)
}

func TestImproperArguments(t *testing.T) {
	failure(t, "(+ 1 . 2)", fault.NotList)
}

func TestLambdaParams(t *testing.T) {
	failure(t, "(lambda (a 1) a)", fault.NotSymbol)
	failure(t, "(lambda (a . b) a)", fault.NotList)
}

func TestNotAFunction(t *testing.T) {
	failure(t, "(1 2)", fault.NotFunction)
	failure(t, "((quote a) 2)", fault.NotFunction)
}

func TestQuote(t *testing.T) {
	expect(t, "(quote undefined_var)", "undefined_var")
	expect(t, "(quote (a (b . c)))", "(a (b . c))")
	expect(t, "'(1 2)", "(1 2)")

	failure(t, "(quote a b)", fault.Arity)
}

func TestRecursion(t *testing.T) {
	expect(t, `
(define fact (lambda (n) (if (< n 2) 1 (* n (fact (- n 1))))))
(fact 10)`, "3628800")
}

func TestSelfEvaluating(t *testing.T) {
	s := env.Root()

	for _, c := range []cell.T{
		pair.Null,
		num.New(1.5),
		builtin.New("+"),
	} {
		v, err := Eval(c, s)
		if err != nil {
			t.Fatal(err)
		}

		if v != c {
			t.Fatalf("Expected %s to evaluate to itself", literal.String(c))
		}
	}
}

func TestSharedStructure(t *testing.T) {
	expect(t, `
(define l (list 1 2))
(define m l)
(set-car! m 9)
(car l)`, "9")

	expect(t, `
(define l (list 1 2 3))
(define r (reverse! l))
(list r l)`, "((3 2 1) (1))")
}

func TestSpecialFormsCannotBeShadowed(t *testing.T) {
	expect(t, "(define quote 1) (quote x)", "x")
}

func TestTrace(t *testing.T) {
	e := New()

	var b bytes.Buffer

	e.Trace(&b)

	_, err := e.Evaluate(pair.Cons(sym.New("+"), pair.Cons(num.New(1), pair.Null)))
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "eval: (+ 1)\ndone: 1\n" {
		t.Fatalf("Unexpected trace %q", b.String())
	}
}

func TestUnbound(t *testing.T) {
	_, err := Eval(sym.New("undefined_var"), env.Root())
	if !fault.Is(err, fault.Unbound) {
		t.Fatalf("Expected unbound symbol; got %v", err)
	}

	if !strings.Contains(err.Error(), "undefined_var") {
		t.Fatalf("Expected name in %q", err.Error())
	}
}

func TestBootProcedures(t *testing.T) {
	expect(t, "(map abs '(-1 2 -3))", "(1 2 3)")
	expect(t, "(append '(1 2) '(3))", "(1 2 3)")
	expect(t, "(filter (lambda (n) (> n 1)) '(1 2 3))", "(2 3)")
	expect(t, "(foldl + 0 '(1 2 3 4))", "10")
	expect(t, "(cadr '(1 2 3))", "2")
	expect(t, "(>= 2 2)", "t")
	expect(t, "(<= 3 2)", "()")
}

func TestNumbersStayFinite(t *testing.T) {
	failure(t, "(/ 1 0)", fault.Type)
	failure(t, "(/ (- 1 1) 0)", fault.Type)
	failure(t, "(* 1e300 1e300)", fault.Type)
	failure(t, "'(1e400)", fault.Syntax)

	expect(t, "(list 1e308 -0.5 (/ 1 4))", "(1e+308 -0.5 0.25)")
}

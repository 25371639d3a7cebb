package fault

import (
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := New(Unbound, "%s", "x")

	if !Is(err, Unbound) || Is(err, Arity) {
		t.Fatal("Expected only Unbound to match")
	}

	if !Is(fmt.Errorf("wrapped: %w", err), Unbound) {
		t.Fatal("Expected wrapped faults to match")
	}

	if Is(fmt.Errorf("plain"), Internal) {
		t.Fatal("Expected non-faults not to match")
	}
}

func TestMessages(t *testing.T) {
	for _, tc := range []struct {
		err      error
		expected string
	}{
		{New(Unbound, "x"), "unbound symbol: x"},
		{New(NotFunction, ""), "not a function"},
		{Count("", Plural(2, "argument", "s"), 3), "arity mismatch: expected 2 arguments, passed 3"},
		{Count("if", Plural(1, "operand", "s"), 2), "arity mismatch: if: expected 1 operand, passed 2"},
	} {
		if tc.err.Error() != tc.expected {
			t.Fatalf("Expected %q; got %q", tc.expected, tc.err.Error())
		}
	}
}

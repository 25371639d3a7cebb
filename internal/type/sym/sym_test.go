package sym

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/type/num"
)

func TestEqual(t *testing.T) {
	if !New("abcdef").Equal(New("abcdef")) {
		t.Fatal("Expected symbols with the same name to be equal")
	}

	if New("a").Equal(New("b")) {
		t.Fatal("Expected different symbols to differ")
	}
}

func TestInterned(t *testing.T) {
	if New("t") != New("t") {
		t.Fatal("Expected short symbols to be interned")
	}
}

func TestTo(t *testing.T) {
	if _, err := To(num.New(1)); !fault.Is(err, fault.NotSymbol) {
		t.Fatalf("Expected not a symbol; got %v", err)
	}
}

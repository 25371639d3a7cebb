package history

import (
	"bytes"
	"io"
	"testing"
)

func home(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
}

func save(t *testing.T, s string) {
	t.Helper()

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, s)
	})
	if err != nil {
		t.Fatal(err)
	}
}

func load(t *testing.T) string {
	t.Helper()

	var b bytes.Buffer

	err := Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)
		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	return b.String()
}

func TestMissingFile(t *testing.T) {
	home(t)

	if s := load(t); s != "" {
		t.Fatalf("Expected no history; got %q", s)
	}
}

func TestSaveTruncates(t *testing.T) {
	home(t)

	save(t, "(define x 1)\n(x)\n")
	save(t, "x\n")

	if s := load(t); s != "x\n" {
		t.Fatalf("Expected %q; got %q", "x\n", s)
	}
}

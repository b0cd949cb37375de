package reader

import (
	"testing"

	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
)

func TestIncremental(t *testing.T) {
	r := New("test")

	forms, err := r.Scan("(def x\n")
	if err != nil {
		t.Fatal(err)
	}

	if len(forms) != 0 || !r.Pending() {
		t.Fatalf("Expected an unfinished form; got %v", forms)
	}

	forms, err = r.Scan("  \"a (b\") 'y\n")
	if err != nil {
		t.Fatal(err)
	}

	if len(forms) != 2 || r.Pending() {
		t.Fatalf("Expected two forms and nothing pending; got %d", len(forms))
	}

	if s := literal.String(forms[0]); s != `(def x "a (b")` {
		t.Fatalf("Unexpected first form %s", s)
	}

	if s := literal.String(forms[1]); s != `(quote y)` {
		t.Fatalf("Unexpected second form %s", s)
	}
}

func TestLocationAfterPending(t *testing.T) {
	r := New("test")

	if _, err := r.Scan("1\n(\n"); err != nil {
		t.Fatal(err)
	}

	_, err := r.Scan(")\n)\n")
	if err == nil {
		t.Fatal("Expected an error for the unmatched ')'")
	}

	if e := "test:4:1: unexpected ')'"; err.Error() != e {
		t.Fatalf("Expected %q; got %q", e, err.Error())
	}

	if r.Pending() {
		t.Fatal("Expected nothing pending after an error")
	}
}

func TestReadString(t *testing.T) {
	forms, err := ReadString("test", "(a . b) ; comment\n:k")
	if err != nil {
		t.Fatal(err)
	}

	if len(forms) != 2 {
		t.Fatalf("Expected 2 forms; got %d", len(forms))
	}

	if _, err := ReadString("test", "(a"); err == nil {
		t.Fatal("Expected an error for an unfinished form")
	}
}

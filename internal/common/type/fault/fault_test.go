package fault

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/vau/internal/common/type/str"
)

func TestFromMismatch(t *testing.T) {
	var r interface{}

	func() {
		defer func() {
			r = recover()
		}()

		str.To(New("not a string"))
	}()

	f := From(r)
	if !f.IsKind(TypeError) {
		t.Fatalf("Expected a type-error; got %s", f.Literal())
	}

	e, ok := f.SlotValue("expected-type")
	if !ok || !e.Equal(str.New("string")) {
		t.Fatalf("Expected the expected-type to be the string \"string\"; got %v", e)
	}
}

func TestSlotsHoldStrings(t *testing.T) {
	f := Type(str.New("x"), "cons")

	m, ok := f.SlotValue("message")
	if !ok || !str.Is(m) {
		t.Fatalf("Expected the message to be a string; got %v", m)
	}

	if !str.New(f.Message()).Equal(m) || !m.Equal(str.New(f.Message())) {
		t.Fatal("Expected the message to equal a string with the same text")
	}

	if _, ok := f.SlotValue("missing"); ok {
		t.Fatal("Expected an unknown slot to be unbound")
	}

	p := Escalate(f)

	var c *T
	if !errors.As(p, &c) || c != f {
		t.Fatal("Expected the panic to unwrap to its condition")
	}
}

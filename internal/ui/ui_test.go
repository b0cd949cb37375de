package ui

import (
	"testing"
)

func TestCompleter(t *testing.T) {
	complete := Completer(func() []string {
		return []string{"%car", "%cdr", "car", "catch", "cdr"}
	})

	h, cs, tl := complete("(list (ca x)", 9)

	if h != "(list (" || tl != " x)" {
		t.Fatalf("Unexpected head %q or tail %q", h, tl)
	}

	if len(cs) != 2 || cs[0] != "car" || cs[1] != "catch" {
		t.Fatalf("Expected car and catch; got %v", cs)
	}

	if _, cs, _ := complete("(", 1); len(cs) != 0 {
		t.Fatalf("Expected no completions without a prefix; got %v", cs)
	}
}

package parser

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/struct/loc"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/engine/boot"
	"github.com/michaelmacinnis/vau/internal/reader/lexer"
)

func parse(t *testing.T, s string) []cell.I {
	t.Helper()

	p := New(lexer.New(loc.T{Char: 1, Line: 1, Name: "test"}, s).Tokens())

	forms := []cell.I{}

	for {
		c, err := p.Parse()
		if err != nil {
			t.Fatalf("Parsing %q: %v", s, err)
		}

		if c == nil {
			return forms
		}

		forms = append(forms, c)
	}
}

func show(forms []cell.I) string {
	s := ""
	for _, c := range forms {
		s += literal.String(c) + "\n"
	}

	return s
}

// Printing what was parsed and parsing it again should give the same forms.
func check(t *testing.T, s string) {
	t.Helper()

	p := show(parse(t, s))
	r := show(parse(t, p))

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func TestAtoms(t *testing.T) {
	for s, e := range map[string]string{
		`#'car`:        `#'car`,
		`#^cons`:       `#^cons`,
		`#f`:           `#f`,
		`#ignore`:      `#ignore`,
		`#nil`:         `()`,
		`#t`:           `#t`,
		`#void`:        `#void`,
		`"a\tb"`:       `"a\tb"`,
		`'x`:           `(quote x)`,
		`()`:           `()`,
		`(a . b)`:      `(a . b)`,
		`(a b . (c))`:  `(a b c)`,
		`-12`:          `-12`,
		`1.5`:          `1.5`,
		`:key`:         `:key`,
		`|two words|`:  `|two words|`,
		`123456789012345678901234567890`: `123456789012345678901234567890`,
	} {
		forms := parse(t, s)
		if len(forms) != 1 {
			t.Fatalf("Expected one form for %q; got %d", s, len(forms))
		}

		if a := literal.String(forms[0]); a != e {
			t.Fatalf("Expected %q to print as %s; got %s", s, e, a)
		}
	}
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestErrors(t *testing.T) {
	for _, s := range []string{")", "(. a)", "(a . b c)", "#bogus", `"\q"`} {
		p := New(lexer.New(loc.T{Char: 1, Line: 1, Name: "test"}, s).Tokens())

		_, err := p.Parse()
		if err == nil || errors.Is(err, ErrIncomplete) {
			t.Fatalf("Expected an error parsing %q; got %v", s, err)
		}
	}
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{"(a (b)", "'", `("abc`, "(a .", "(a . b"} {
		p := New(lexer.New(loc.T{Char: 1, Line: 1, Name: "test"}, s).Tokens())

		_, err := p.Parse()
		if !errors.Is(err, ErrIncomplete) {
			t.Fatalf("Expected %q to be incomplete; got %v", s, err)
		}

		if off, ok := p.Offset(); !ok || off != 0 {
			t.Fatalf("Expected nothing consumed for %q; got %d", s, off)
		}
	}
}

func TestNil(t *testing.T) {
	forms := parse(t, "() #nil")

	if forms[0] != pair.Null || forms[1] != pair.Null {
		t.Fatalf("Expected the empty list; got %v", forms)
	}
}

// Released under an MIT license. See LICENSE.

// Package str provides vau's string type.
package str

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the double-quoted representation of the str s.
func (s *str) Literal() string {
	return Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Mismatch is raised by To when a cell is not a str. The fault package
// converts it to a type-error when it is recovered.
type Mismatch struct {
	datum cell.I
}

// Datum returns the cell that was not a str.
func (m *Mismatch) Datum() cell.I {
	return m.datum
}

// Error returns a description of the mismatch.
func (m *Mismatch) Error() string {
	return "type error: " + literal.String(m.datum) + " is not a " + name
}

// Expected returns the name of the str type.
func (m *Mismatch) Expected() string {
	return name
}

// Quote returns v double-quoted with any special characters escaped.
func Quote(v string) string {
	q := adapted.CanonicalString(v)

	// Strip the $'...' wrapper. Single quotes need no escape between
	// double quotes but double quotes do.
	q = q[2 : len(q)-1]
	q = strings.ReplaceAll(q, `\'`, `'`)
	q = strings.ReplaceAll(q, `"`, `\"`)

	return `"` + q + `"`
}

// Unquote converts the body of a double-quoted string to its actual bytes.
func Unquote(v string) (string, error) {
	return adapted.ActualBytes(v)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = fmt.Stringer(&t)

	// A mismatch is an error.
	_ = error(&Mismatch{})
}

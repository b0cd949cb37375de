// Released under an MIT license. See LICENSE.

// Package pair provides vau's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
// The structure must be acyclic.
func (p *pair) Equal(c cell.I) bool {
	for {
		if cell.I(p) == Null || c == Null {
			return cell.I(p) == c
		}

		q, ok := c.(*pair)
		if !ok || !p.car.Equal(q.car) {
			return false
		}

		next, ok := p.cdr.(*pair)
		if !ok {
			return p.cdr.Equal(q.cdr)
		}

		p, c = next, q.cdr
	}
}

// Literal returns the printed representation of the pair p.
func (p *pair) Literal() string {
	if cell.I(p) == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteString("(")
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for tail != Null {
		next, ok := tail.(*pair)
		if !ok {
			b.WriteString(" . ")
			b.WriteString(literal.String(tail))

			break
		}

		b.WriteString(" ")
		b.WriteString(literal.String(next.car))

		tail = next.cdr
	}

	b.WriteString(")")

	return b.String()
}

// Name returns the name for a pair type. The empty list is its own type.
func (p *pair) Name() string {
	if cell.I(p) == Null {
		return "nil"
	}

	return name
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, a type-error is raised.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, a type-error is raised.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected raises a type-error.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected raises a type-error.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected raises a type-error.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a non-empty pair.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && cell.I(p) != Null
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, a type-error is raised.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, a type-error is raised.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a *pair if c is a non-empty pair; Otherwise it raises a type-error.
func To(c cell.I) *pair {
	if p, ok := c.(*pair); ok && cell.I(p) != Null {
		return p
	}

	panic(fault.Type(c, name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}

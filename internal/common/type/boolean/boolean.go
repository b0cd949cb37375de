// Released under an MIT license. See LICENSE.

// Package boolean provides vau's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/truth"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the unique boolean for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	return c == cell.I(b)
}

// Literal returns the printed representation of the boolean b.
func (b *boolean) Literal() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// Functions specific to boolean.

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a *boolean if c is a boolean; Otherwise it raises a type-error.
func To(c cell.I) *boolean {
	if t, ok := c.(*boolean); ok {
		return t
	}

	panic(fault.Type(c, name))
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}

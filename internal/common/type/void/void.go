// Released under an MIT license. See LICENSE.

// Package void provides #void, the result of evaluating nothing.
package void

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
)

const name = "void"

// T (void) is the type of #void.
type T struct{}

type void = T

// Void is the only value of type T.
var Void cell.I = &void{} //nolint:gochecknoglobals

// Equal returns true if c is #void.
func (v *void) Equal(c cell.I) bool {
	return c == cell.I(v)
}

// Literal returns the printed representation of #void.
func (*void) Literal() string {
	return "#void"
}

// Name returns the type name for #void.
func (*void) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t void

	// The void type is a cell.
	_ = cell.I(&t)

	// The void type has a literal representation.
	_ = literal.I(&t)
}

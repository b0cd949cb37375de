// Released under an MIT license. See LICENSE.

// Package truth defines the interface for vau types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

// I (truth) is anything that can select a branch of a conditional.
// Only booleans qualify. There is no generalized truthiness in vau.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell, if possible.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		panic(fault.Type(c, "boolean"))
	}

	return b.Bool()
}

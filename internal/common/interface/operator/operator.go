// Released under an MIT license. See LICENSE.

// Package operator defines the interface for everything that computes.
package operator

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

// I (operator) receives an operand and does something with it in an
// environment. The operand is usually a list but this is only required
// by functions.
type I interface {
	cell.I

	Operate(operand cell.I, e scope.I) cell.I
}

type operator = I

// Is returns true if c is an operator.
func Is(c cell.I) bool {
	_, ok := c.(operator)

	return ok
}

// To returns an operator if c is an operator; Otherwise it raises a type-error.
func To(c cell.I) operator {
	if t, ok := c.(operator); ok {
		return t
	}

	panic(fault.Type(c, "operator"))
}

// Released under an MIT license. See LICENSE.

// Package scope defines the interface for vau's first-class environments.
package scope

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

// I (scope) is a mutable mapping from symbols to values with an optional
// enclosing scope.
type I interface {
	cell.I

	Enclosing() I

	// IsBound reports whether k is bound here or in an enclosing scope.
	IsBound(k *sym.T) bool

	// Lookup searches this scope and then its ancestors.
	// An unbound-symbol-error is raised if k is not bound.
	Lookup(k *sym.T) cell.I

	// Put creates or overwrites a binding in this scope only.
	Put(k *sym.T, v cell.I)
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; Otherwise it raises a type-error.
func To(c cell.I) scope {
	if t, ok := c.(scope); ok {
		return t
	}

	panic(fault.Type(c, "environment"))
}

// Released under an MIT license. See LICENSE.

// Package env provides vau's first-class environment type.
package env

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/struct/hash"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

const name = "environment"

// T (env) maps symbols to values and chains to an enclosing scope.
type T struct {
	previous scope.I
	frame    *hash.T
}

type env = T

// New creates a new env. The enclosing scope may be nil.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		frame:    hash.New(),
	}
}

// Clone creates a copy of the local frame of e sharing e's enclosing scope.
func (e *env) Clone() scope.I {
	return &env{
		previous: e.previous,
		frame:    e.frame.Copy(),
	}
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return c == cell.I(e)
}

// IsBound returns true if k is bound in e or an enclosing scope.
func (e *env) IsBound(k *sym.T) bool {
	for s := scope.I(e); s != nil; s = s.Enclosing() {
		if l, ok := s.(*env); ok {
			if l.frame.Get(k) != nil {
				return true
			}

			continue
		}

		return s.IsBound(k)
	}

	return false
}

// Keys returns the symbols bound in the local frame of e.
func (e *env) Keys() []*sym.T {
	return e.frame.Keys()
}

// Literal returns the printed representation of the env e.
func (e *env) Literal() string {
	return "#[" + name + "]"
}

// Lookup retrieves the value bound to k in e or an enclosing scope.
// If k is unbound an unbound-symbol-error is raised.
func (e *env) Lookup(k *sym.T) cell.I {
	for s := scope.I(e); s != nil; s = s.Enclosing() {
		l, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if r := l.frame.Get(k); r != nil {
			return r.Get()
		}
	}

	panic(fault.Unbound(k, e))
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Put binds k to v in the local frame of e.
func (e *env) Put(k *sym.T, v cell.I) {
	e.frame.Set(k, v)
}

// Remove deletes the local binding for k in e.
func (e *env) Remove(k *sym.T) bool {
	return e.frame.Del(k)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)

	// The env type has a literal representation.
	_ = literal.I(&t)
}

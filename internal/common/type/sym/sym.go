// Released under an MIT license. See LICENSE.

// Package sym provides vau's symbol cell type.
//
// Symbols are interned by namespace and name so that there is exactly one
// symbol for each pair. Symbols are compared by identity.
package sym

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

const name = "symbol"

// Namespace classifies a symbol's role.
type Namespace int

// Symbol namespaces.
const (
	Variable Namespace = iota
	Function
	Keyword
	Class
)

// T (sym) is an interned name in a namespace.
type T struct {
	name string
	ns   Namespace
}

type sym = T

type key struct {
	name string
	ns   Namespace
}

//nolint:gochecknoglobals
var (
	table  = map[key]*sym{}
	tablel = &sync.RWMutex{}
)

// Intern returns the unique symbol for the name v in the namespace ns.
func Intern(v string, ns Namespace) *sym {
	k := key{name: v, ns: ns}

	if s := lookup(k); s != nil {
		return s
	}

	tablel.Lock()
	defer tablel.Unlock()

	if s, ok := table[k]; ok {
		return s
	}

	s := &sym{name: v, ns: ns}
	table[k] = s

	return s
}

// New returns the variable namespace symbol for v.
func New(v string) *sym {
	return Intern(v, Variable)
}

// Fn returns the function namespace symbol for v.
func Fn(v string) *sym {
	return Intern(v, Function)
}

// Kw returns the keyword namespace symbol for v.
func Kw(v string) *sym {
	return Intern(v, Keyword)
}

// Cls returns the class namespace symbol for v.
func Cls(v string) *sym {
	return Intern(v, Class)
}

// Class returns the symbol with the same name in the class namespace.
func (s *sym) Class() *sym {
	return Intern(s.name, Class)
}

// Equal returns true if c is the same symbol as s.
func (s *sym) Equal(c cell.I) bool {
	return c == cell.I(s)
}

// Function returns the symbol with the same name in the function namespace.
func (s *sym) Function() *sym {
	return Intern(s.name, Function)
}

// IsKeyword returns true if s is in the keyword namespace.
func (s *sym) IsKeyword() bool {
	return s.ns == Keyword
}

// Keyword returns the symbol with the same name in the keyword namespace.
func (s *sym) Keyword() *sym {
	return Intern(s.name, Keyword)
}

// Literal returns the printed representation of the sym s.
func (s *sym) Literal() string {
	n := s.name
	if n == "" || strings.ContainsAny(n, " \t\n\r()\";'") {
		n = "|" + n + "|"
	}

	switch s.ns {
	case Function:
		return "#'" + n
	case Keyword:
		return ":" + n
	case Class:
		return "#^" + n
	}

	return n
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Namespace returns the namespace of the sym s.
func (s *sym) Namespace() Namespace {
	return s.ns
}

// String returns the name of the sym s, without namespace decoration.
func (s *sym) String() string {
	return s.name
}

// Variable returns the symbol with the same name in the variable namespace.
func (s *sym) Variable() *sym {
	return Intern(s.name, Variable)
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a *sym if c is a sym; Otherwise it raises a type-error.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(fault.Type(c, name))
}

func lookup(k key) *sym {
	tablel.RLock()
	defer tablel.RUnlock()

	return table[k]
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}

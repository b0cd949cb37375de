// Released under an MIT license. See LICENSE.

package vau

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/operator"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/class"
	"github.com/michaelmacinnis/vau/internal/common/type/env"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

//nolint:gochecknoglobals
var (
	system scope.I
	user   scope.I
)

// Reset creates fresh system and user environments. The user environment
// is a child of the system environment.
func Reset() {
	system = env.New(nil)
	user = env.New(system)
}

// System returns the environment holding the primitives.
func System() scope.I {
	return system
}

// User returns the environment where user code is evaluated.
func User() scope.I {
	return user
}

// Define binds k to v in the system environment.
func Define(k *sym.T, v cell.I) {
	system.Put(k, v)
}

// DefineVariable binds the variable n to v.
func DefineVariable(n string, v cell.I) {
	Define(sym.New(n), v)
}

// DefineConstant binds the variable n to v. Environments have no notion of
// a constant so this differs from DefineVariable only in intent.
func DefineConstant(n string, v cell.I) {
	DefineVariable(n, v)
}

// DefineOperator binds the function n to op.
func DefineOperator(n string, op operator.I) {
	Define(sym.Fn(n), op)
}

// DefineBuiltInOperator binds the function n to a built-in operator for fn.
func DefineBuiltInOperator(n string, fn func(cell.I, scope.I) cell.I) {
	DefineOperator(n, &BuiltIn{name: n, fn: fn})
}

// DefineBuiltInFunction binds the function n to a function wrapped around
// a built-in operator for fn.
func DefineBuiltInFunction(n string, fn func(cell.I, scope.I) cell.I) {
	DefineOperator(n, Wrap(&BuiltIn{name: n, fn: fn}))
}

// DefineAlienFunction binds the function n to a function wrapped around
// an alien operator for fn.
func DefineAlienFunction(n string, fn func(...cell.I) cell.I) {
	b := AlienOperator(fn)
	b.name = n

	DefineOperator(n, Wrap(b))
}

// DefineAlienOperator binds the function n to an alien operator for fn.
func DefineAlienOperator(n string, fn func(...cell.I) cell.I) {
	b := AlienOperator(fn)
	b.name = n

	DefineOperator(n, b)
}

// DefineClass binds the class name of k to k.
func DefineClass(k *class.T) {
	Define(k.Symbol(), k)
}

func init() { //nolint:gochecknoinits
	Reset()
}

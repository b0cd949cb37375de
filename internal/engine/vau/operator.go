// Released under an MIT license. See LICENSE.

package vau

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/operator"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/env"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/ignore"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/engine/control"
)

// Fexpr is an operator written in vau. Its operand is not evaluated.
type Fexpr struct {
	params   cell.I  // Definiend tree matched against the operand.
	envParam cell.I  // Definiend matched against the calling environment.
	body     cell.I  // Form evaluated for each call.
	def      scope.I // Environment where the fexpr was created.
}

// NewFexpr creates a fexpr that closes over the environment def.
func NewFexpr(params, envParam, body cell.I, def scope.I) *Fexpr {
	if !definiend(params, true) {
		panic(fault.Type(params, "definiend tree"))
	}

	if !definiend(envParam, false) {
		panic(fault.Type(envParam, "definiend"))
	}

	return &Fexpr{
		params:   params,
		envParam: envParam,
		body:     body,
		def:      scope.To(def),
	}
}

// Equal returns true if c is the same fexpr as f.
func (f *Fexpr) Equal(c cell.I) bool {
	return c == cell.I(f)
}

// Literal returns the printed representation of the fexpr f.
func (f *Fexpr) Literal() string {
	return "#[fexpr " + literal.String(f.params) + "]"
}

// Name returns the type name for a fexpr.
func (f *Fexpr) Name() string {
	return "fexpr"
}

// Operate evaluates the body of f in a fresh child of its definition
// environment. The operand is matched against the parameter tree and
// the calling environment against the environment parameter.
func (f *Fexpr) Operate(operand cell.I, dynamic scope.I) cell.I {
	child := env.New(f.def)

	Match(f.params, operand, child)
	Match(f.envParam, dynamic, child)

	return Eval(f.body, child)
}

// Function wraps an operator. It evaluates its operands, left to right,
// and passes the resulting arguments to the wrapped operator.
type Function struct {
	wrapped operator.I
}

// Wrap creates a function around the operator op.
func Wrap(op cell.I) *Function {
	return &Function{wrapped: operator.To(op)}
}

// Equal returns true if c is the same function as f.
func (f *Function) Equal(c cell.I) bool {
	return c == cell.I(f)
}

// Literal returns the printed representation of the function f.
func (f *Function) Literal() string {
	if b, ok := f.wrapped.(*BuiltIn); ok && b.name != "" {
		return "#[function " + b.name + "]"
	}

	return "#[function]"
}

// Name returns the type name for a function.
func (f *Function) Name() string {
	return "function"
}

// Operate evaluates each operand in e and then operates the wrapped
// operator on the list of arguments, also in e.
func (f *Function) Operate(operands cell.I, e scope.I) cell.I {
	return control.Bind(func() cell.I {
		return evalArgs(operands, pair.Null, e)
	}, func(args cell.I) cell.I {
		return Operate(f.wrapped, args, e)
	}, control.NewTrace(pair.Cons(f, operands), e))
}

// Unwrap returns the operator underlying the function f.
func (f *Function) Unwrap() operator.I {
	return f.wrapped
}

// BuiltIn is an operator implemented in Go.
type BuiltIn struct {
	name string
	fn   func(operand cell.I, e scope.I) cell.I
}

// BuiltInOperator creates a built-in operator for fn.
func BuiltInOperator(fn func(cell.I, scope.I) cell.I) *BuiltIn {
	return &BuiltIn{fn: fn}
}

// BuiltInFunction creates a function wrapped around a built-in operator.
func BuiltInFunction(fn func(cell.I, scope.I) cell.I) *Function {
	return Wrap(BuiltInOperator(fn))
}

// AlienOperator creates a built-in operator for a Go function that takes
// the elements of the operand as its arguments and never sees the
// environment.
func AlienOperator(fn func(...cell.I) cell.I) *BuiltIn {
	return BuiltInOperator(func(operands cell.I, _ scope.I) cell.I {
		return fn(list.ToSlice(operands)...)
	})
}

// AlienFunction creates a function wrapped around an alien operator.
// This is how most primitives are exposed.
func AlienFunction(fn func(...cell.I) cell.I) *Function {
	return Wrap(AlienOperator(fn))
}

// Equal returns true if c is the same built-in operator as b.
func (b *BuiltIn) Equal(c cell.I) bool {
	return c == cell.I(b)
}

// Literal returns the printed representation of the built-in operator b.
func (b *BuiltIn) Literal() string {
	if b.name == "" {
		return "#[built-in-operator]"
	}

	return "#[built-in-operator " + b.name + "]"
}

// Name returns the type name for a built-in operator.
func (b *BuiltIn) Name() string {
	return "built-in-operator"
}

// Operate calls the Go function underlying b.
func (b *BuiltIn) Operate(operand cell.I, e scope.I) cell.I {
	return b.fn(operand, e)
}

// ToFunction returns a *Function if c is a function; Otherwise it raises a type-error.
func ToFunction(c cell.I) *Function {
	if f, ok := c.(*Function); ok {
		return f
	}

	panic(fault.Type(c, "function"))
}

// A definiend is a symbol or #ignore. A definiend tree may also be a list.
func definiend(c cell.I, tree bool) bool {
	switch c.(type) {
	case *sym.T:
		return true
	case *pair.T:
		return tree
	}

	return c == ignore.Ignore
}

// evalArgs evaluates the operands in todo, consing each result onto done.
// A suspension while evaluating one operand resumes with the next.
func evalArgs(todo, done cell.I, e scope.I) cell.I {
	for todo != pair.Null {
		form := pair.Car(todo)
		rest := pair.Cdr(todo)

		arg := Eval(form, e)
		if control.Suspended(arg) {
			acc := done

			return control.Then(arg, func(v cell.I) cell.I {
				return evalArgs(rest, pair.Cons(v, acc), e)
			}, control.NewTrace(form, e))
		}

		done = pair.Cons(arg, done)
		todo = rest
	}

	return list.Reverse(done)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	_ = operator.I(&Fexpr{})
	_ = literal.I(&Fexpr{})

	_ = operator.I(&Function{})
	_ = literal.I(&Function{})

	_ = operator.I(&BuiltIn{})
	_ = literal.I(&BuiltIn{})
}

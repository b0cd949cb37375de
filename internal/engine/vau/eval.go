// Released under an MIT license. See LICENSE.

// Package vau implements the evaluator: evaluation of forms, definiend
// matching, the operator types, and the bridge from Go panics to the
// user's error handler.
package vau

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/operator"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/engine/control"
)

// Eval evaluates form in the environment e.
//
// Keywords evaluate to themselves. Other symbols are looked up in e.
// A cons operates the value of its car on its cdr. Everything else
// evaluates to itself.
func Eval(form cell.I, e scope.I) cell.I {
	return TrapExceptions(func() cell.I {
		e = scope.To(e)

		switch t := form.(type) {
		case *sym.T:
			if t.IsKeyword() {
				return t
			}

			return e.Lookup(t)

		case *pair.T:
			if t != pair.Null {
				return evalCons(t, e)
			}
		}

		return form
	})
}

// Operate calls the operator op with operand in e.
func Operate(op, operand cell.I, e scope.I) cell.I {
	return TrapExceptions(func() cell.I {
		if operand == nil {
			panic(fault.Type(operand, "object"))
		}

		return operator.To(op).Operate(operand, scope.To(e))
	})
}

func evalCons(form *pair.T, e scope.I) cell.I {
	car := pair.Car(form)

	return control.Bind(func() cell.I {
		return evalOperator(car, e)
	}, func(op cell.I) cell.I {
		return Operate(op, pair.Cdr(form), e)
	}, control.NewTrace(form, e))
}

// A symbol in operator position is looked up in the function namespace.
func evalOperator(c cell.I, e scope.I) cell.I {
	s, ok := c.(*sym.T)
	if !ok {
		return Eval(c, e)
	}

	return TrapExceptions(func() cell.I {
		return e.Lookup(s.Function())
	})
}

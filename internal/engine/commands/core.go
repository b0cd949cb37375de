// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/interface/truth"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
	"github.com/michaelmacinnis/vau/internal/common/type/void"
	"github.com/michaelmacinnis/vau/internal/common/validate"
	"github.com/michaelmacinnis/vau/internal/engine/control"
	"github.com/michaelmacinnis/vau/internal/engine/vau"
)

// (%def definiend expression)
func def(operands cell.I, e scope.I) cell.I {
	v := validate.Fixed(list.ToSlice(operands), 2, 2)

	return control.Bind(func() cell.I {
		return vau.Eval(v[1], e)
	}, func(r cell.I) cell.I {
		return vau.Match(v[0], r, e)
	}, control.NewTrace(v[1], e))
}

// (%if test consequent alternative)
func ifThenElse(operands cell.I, e scope.I) cell.I {
	v := validate.Fixed(list.ToSlice(operands), 3, 3)

	return control.Bind(func() cell.I {
		return vau.Eval(v[0], e)
	}, func(r cell.I) cell.I {
		if truth.Value(r) {
			return vau.Eval(v[1], e)
		}

		return vau.Eval(v[2], e)
	}, control.NewTrace(v[0], e))
}

// (%vau param-tree env-param body)
func makeFexpr(operands cell.I, e scope.I) cell.I {
	v := validate.Fixed(list.ToSlice(operands), 3, 3)

	return vau.NewFexpr(v[0], v[1], v[2], e)
}

// (%progn . forms)
func progn(forms cell.I, e scope.I) cell.I {
	if forms == pair.Null {
		return void.Void
	}

	return sequence(forms, e)
}

func sequence(forms cell.I, e scope.I) cell.I {
	for {
		form := pair.Car(forms)
		rest := pair.Cdr(forms)

		r := vau.Eval(form, e)
		if rest == pair.Null {
			return r
		}

		if control.Suspended(r) {
			return control.Then(r, func(cell.I) cell.I {
				return sequence(rest, e)
			}, control.NewTrace(form, e))
		}

		forms = rest
	}
}

func eval(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return vau.Eval(v[0], scope.To(v[1]))
}

func raisePanic(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	panic(fault.Escalate(v[0]))
}

func unwrap(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return vau.ToFunction(v[0]).Unwrap()
}

func wrap(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return vau.Wrap(v[0])
}

func writeToString(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(literal.String(v[0]))
}

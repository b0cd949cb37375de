// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/env"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/validate"
	"github.com/michaelmacinnis/vau/internal/engine/control"
	"github.com/michaelmacinnis/vau/internal/engine/vau"
)

// (%catch tag thunk)
func catch(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return control.Catch(v[0], thunk(v[1]), control.NewTrace(v[1], nil))
}

// (%continuation-trace k) returns the forms being evaluated when k was
// captured, innermost first.
func continuationTrace(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	traces := continuation(v[0]).Traces()

	forms := make([]cell.I, 0, len(traces))
	for _, t := range traces {
		if t.Form != nil {
			forms = append(forms, t.Form)
		}
	}

	return list.New(forms...)
}

// (%push-prompt prompt thunk)
func pushPrompt(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return control.PushPrompt(v[0], thunk(v[1]), control.NewTrace(v[1], nil))
}

// (%push-subcont k thunk)
func pushSubcont(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return control.PushSubcont(continuation(v[0]), thunk(v[1]))
}

// (%take-subcont prompt handler) suspends to prompt. There, the handler
// is called with the continuation.
func takeSubcont(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	handler := v[1]

	return control.TakeSubcont(v[0], func(k *control.Continuation) cell.I {
		return vau.Operate(handler, list.New(k), env.New(nil))
	})
}

// (%throw tag value)
func throw(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	control.Throw(v[0], v[1])

	return nil
}

// (%unwind-protect thunk cleanup-thunk)
func unwindProtect(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return control.Protect(thunk(v[0]), thunk(v[1]), control.NewTrace(v[0], nil))
}

func continuation(c cell.I) *control.Continuation {
	if k, ok := c.(*control.Continuation); ok {
		return k
	}

	panic(fault.Type(c, "continuation"))
}

// A thunk is an operator called with no operands in a fresh environment.
func thunk(op cell.I) func() cell.I {
	return func() cell.I {
		return vau.Operate(op, pair.Null, env.New(nil))
	}
}

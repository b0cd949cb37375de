// Released under an MIT license. See LICENSE.

package vau

import (
	"log/slog"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/env"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/engine/control"
)

// True while the user's error handler is running.
var handling bool //nolint:gochecknoglobals

// TrapExceptions runs thunk. Any Go panic other than a nonlocal exit or
// a LISP panic is converted to a condition and passed to the user's
// error handler. The handler's result becomes the result of thunk.
func TrapExceptions(thunk func() cell.I) (v cell.I) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r.(type) {
		case *control.Exit, *fault.Panic:
			panic(r)
		}

		v = CallUserErrorHandler(fault.From(r))
	}()

	return thunk()
}

// CallUserErrorHandler calls the function bound to error in the function
// namespace of the user environment with the condition c. If there is no
// such function, c is escalated to a LISP panic. A fault raised while the
// handler is running is also escalated.
func CallUserErrorHandler(c cell.I) cell.I {
	k := sym.Fn("error")

	u := User()
	if !u.IsBound(k) {
		slog.Debug("no error handler", "condition", literal.String(c))
		Panic(c)
	}

	if handling {
		slog.Debug("fault in error handler", "condition", literal.String(c))
		Panic(c)
	}

	slog.Debug("calling error handler", "condition", literal.String(c))

	handling = true
	defer func() {
		handling = false
	}()

	return Operate(u.Lookup(k), list.New(c), env.New(nil))
}

// Panic escalates c to a LISP panic. Evaluator boundaries do not trap it.
func Panic(c cell.I) {
	panic(fault.Escalate(c))
}

// Released under an MIT license. See LICENSE.

package control

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
)

// Exit is the signal used for a nonlocal exit to a catch tag. It is not
// a condition and evaluator boundaries let it pass.
type Exit struct {
	Tag   cell.I
	Value cell.I
}

// Error describes the exit. It shows up only when no catch for the tag
// was established.
func (x *Exit) Error() string {
	return "no catch for tag " + literal.String(x.Tag)
}

// Throw performs a nonlocal exit to the nearest catch for tag.
func Throw(tag, value cell.I) {
	panic(&Exit{Tag: tag, Value: value})
}

// Catch runs fn. A Throw to tag from within fn makes Catch return the
// thrown value. The catch stays in place if fn suspends and is resumed.
func Catch(tag cell.I, fn func() cell.I, t *Trace) (v cell.I) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if x, ok := r.(*Exit); ok && x.Tag == tag {
			v = x.Value

			return
		}

		panic(r)
	}()

	v = fn()

	if s, ok := v.(*Suspension); ok {
		return s.Suspend(func(r *Resumption) cell.I {
			return Catch(tag, r.Resume, t)
		}, t)
	}

	return v
}

// Protect runs fn and then cleanup. Cleanup runs whether fn returns,
// exits, faults, or panics, but not when fn suspends. It runs when the
// resumed computation finishes.
func Protect(fn func() cell.I, cleanup func() cell.I, t *Trace) cell.I {
	v := guard(fn, cleanup)

	if s, ok := v.(*Suspension); ok {
		return s.Suspend(func(r *Resumption) cell.I {
			return Protect(r.Resume, cleanup, t)
		}, t)
	}

	return Then(cleanup(), func(cell.I) cell.I {
		return v
	}, t)
}

func guard(fn func() cell.I, cleanup func() cell.I) cell.I {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		cleanup()

		panic(r)
	}()

	return fn()
}

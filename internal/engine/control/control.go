// Released under an MIT license. See LICENSE.

// Package control provides delimited continuations and nonlocal exits.
//
// Any evaluation step may, instead of producing a value, produce a
// *Suspension: a request to capture the continuation up to an enclosing
// prompt. Code that sequences steps does so with Bind (or Then) so that a
// suspension travelling outward collects one resumption frame per step.
// The captured continuation is immutable and may be resumed any number of
// times.
package control

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
)

// Trace marks a frame with the form and environment being evaluated.
// It is diagnostic only.
type Trace struct {
	Form cell.I
	Env  scope.I
}

// NewTrace creates a new trace marker.
func NewTrace(form cell.I, e scope.I) *Trace {
	return &Trace{Form: form, Env: e}
}

// Continuation is a chain of resumption frames, outermost first.
// The empty continuation has no work and resumes by running the thunk.
type Continuation struct {
	work  func(*Resumption) cell.I
	inner *Continuation
	trace *Trace
}

// Equal returns true if c is the same continuation as k.
func (k *Continuation) Equal(c cell.I) bool {
	return c == cell.I(k)
}

// Literal returns the printed representation of the continuation k.
func (k *Continuation) Literal() string {
	return "#[continuation]"
}

// Name returns the type name for a continuation.
func (k *Continuation) Name() string {
	return "continuation"
}

// Resume runs fn where the continuation was captured and then the rest
// of the continuation with its result.
func (k *Continuation) Resume(fn func() cell.I) cell.I {
	if k == nil || k.work == nil {
		return fn()
	}

	return k.work(&Resumption{k: k.inner, fn: fn})
}

// Traces returns the trace markers of k, innermost first.
func (k *Continuation) Traces() []*Trace {
	traces := []*Trace{}

	for c := k; c != nil && c.work != nil; c = c.inner {
		if c.trace != nil {
			traces = append([]*Trace{c.trace}, traces...)
		}
	}

	return traces
}

// Resumption is handed to a frame when its continuation is resumed.
type Resumption struct {
	k  *Continuation
	fn func() cell.I
}

// Resume runs the inner part of the continuation, producing the value
// that the resumed frame was waiting for.
func (r *Resumption) Resume() cell.I {
	return r.k.Resume(r.fn)
}

// Suspension is a paused computation travelling outward to its prompt.
type Suspension struct {
	prompt  cell.I
	handler func(*Continuation) cell.I
	k       *Continuation
}

// TakeSubcont creates a suspension that will capture the continuation up
// to prompt and then call handler with it, outside of the prompt.
func TakeSubcont(prompt cell.I, handler func(*Continuation) cell.I) cell.I {
	return &Suspension{prompt: prompt, handler: handler}
}

// Continuation returns the continuation captured so far.
func (s *Suspension) Continuation() *Continuation {
	if s.k == nil {
		return &Continuation{}
	}

	return s.k
}

// Equal returns true if c is the same suspension as s.
func (s *Suspension) Equal(c cell.I) bool {
	return c == cell.I(s)
}

// Literal returns the printed representation of the suspension s.
func (s *Suspension) Literal() string {
	return "#[suspension " + literal.String(s.prompt) + "]"
}

// Name returns the type name for a suspension.
func (s *Suspension) Name() string {
	return "suspension"
}

// Prompt returns the prompt the suspension is travelling to.
func (s *Suspension) Prompt() cell.I {
	return s.prompt
}

// Suspend returns a new suspension whose continuation has work as its
// outermost frame.
func (s *Suspension) Suspend(work func(*Resumption) cell.I, t *Trace) *Suspension {
	return &Suspension{
		prompt:  s.prompt,
		handler: s.handler,
		k:       &Continuation{work: work, inner: s.k, trace: t},
	}
}

// Bind runs step and then next with its result. If step suspends, next
// is deferred until the suspension is resumed.
func Bind(step func() cell.I, next func(cell.I) cell.I, t *Trace) cell.I {
	return Then(step(), next, t)
}

// Then calls next with v or, if v is a suspension, extends it so that
// next is called with the value it is eventually resumed with.
func Then(v cell.I, next func(cell.I) cell.I, t *Trace) cell.I {
	s, ok := v.(*Suspension)
	if !ok {
		return next(v)
	}

	return s.Suspend(func(r *Resumption) cell.I {
		return Bind(r.Resume, next, t)
	}, t)
}

// Suspended returns true if v is a suspension.
func Suspended(v cell.I) bool {
	_, ok := v.(*Suspension)

	return ok
}

// PushPrompt runs fn delimited by prompt. A suspension for prompt that
// reaches here has its handler called with the captured continuation.
func PushPrompt(prompt cell.I, fn func() cell.I, t *Trace) cell.I {
	v := fn()

	s, ok := v.(*Suspension)
	if !ok {
		return v
	}

	if s.prompt == prompt {
		return s.handler(s.Continuation())
	}

	return s.Suspend(func(r *Resumption) cell.I {
		return PushPrompt(prompt, r.Resume, t)
	}, t)
}

// PushSubcont resumes the continuation k, running fn in place of the
// step that suspended.
func PushSubcont(k *Continuation, fn func() cell.I) cell.I {
	return k.Resume(fn)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	_ = cell.I(&Continuation{})
	_ = literal.I(&Continuation{})

	_ = cell.I(&Suspension{})
	_ = literal.I(&Suspension{})
}

// Released under an MIT license. See LICENSE.

// Package fault provides vau's conditions and the panic that escalates them.
//
// Conditions are ordinary values. They are raised with Go's panic and, at
// an evaluator boundary, handed to the user's error handler. A *Panic is
// different: no evaluator boundary will intercept it.
package fault

import (
	"fmt"
	"sort"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
)

// Condition kinds. Each is also the name of the condition's class.
const (
	Error          = "error"
	ArityError     = "arity-error"
	MatchError     = "match-error"
	PromptNotFound = "prompt-not-found-error"
	TypeError      = "type-error"
	UnboundMethod  = "unbound-method-error"
	UnboundSymbol  = "unbound-symbol-error"
)

// T (fault) is a condition: a kind, a message, and named slots.
type T struct {
	kind    string
	message string
	slots   map[string]cell.I
}

type fault = T

// New creates a generic error condition with the message msg.
func New(msg string) *fault {
	return Kind(Error, msg, nil)
}

// Kind creates a condition of kind k.
func Kind(k, msg string, slots map[string]cell.I) *fault {
	if slots == nil {
		slots = map[string]cell.I{}
	}

	return &fault{kind: k, message: msg, slots: slots}
}

// Errorf creates a generic error condition with a formatted message.
func Errorf(format string, a ...interface{}) *fault {
	return New(fmt.Sprintf(format, a...))
}

// Arity creates an arity-error.
func Arity(msg string) *fault {
	return Kind(ArityError, msg, nil)
}

// Match creates a match-error for a definiend that did not fit a value.
func Match(definiend, value cell.I) *fault {
	msg := "match error: " + literal.String(definiend) + " vs " + literal.String(value)

	return Kind(MatchError, msg, map[string]cell.I{
		"definiend": definiend,
		"value":     value,
	})
}

// Prompt creates a prompt-not-found-error.
func Prompt(prompt cell.I) *fault {
	return Kind(PromptNotFound, "prompt not found: "+literal.String(prompt), map[string]cell.I{
		"prompt": prompt,
	})
}

// Type creates a type-error for datum, which should have been expected.
func Type(datum cell.I, expected string) *fault {
	msg := "type error: "
	if datum == nil {
		msg += "nothing"
	} else {
		msg += literal.String(datum)
	}

	return Kind(TypeError, msg+" is not a "+expected, map[string]cell.I{
		"datum":         datum,
		"expected-type": str.New(expected),
	})
}

// Unbound creates an unbound-symbol-error for the symbol k in the env e.
func Unbound(k, e cell.I) *fault {
	return Kind(UnboundSymbol, "unbound symbol: "+literal.String(k), map[string]cell.I{
		"symbol":      k,
		"environment": e,
	})
}

// Method creates an unbound-method-error for the method k in the class c.
func Method(c, k cell.I) *fault {
	return Kind(UnboundMethod, "unbound method: "+literal.String(k)+" in "+literal.String(c), map[string]cell.I{
		"class":       c,
		"method-name": k,
	})
}

// From converts a recovered value into a condition.
func From(r interface{}) *fault {
	switch r := r.(type) {
	case *fault:
		return r
	case mismatch:
		return Type(r.Datum(), r.Expected())
	case error:
		return New(r.Error())
	case string:
		return New(r)
	case cell.I:
		return Kind(Error, "error: "+literal.String(r), map[string]cell.I{
			"datum": r,
		})
	default:
		return Errorf("%v", r)
	}
}

// Equal returns true if c is the same condition as f.
func (f *fault) Equal(c cell.I) bool {
	return c == cell.I(f)
}

// Error returns the message, so that a condition can leave the evaluator
// as a Go error.
func (f *fault) Error() string {
	return f.message
}

// IsKind reports whether f is of kind k.
func (f *fault) IsKind(k string) bool {
	return f.kind == k
}

// Literal returns the printed representation of the condition f.
func (f *fault) Literal() string {
	return "#[" + f.kind + " " + fmt.Sprintf("%q", f.message) + "]"
}

// Message returns the condition's message.
func (f *fault) Message() string {
	return f.message
}

// Name returns the condition's kind. This doubles as its class name.
func (f *fault) Name() string {
	return f.kind
}

// SlotNames returns the names of the condition's slots, sorted.
func (f *fault) SlotNames() []string {
	names := make([]string, 0, len(f.slots)+1)
	names = append(names, "message")

	for k := range f.slots {
		names = append(names, k)
	}

	sort.Strings(names[1:])

	return names
}

// SlotValue returns the value of the slot k and whether it is bound.
func (f *fault) SlotValue(k string) (cell.I, bool) {
	if k == "message" {
		return str.New(f.message), true
	}

	v, ok := f.slots[k]

	return v, ok && v != nil
}

// Panic is a fatal signal. It wraps the fault that caused it.
type Panic struct {
	cause cell.I
}

// Escalate creates a new panic with the cause c.
func Escalate(c cell.I) *Panic {
	return &Panic{cause: c}
}

// Cause returns the value that caused the panic.
func (p *Panic) Cause() cell.I {
	return p.cause
}

// Error returns a description of the panic and its cause.
func (p *Panic) Error() string {
	switch c := p.cause.(type) {
	case nil:
		return "LISP panic!"
	case *fault:
		return "LISP panic: " + c.message
	default:
		return "LISP panic: " + literal.String(c)
	}
}

// Unwrap exposes a condition cause to errors.Is and errors.As.
func (p *Panic) Unwrap() error {
	if f, ok := p.cause.(*fault); ok {
		return f
	}

	return nil
}

// A mismatch is raised by a type's To when it is given the wrong cell.
type mismatch interface {
	Datum() cell.I
	Expected() string
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fault

	// The fault type is a cell.
	_ = cell.I(&t)

	// The fault type has a literal representation.
	_ = literal.I(&t)

	// The fault type is an error.
	_ = error(&t)

	// A panic is an error.
	_ = error(&Panic{})
}

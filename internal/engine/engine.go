// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed vau code.
package engine

import (
	"log/slog"
	"sort"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/class"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/common/type/void"
	"github.com/michaelmacinnis/vau/internal/engine/boot"
	"github.com/michaelmacinnis/vau/internal/engine/commands"
	"github.com/michaelmacinnis/vau/internal/engine/control"
	"github.com/michaelmacinnis/vau/internal/engine/vau"
	"github.com/michaelmacinnis/vau/internal/reader"
)

// The prompt delimiting every top-level evaluation.
var rootPrompt = sym.Kw("root-prompt") //nolint:gochecknoglobals

// Boot creates fresh system and user environments, registers the classes
// and primitives, and evaluates the boot script.
func Boot() error {
	vau.Reset()

	for _, k := range class.Builtins() {
		vau.DefineClass(k)
	}

	for n, fn := range commands.Operators() {
		vau.DefineBuiltInOperator(n, fn)
	}

	for n, fn := range commands.Functions() {
		vau.DefineAlienFunction(n, fn)
	}

	vau.DefineConstant("+root-prompt+", rootPrompt)

	forms, err := reader.ReadString("boot.lisp", boot.Script())
	if err != nil {
		return err
	}

	for _, form := range forms {
		if _, err := evaluate(form, vau.System()); err != nil {
			return err
		}
	}

	slog.Debug("booted", "forms", len(forms))

	return nil
}

// T (engine) is a facade in front of the machinery for evaluating vau code.
type T struct{}

// New boots vau and returns a facade for it.
func New() (*T, error) {
	return &T{}, Boot()
}

// Evaluate evaluates form in the user environment.
func (*T) Evaluate(form cell.I) (cell.I, error) {
	return Evaluate(form)
}

// Names returns the names bound in the user environment and its ancestors.
func (*T) Names() []string {
	return Names()
}

// Arguments binds *arguments* in the user environment to a list of args.
func Arguments(args []string) {
	cs := make([]cell.I, len(args))
	for i, a := range args {
		cs[i] = str.New(a)
	}

	vau.User().Put(sym.New("*arguments*"), list.New(cs...))
}

// Evaluate evaluates form in the user environment.
// A LISP panic, or a throw with no catch, is returned as an error.
func Evaluate(form cell.I) (cell.I, error) {
	return evaluate(form, vau.User())
}

// EvaluateString reads and evaluates each form in text. It returns the
// value of the last form.
func EvaluateString(name, text string) (cell.I, error) {
	forms, err := reader.ReadString(name, text)
	if err != nil {
		return nil, err
	}

	v := void.Void

	for _, form := range forms {
		v, err = Evaluate(form)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Names returns the names bound in the user environment and its ancestors.
func Names() []string {
	seen := map[string]bool{}

	for e := vau.User(); e != nil; e = e.Enclosing() {
		k, ok := e.(interface{ Keys() []*sym.T })
		if !ok {
			continue
		}

		for _, s := range k.Keys() {
			seen[s.String()] = true
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

func evaluate(form cell.I, e scope.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *fault.Panic:
			slog.Debug("panic", "cause", literal.String(r.Cause()))

			err = r
		case *control.Exit:
			err = r
		default:
			panic(r)
		}
	}()

	slog.Debug("evaluating", "form", literal.String(form))

	v = vau.TrapExceptions(func() cell.I {
		r := control.PushPrompt(rootPrompt, func() cell.I {
			return vau.Eval(form, e)
		}, control.NewTrace(form, e))

		if s, ok := r.(*control.Suspension); ok {
			panic(fault.Prompt(s.Prompt()))
		}

		return r
	})

	return v, nil
}

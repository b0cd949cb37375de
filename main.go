// Released under an MIT license. See LICENSE.

/*
Vau is a small LISP built on fexprs. Operators receive their operands
unevaluated, along with the caller's environment, so forms like if, def
and lambda are ordinary library definitions rather than special forms.

Functions and variables live in separate namespaces:

	(def #'twice (vau (x) env (list (eval x env) (eval x env))))
	(defun square (n) (%* n n))
	(def square 3)
	(square square)

Delimited continuations, catch and throw, and unwind-protect are available
at the LISP level.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/engine"
	"github.com/michaelmacinnis/vau/internal/system/options"
	"github.com/michaelmacinnis/vau/internal/ui"
)

func main() {
	options.Parse()

	level := slog.LevelWarn
	if options.Debug() {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	e, err := engine.New()
	if err != nil {
		fatal(err)
	}

	engine.Arguments(options.Args())

	if options.Interactive() {
		ui.Run(e)

		return
	}

	if c := options.Command(); c != "" {
		v, err := engine.EvaluateString("-c", c)
		if err != nil {
			fatal(err)
		}

		fmt.Println(literal.String(v))

		return
	}

	name := options.Script()
	if name == "" {
		name = "stdin"
	}

	text, err := read(options.Script())
	if err != nil {
		fatal(err)
	}

	if _, err := engine.EvaluateString(name, text); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "vau: %v\n", err)
	os.Exit(1)
}

func read(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)

		return string(b), err
	}

	b, err := os.ReadFile(path)

	return string(b), err
}

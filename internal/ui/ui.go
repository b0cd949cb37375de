// Released under an MIT license. See LICENSE.

// Package ui provides an interactive session for vau.
package ui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/reader"
	"github.com/michaelmacinnis/vau/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process forms.
type Evaluator interface {
	Evaluate(form cell.I) (cell.I, error)
	Names() []string
}

// Run reads forms from the terminal and prints the result of evaluating
// each one. It returns when the user ends the session.
func Run(e Evaluator) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	if err := history.Load(cli.ReadHistory); err != nil {
		slog.Debug("no history loaded", "error", err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e.Names))

	r := reader.New("vau")

	for {
		prompt := "vau> "
		if r.Pending() {
			prompt = "...> "
		}

		if merr := uncooked.ApplyMode(); merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		line, err := cli.Prompt(prompt)

		if merr := cooked.ApplyMode(); merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			r = reader.New("vau")

			continue
		default:
			os.Stdout.Write([]byte("\n"))

			if err := history.Save(cli.WriteHistory); err != nil {
				slog.Debug("history not saved", "error", err)
			}

			return
		}

		forms, err := r.Scan(line + "\n")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, form := range forms {
			v, err := e.Evaluate(form)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)

				continue
			}

			fmt.Println(literal.String(v))
		}
	}
}

// Completer returns a word completer offering the names that begin with
// the word before the cursor.
func Completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		h := line[:pos]
		t := line[pos:]

		i := strings.LastIndexAny(h, " \t\n()'\"") + 1
		prefix := h[i:]

		cs := []string{}

		if prefix != "" {
			for _, n := range names() {
				if strings.HasPrefix(n, prefix) {
					cs = append(cs, n)
				}
			}
		}

		return h[:i], cs, t
	}
}

// Released under an MIT license. See LICENSE.

// Package options parses vau's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by vau -v.
const Version = "vau 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	debug       bool
	interactive bool
	script      string
	usage       = `vau

Usage:
  vau [-d] SCRIPT [ARGUMENTS...]
  vau [-d] -c COMMAND [ARGUMENTS...]
  vau [-di]
  vau -h
  vau -v

Arguments:
  ARGUMENTS  Bound, as a list of strings, to *arguments*.
  SCRIPT     Path to vau script.

Options:
  -c, --command=COMMAND  Evaluate the specified forms and print the result.
  -d, --debug            Log debugging information to stderr.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print vau version.

If vau's stdin is a TTY, and vau was invoked with no script or command,
vau starts an interactive session. Otherwise, forms are read from stdin.
`
)

// Args returns the positional arguments.
func Args() []string {
	return args
}

// Command returns the forms passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Interactive returns true if vau should start an interactive session.
func Interactive() bool {
	return interactive
}

// Parse parses the command line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")

	script, _ = opts.String("SCRIPT")
	if script == "" && command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	args, _ = opts["ARGUMENTS"].([]string)

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Script returns the path of the script to evaluate, if any.
func Script() string {
	return script
}

// Released under an MIT license. See LICENSE.

// Package reader reads vau forms from text that may arrive in pieces.
package reader

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/struct/loc"
	"github.com/michaelmacinnis/vau/internal/reader/lexer"
	"github.com/michaelmacinnis/vau/internal/reader/parser"
)

// T (reader) encapsulates the vau lexer and parser.
type T struct {
	pending string
	source  loc.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: name,
		},
	}
}

// Pending returns true if the reader holds the start of an unfinished form.
func (r *reader) Pending() bool {
	return r.pending != ""
}

// Scan adds text to anything pending and returns the complete forms read.
// The text of an unfinished form is held until the next call. If scan
// encounters an error, it discards what is pending and returns the error.
func (r *reader) Scan(text string) ([]cell.I, error) {
	r.pending += text

	p := parser.New(lexer.New(r.source, r.pending).Tokens())

	forms := []cell.I{}

	for {
		c, err := p.Parse()
		if errors.Is(err, parser.ErrIncomplete) {
			break
		}

		if err != nil {
			r.advance(len(r.pending))

			return forms, err
		}

		if c == nil {
			break
		}

		forms = append(forms, c)
	}

	n, ok := p.Offset()
	if !ok {
		n = len(r.pending)
	}

	r.advance(n)

	return forms, nil
}

func (r *reader) advance(n int) {
	consumed := r.pending[:n]
	r.pending = r.pending[n:]

	if i := strings.LastIndexByte(consumed, '\n'); i >= 0 {
		r.source.Line += strings.Count(consumed, "\n")
		r.source.Char = 1
		consumed = consumed[i+1:]
	}

	r.source.Char += utf8.RuneCountInString(consumed)
}

// ReadString reads all of the forms in text. The text must not end in the
// middle of a form.
func ReadString(name, text string) ([]cell.I, error) {
	r := New(name)

	forms, err := r.Scan(text + "\n")
	if err != nil {
		return nil, err
	}

	if r.Pending() {
		return nil, fmt.Errorf("%s: unexpected end of input", name)
	}

	return forms, nil
}

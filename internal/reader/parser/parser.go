// Released under an MIT license. See LICENSE.

// Package parser turns a sequence of vau tokens into forms.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/struct/token"
	"github.com/michaelmacinnis/vau/internal/common/type/boolean"
	"github.com/michaelmacinnis/vau/internal/common/type/ignore"
	"github.com/michaelmacinnis/vau/internal/common/type/list"
	"github.com/michaelmacinnis/vau/internal/common/type/num"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/common/type/void"
)

// ErrIncomplete is returned when the tokens end before the form does.
var ErrIncomplete = errors.New("incomplete form") //nolint:gochecknoglobals

// T holds the state of the parser.
type T struct {
	index  int
	tokens []*token.T
}

type parser = T

// New creates a new parser for tokens.
func New(tokens []*token.T) *parser {
	return &parser{tokens: tokens}
}

// Offset returns the offset of the first unconsumed token and true, or
// false if all tokens have been consumed.
func (p *parser) Offset() (int, bool) {
	if p.index < len(p.tokens) {
		return p.tokens[p.index].Offset(), true
	}

	return 0, false
}

// Parse returns the next form. It returns nil when there are no more
// tokens and ErrIncomplete, without consuming anything, when the tokens
// hold only the start of a form.
func (p *parser) Parse() (cell.I, error) {
	if p.index == len(p.tokens) {
		return nil, nil //nolint:nilnil
	}

	start := p.index

	c, err := p.form()
	if errors.Is(err, ErrIncomplete) {
		p.index = start
	}

	return c, err
}

func (p *parser) errorf(t *token.T, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %s", t.Source(), fmt.Sprintf(format, a...))
}

func (p *parser) form() (cell.I, error) {
	t := p.next()
	if t == nil {
		return nil, ErrIncomplete
	}

	switch t.Class() {
	case '(':
		return p.list()

	case ')':
		return nil, p.errorf(t, "unexpected ')'")

	case '\'':
		c, err := p.form()
		if err != nil {
			return nil, err
		}

		return list.New(sym.New("quote"), c), nil

	case token.String:
		v := t.Value()

		s, err := str.Unquote(v[1 : len(v)-1])
		if err != nil {
			return nil, p.errorf(t, "%s", err.Error())
		}

		return str.New(s), nil

	case token.Symbol:
		return p.atom(t)

	case token.Unterminated:
		return nil, ErrIncomplete
	}

	return nil, p.errorf(t, "unexpected %s", t.Value())
}

func (p *parser) atom(t *token.T) (cell.I, error) {
	v := t.Value()

	switch v {
	case ".":
		return nil, p.errorf(t, "unexpected '.'")
	case "#f":
		return boolean.False, nil
	case "#ignore":
		return ignore.Ignore, nil
	case "#nil":
		return pair.Null, nil
	case "#t":
		return boolean.True, nil
	case "#void":
		return void.Void, nil
	}

	switch {
	case strings.HasPrefix(v, "#'") && len(v) > 2:
		return sym.Fn(bare(v[2:])), nil
	case strings.HasPrefix(v, "#^") && len(v) > 2:
		return sym.Cls(bare(v[2:])), nil
	case strings.HasPrefix(v, "#"):
		return nil, p.errorf(t, "unknown syntax %s", v)
	case strings.HasPrefix(v, ":") && len(v) > 1:
		return sym.Kw(bare(v[1:])), nil
	}

	if n, ok := num.Parse(v); ok {
		return n, nil
	}

	return sym.New(bare(v)), nil
}

func (p *parser) list() (cell.I, error) {
	elements := []cell.I{}

	for {
		t := p.peek()
		if t == nil || t.Is(token.Unterminated) {
			return nil, ErrIncomplete
		}

		if t.Is(')') {
			p.index++

			return list.New(elements...), nil
		}

		if t.Is(token.Symbol) && t.Value() == "." {
			if len(elements) == 0 {
				return nil, p.errorf(t, "unexpected '.'")
			}

			p.index++

			tail, err := p.form()
			if err != nil {
				return nil, err
			}

			t = p.next()
			if t == nil {
				return nil, ErrIncomplete
			}

			if !t.Is(')') {
				return nil, p.errorf(t, "expected ')'")
			}

			return list.Star(tail, elements...), nil
		}

		c, err := p.form()
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}
}

func (p *parser) next() *token.T {
	t := p.peek()
	if t != nil {
		p.index++
	}

	return t
}

func (p *parser) peek() *token.T {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}

	return nil
}

// Vertical bars quote the characters between them.
func bare(v string) string {
	return strings.ReplaceAll(v, "|", "")
}

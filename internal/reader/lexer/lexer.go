// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for vau.
//
// The vau lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/vau/internal/common/struct/loc"
	"github.com/michaelmacinnis/vau/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T for text. The location of the first byte of text
// is start.
func New(start loc.T, text string) *T {
	l := &T{
		bytes:  text,
		source: start,
		start:  start,
	}

	l.state = skipWhitespace

	return l
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if the text is exhausted.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens scans all of the text and returns the tokens.
func (l *T) Tokens() []*token.T {
	ts := []*token.T{}

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.first, l.start))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

// T states.

func scanBars(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated)

			return nil
		case '|':
			return scanSymbol
		}
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated)

			return nil
		case '\\':
			if r, w := l.peek(); r != eof {
				l.accept(r, w)
			}
		case '"':
			l.emit(token.String)

			return skipWhitespace
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof || delimiter(r):
			// The function namespace prefix is #'.
			if r == '\'' && l.Text() == "#" {
				l.accept(r, w)

				continue
			}

			l.emit(token.Symbol)

			return skipWhitespace

		case r == '|':
			l.accept(r, w)

			return scanBars
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case strings.ContainsRune(" \t\n\r\f", r):
			l.accept(r, w)
			l.skip()
		case r == ';':
			return skipComment
		case r == '(' || r == ')' || r == '\'':
			l.accept(r, w)
			l.emit(token.Class(r))
		case r == '"':
			l.accept(r, w)

			return scanString
		default:
			return scanSymbol
		}
	}
}

func delimiter(r rune) bool {
	return strings.ContainsRune(" \t\n\r\f()\";'", r)
}

// Released under an MIT license. See LICENSE.

// Package token is shared by the vau lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/vau/internal/common/struct/loc"
)

// Class is a token's type. Punctuation is its own rune.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	offset int
	source loc.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	String Class = unicode.MaxRune + iota
	Symbol
	Unterminated
)

// New creates a new token. The offset is the index of the token's first
// byte in the text being scanned.
func New(class Class, value string, offset int, source loc.T) *token {
	return &token{
		class:  class,
		offset: offset,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Unterminated:
		return "Unterminated"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Offset returns the index of the token's first byte.
func (t *token) Offset() int {
	return t.offset
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return &t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

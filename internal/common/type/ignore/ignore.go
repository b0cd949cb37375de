// Released under an MIT license. See LICENSE.

// Package ignore provides the #ignore marker.
//
// #ignore may be used wherever a definiend is expected. It accepts any
// value and binds nothing.
package ignore

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
)

const name = "ignore"

// T (ignore) is the type of the #ignore marker.
type T struct{}

type ignore = T

// Ignore is the only value of type T.
var Ignore cell.I = &ignore{} //nolint:gochecknoglobals

// Equal returns true if c is #ignore.
func (i *ignore) Equal(c cell.I) bool {
	return c == cell.I(i)
}

// Literal returns the printed representation of #ignore.
func (*ignore) Literal() string {
	return "#ignore"
}

// Name returns the type name for #ignore.
func (*ignore) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t ignore

	// The ignore type is a cell.
	_ = cell.I(&t)

	// The ignore type has a literal representation.
	_ = literal.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package literal defines the interface for vau types that can be printed.
package literal

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
)

// I (literal) is any type that has a printed representation.
type I interface {
	Literal() string
}

// String returns the printed representation for a cell.
// Cells without a literal form print as an opaque #[name] marker.
func String(c cell.I) string {
	if c == nil {
		return "#[nil]"
	}

	l, ok := c.(I)
	if !ok {
		return "#[" + c.Name() + "]"
	}

	return l.Literal()
}

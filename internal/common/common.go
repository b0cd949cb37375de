// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

// Stringer is anything with a plain text value, such as strings and symbols.
type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(fault.Type(c, "string"))
	}

	return b.String()
}

// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
)

// Elt returns the element of list at index.
// A list that is too short raises a type-error.
func Elt(list cell.I, index int) cell.I {
	for ; index > 0; index-- {
		list = pair.Cdr(list)
	}

	return pair.Car(list)
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected raises a type-error.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Star(pair.Null, elements...)
}

// Reverse reverses list.
// A non-pair value where a pair is expected raises a type-error.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Star creates a list of elements whose final cdr is tail.
func Star(tail cell.I, elements ...cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// ToSlice spreads the elements of list into a slice.
// The list must be proper; an improper tail raises a type-error.
func ToSlice(list cell.I) []cell.I {
	s := []cell.I{}

	for list != pair.Null {
		p, ok := list.(*pair.T)
		if !ok {
			panic(fault.Type(list, "list"))
		}

		s = append(s, pair.Car(p))

		list = pair.Cdr(p)
	}

	return s
}

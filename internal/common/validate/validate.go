// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists passed to primitives.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
)

// Variadic checks that args holds at least min values and returns at
// most max of them along with whatever remains.
func Variadic(args []cell.I, min, max int) ([]cell.I, []cell.I) {
	if len(args) < min {
		s := Count(min, "argument", "s")
		if min != max {
			s = "at least " + s
		}

		panic(fault.Arity(fmt.Sprintf("expected %s, passed %d", s, len(args))))
	}

	if len(args) <= max {
		return args, nil
	}

	return args[:max], args[max:]
}

// Fixed checks that args holds between min and max values.
func Fixed(args []cell.I, min, max int) []cell.I {
	expected, rest := Variadic(args, min, max)
	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		panic(fault.Arity(fmt.Sprintf("expected %s, passed %d", s, len(args))))
	}

	return expected
}

// Count returns n and label, pluralized with p if n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

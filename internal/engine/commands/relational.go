// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/boolean"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/num"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
	"github.com/michaelmacinnis/vau/internal/common/validate"
)

// Numbers compare with numbers and strings with strings.
func compare(args []cell.I) int {
	v := validate.Fixed(args, 2, 2)

	if str.Is(v[0]) {
		return strings.Compare(str.To(v[0]).String(), str.To(v[1]).String())
	}

	if num.Is(v[0]) {
		return num.To(v[0]).Cmp(v[1])
	}

	panic(fault.Type(v[0], "number or string"))
}

func eq(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0] == v[1])
}

func equal(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0].Equal(v[1]))
}

func ge(args ...cell.I) cell.I {
	return boolean.Bool(compare(args) >= 0)
}

func gt(args ...cell.I) cell.I {
	return boolean.Bool(compare(args) > 0)
}

func le(args ...cell.I) cell.I {
	return boolean.Bool(compare(args) <= 0)
}

func lt(args ...cell.I) cell.I {
	return boolean.Bool(compare(args) < 0)
}

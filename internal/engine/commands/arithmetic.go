// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/num"
	"github.com/michaelmacinnis/vau/internal/common/validate"
)

func add(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.To(v[0]).Add(v[1])
}

func div(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.To(v[0]).Div(v[1])
}

func mul(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.To(v[0]).Mul(v[1])
}

func sub(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.To(v[0]).Sub(v[1])
}

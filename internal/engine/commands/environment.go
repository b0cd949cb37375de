// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/boolean"
	"github.com/michaelmacinnis/vau/internal/common/type/env"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/common/validate"
)

func boundp(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(scope.To(v[1]).IsBound(sym.To(v[0])))
}

// (%make-environment [parent])
func makeEnvironment(args ...cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	if len(v) == 0 {
		return env.New(nil)
	}

	return env.New(scope.To(v[0]))
}

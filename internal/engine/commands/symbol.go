// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/str"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/common/validate"
)

func classSymbol(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.To(v[0]).Class()
}

func functionSymbol(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.To(v[0]).Function()
}

func intern(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(str.To(v[0]).String())
}

func keywordSymbol(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.To(v[0]).Keyword()
}

func symbolName(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(sym.To(v[0]).String())
}

func variableSymbol(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.To(v[0]).Variable()
}

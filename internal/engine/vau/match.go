// Released under an MIT license. See LICENSE.

package vau

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/ignore"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

type binding struct {
	k *sym.T
	v cell.I
}

// Match destructures value against the definiend tree and binds the
// resulting symbols in e. Nothing is bound unless the whole tree matches.
// Match returns value.
func Match(definiend, value cell.I, e scope.I) cell.I {
	e = scope.To(e)

	bs := []binding{}
	match(definiend, value, &bs)

	for _, b := range bs {
		e.Put(b.k, b.v)
	}

	return value
}

func match(d, v cell.I, bs *[]binding) {
	for {
		switch {
		case d == pair.Null:
			if v != pair.Null {
				panic(fault.Match(d, v))
			}

			return

		case d == ignore.Ignore:
			return
		}

		switch t := d.(type) {
		case *sym.T:
			if !t.IsKeyword() {
				*bs = append(*bs, binding{t, v})
			} else if v != d {
				panic(fault.Match(d, v))
			}

			return

		case *pair.T:
			if !pair.Is(v) {
				panic(fault.Match(d, v))
			}

			match(pair.Car(t), pair.Car(v), bs)

			d, v = pair.Cdr(t), pair.Cdr(v)

		default:
			panic(fault.Type(d, "definiend tree"))
		}
	}
}

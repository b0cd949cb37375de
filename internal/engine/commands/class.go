// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/interface/operator"
	"github.com/michaelmacinnis/vau/internal/common/type/boolean"
	"github.com/michaelmacinnis/vau/internal/common/type/class"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
	"github.com/michaelmacinnis/vau/internal/common/validate"
)

func addMethod(args ...cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	return class.To(v[0]).AddMethod(sym.To(v[1]), operator.To(v[2]))
}

func className(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return class.To(v[0]).Symbol()
}

func classOf(args ...cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return class.Of(v[0])
}

func findMethod(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return class.To(v[0]).FindMethod(sym.To(v[1]))
}

// (%make-instance class . slot-initializers)
func makeInstance(args ...cell.I) cell.I {
	v, inits := validate.Variadic(args, 1, 1)

	return class.To(v[0]).Make(inits)
}

func makeStandardClass(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return class.New(sym.To(v[0]), class.To(v[1]))
}

func reinitializeStandardClass(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	k := class.To(v[0])
	k.Reinitialize(class.To(v[1]))

	return k
}

func setSlotValue(args ...cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	return instance(v[0]).SetSlotValue(slotName(v[1]), v[2])
}

func slotBoundp(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(instance(v[0]).IsSlotBound(slotName(v[1])))
}

// Conditions have slots too, so %slot-value accepts anything slotted.
func slotValue(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	o, ok := v[0].(class.Slotted)
	if !ok {
		panic(fault.Type(v[0], "standard-object"))
	}

	n := slotName(v[1])

	s, ok := o.SlotValue(n)
	if !ok {
		panic(fault.Errorf("slot %s is unbound in %s", n, literal.String(v[0])))
	}

	return s
}

func subclassp(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(class.To(v[0]).IsSubclass(class.To(v[1])))
}

func typep(args ...cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(class.Of(v[0]).IsSubclass(class.To(v[1])))
}

func instance(c cell.I) *class.Instance {
	if o, ok := c.(*class.Instance); ok {
		return o
	}

	panic(fault.Type(c, "standard-object"))
}

func slotName(c cell.I) string {
	return sym.To(c).String()
}

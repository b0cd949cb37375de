// Released under an MIT license. See LICENSE.

// Package class provides vau's minimal class system.
//
// Every value has a class. Built-in values are classified by their type
// name. Standard classes are created at runtime, have a single superclass,
// and make standard objects with named slots. Any class may hold methods.
package class

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

// T (class) classifies values and holds methods.
type T struct {
	name     *sym.T
	super    *T
	methods  map[*sym.T]cell.I
	standard bool
}

type class = T

// Slotted is anything with named slots: standard objects and conditions.
type Slotted interface {
	SlotValue(k string) (cell.I, bool)
}

//nolint:gochecknoglobals
var (
	builtins = map[string]*class{}
	ordered  = []*class{}

	// Object is the root of the class hierarchy.
	Object = builtin("object", nil)

	// StandardObject is the superclass of every standard class.
	StandardObject = builtin("standard-object", Object)
)

// Builtins returns the built-in classes in order of definition.
func Builtins() []*class {
	return ordered
}

// Of returns the class of the value c.
func Of(c cell.I) *class {
	if o, ok := c.(*Instance); ok {
		return o.class
	}

	if k, ok := builtins[c.Name()]; ok {
		return k
	}

	return Object
}

// New creates a standard class named n with the superclass super.
func New(n *sym.T, super *class) *class {
	k := &class{name: n, methods: map[*sym.T]cell.I{}, standard: true}
	k.Reinitialize(super)

	return k
}

// AddMethod adds (or replaces) the method named n.
func (k *class) AddMethod(n *sym.T, m cell.I) cell.I {
	k.methods[n] = m

	return m
}

// Equal returns true if c is the same class as k.
func (k *class) Equal(c cell.I) bool {
	return c == cell.I(k)
}

// FindMethod searches k and its superclasses for the method named n.
// An unbound-method-error is raised if there is no such method.
func (k *class) FindMethod(n *sym.T) cell.I {
	for c := k; c != nil; c = c.super {
		if m, ok := c.methods[n]; ok {
			return m
		}
	}

	panic(fault.Method(k, n))
}

// IsSubclass returns true if k is super or a descendant of super.
func (k *class) IsSubclass(super *class) bool {
	for c := k; c != nil; c = c.super {
		if c == super {
			return true
		}
	}

	return false
}

// Literal returns the printed representation of the class k.
func (k *class) Literal() string {
	return "#[class " + k.name.String() + "]"
}

// Make creates an instance of the standard class k. The initializers
// alternate between slot names and values.
func (k *class) Make(inits []cell.I) *Instance {
	if !k.standard {
		panic(fault.Type(k, "standard-class"))
	}

	if len(inits)%2 != 0 {
		panic(fault.Arity("slot initializers must be name value pairs"))
	}

	o := &Instance{class: k, slots: map[string]cell.I{}}

	for i := 0; i < len(inits); i += 2 {
		o.slots[sym.To(inits[i]).String()] = inits[i+1]
	}

	return o
}

// Name returns the type name for the class k.
func (k *class) Name() string {
	if k.standard {
		return "standard-class"
	}

	return "built-in-class"
}

// Reinitialize sets the superclass of the standard class k.
func (k *class) Reinitialize(super *class) {
	if !k.standard {
		panic(fault.Type(k, "standard-class"))
	}

	if super == nil {
		super = StandardObject
	}

	if !super.IsSubclass(StandardObject) {
		panic(fault.Type(super, "standard-class"))
	}

	if super.IsSubclass(k) {
		panic(fault.Errorf("%s cannot be its own superclass", k.name.String()))
	}

	k.super = super
}

// Symbol returns the name of the class k.
func (k *class) Symbol() *sym.T {
	return k.name
}

// Super returns the superclass of k. The root class has none.
func (k *class) Super() *class {
	return k.super
}

// Instance is a standard object.
type Instance struct {
	class *class
	slots map[string]cell.I
}

// Equal returns true if c is the same instance as o.
func (o *Instance) Equal(c cell.I) bool {
	return c == cell.I(o)
}

// IsSlotBound returns true if the slot k has a value.
func (o *Instance) IsSlotBound(k string) bool {
	_, ok := o.slots[k]

	return ok
}

// Literal returns the printed representation of the instance o.
func (o *Instance) Literal() string {
	return "#[" + o.class.name.String() + "]"
}

// Name returns the name of the instance's class.
func (o *Instance) Name() string {
	return o.class.name.String()
}

// SetSlotValue sets the value of the slot k.
func (o *Instance) SetSlotValue(k string, v cell.I) cell.I {
	o.slots[k] = v

	return v
}

// SlotValue returns the value of the slot k and whether it is bound.
func (o *Instance) SlotValue(k string) (cell.I, bool) {
	v, ok := o.slots[k]

	return v, ok
}

// Functions specific to class.

// Is returns true if c is a class.
func Is(c cell.I) bool {
	_, ok := c.(*class)

	return ok
}

// To returns a *class if c is a class; Otherwise it raises a type-error.
func To(c cell.I) *class {
	if t, ok := c.(*class); ok {
		return t
	}

	panic(fault.Type(c, "class"))
}

func builtin(n string, super *class) *class {
	k := &class{name: sym.Cls(n), super: super, methods: map[*sym.T]cell.I{}}

	builtins[n] = k
	ordered = append(ordered, k)

	return k
}

func init() { //nolint:gochecknoinits
	builtin("boolean", Object)
	builtin("environment", Object)
	builtin("ignore", Object)
	builtin("number", Object)
	builtin("string", Object)
	builtin("symbol", Object)
	builtin("void", Object)

	list := builtin("list", Object)
	builtin("cons", list)
	builtin("nil", list)

	k := builtin("class", Object)
	builtin("built-in-class", k)
	builtin("standard-class", k)

	op := builtin("operator", Object)
	builtin("built-in-operator", op)
	builtin("fexpr", op)
	builtin("function", op)

	builtin("continuation", Object)
	builtin("suspension", Object)

	condition := builtin("condition", Object)
	e := builtin(fault.Error, condition)

	for _, n := range []string{
		fault.ArityError,
		fault.MatchError,
		fault.PromptNotFound,
		fault.TypeError,
		fault.UnboundMethod,
		fault.UnboundSymbol,
	} {
		builtin(n, e)
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t class

	// The class type is a cell.
	_ = cell.I(&t)

	// The class type has a literal representation.
	_ = literal.I(&t)

	// An instance is a cell with slots.
	_ = cell.I(&Instance{})
	_ = Slotted(&Instance{})
}

// Released under an MIT license. See LICENSE.

// Package num provides vau's number type.
//
// Numbers are a thin cell wrapper around goarith's numeric tower. Integers
// promote to big integers on overflow and mixed arithmetic produces floats.
package num

import (
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/vau/internal/common"
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/nukata/goarith"
)

const name = "number"

// T (num) wraps a goarith.Number.
type T struct {
	n goarith.Number
}

type num = T

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return &num{goarith.AsNumber(i)}
}

// Float creates a num from the float f.
func Float(f float64) cell.I {
	return &num{goarith.AsNumber(f)}
}

// Parse creates a num from the text s, if s is a number.
func Parse(s string) (cell.I, bool) {
	if !numeric(s) {
		return nil, false
	}

	z := new(big.Int)
	if _, ok := z.SetString(s, 10); ok {
		return &num{goarith.AsNumber(z)}, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}

	return nil, false
}

// Add returns the sum of n and c.
func (n *num) Add(c cell.I) cell.I {
	return &num{n.n.Add(To(c).n)}
}

// Cmp compares n and c returning -1, 0, or +1.
func (n *num) Cmp(c cell.I) int {
	return n.n.Cmp(To(c).n)
}

// Div returns the quotient of n and c.
func (n *num) Div(c cell.I) cell.I {
	d := To(c)
	if d.IsZero() {
		panic(fault.New("division by zero"))
	}

	return &num{n.n.RQuo(d.n)}
}

// Equal returns true if c is a number with the same value as n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.n.Cmp(To(c).n) == 0
}

// IsZero returns true if n is zero.
func (n *num) IsZero() bool {
	return n.n.Cmp(goarith.AsNumber(0)) == 0
}

// Literal returns the printed representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Mul returns the product of n and c.
func (n *num) Mul(c cell.I) cell.I {
	return &num{n.n.Mul(To(c).n)}
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.n.String()
}

// Sub returns the difference of n and c.
func (n *num) Sub(c cell.I) cell.I {
	return &num{n.n.Sub(To(c).n)}
}

// Functions specific to num.

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *num if c is a num; Otherwise it raises a type-error.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(fault.Type(c, name))
}

// numeric rules out words like "inf" and "nan" that strconv would accept.
func numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s != "" && s[0] == '.' {
		s = s[1:]
	}

	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}

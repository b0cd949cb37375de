// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all vau values.
package cell

// I (cell) is the basic unit of storage in vau. Every value the evaluator
// can see, from symbols to environments to conditions, is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}

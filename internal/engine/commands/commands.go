// Released under an MIT license. See LICENSE.

// Package commands provides vau's primitive operators and functions.
package commands

import (
	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/scope"
)

// Operators returns the built-in operators. These receive their operand
// unevaluated along with the calling environment.
func Operators() map[string]func(cell.I, scope.I) cell.I {
	return map[string]func(cell.I, scope.I) cell.I{
		"%def":   def,
		"%if":    ifThenElse,
		"%progn": progn,
		"%vau":   makeFexpr,
	}
}

// Functions returns the alien functions. These receive their evaluated
// arguments spread into a slice.
func Functions() map[string]func(...cell.I) cell.I {
	return map[string]func(...cell.I) cell.I{
		"%*":                           mul,
		"%+":                           add,
		"%-":                           sub,
		"%/":                           div,
		"%<":                           lt,
		"%<=":                          le,
		"%=":                           equal,
		"%>":                           gt,
		"%>=":                          ge,
		"%add-method":                  addMethod,
		"%boundp":                      boundp,
		"%car":                         car,
		"%catch":                       catch,
		"%cdr":                         cdr,
		"%class-name":                  className,
		"%class-of":                    classOf,
		"%class-symbol":                classSymbol,
		"%cons":                        cons,
		"%continuation-trace":          continuationTrace,
		"%eq":                          eq,
		"%eval":                        eval,
		"%find-method":                 findMethod,
		"%function-symbol":             functionSymbol,
		"%intern":                      intern,
		"%keyword-symbol":              keywordSymbol,
		"%make-environment":            makeEnvironment,
		"%make-instance":               makeInstance,
		"%make-standard-class":         makeStandardClass,
		"%panic":                       raisePanic,
		"%push-prompt":                 pushPrompt,
		"%push-subcont":                pushSubcont,
		"%reinitialize-standard-class": reinitializeStandardClass,
		"%set-slot-value":              setSlotValue,
		"%slot-bound-p":                slotBoundp,
		"%slot-value":                  slotValue,
		"%subclassp":                   subclassp,
		"%symbol-name":                 symbolName,
		"%take-subcont":                takeSubcont,
		"%throw":                       throw,
		"%typep":                       typep,
		"%unwind-protect":              unwindProtect,
		"%unwrap":                      unwrap,
		"%variable-symbol":             variableSymbol,
		"%wrap":                        wrap,
		"%write-to-string":             writeToString,
	}
}

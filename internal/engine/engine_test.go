package engine

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/interface/literal"
	"github.com/michaelmacinnis/vau/internal/common/type/fault"
	"github.com/michaelmacinnis/vau/internal/common/type/pair"
	"github.com/michaelmacinnis/vau/internal/engine/control"
)

func run(t *testing.T, text string) (cell.I, error) {
	t.Helper()

	if err := Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	return EvaluateString("test", text)
}

func check(t *testing.T, text, expected string) {
	t.Helper()

	v, err := run(t, text)
	if err != nil {
		t.Fatalf("Evaluating %q: %v", text, err)
	}

	if actual := literal.String(v); actual != expected {
		t.Fatalf("Expected %q to evaluate to %s; got %s", text, expected, actual)
	}
}

func cause(t *testing.T, text string) cell.I {
	t.Helper()

	_, err := run(t, text)

	var p *fault.Panic
	if !errors.As(err, &p) {
		t.Fatalf("Expected %q to panic; got %v", text, err)
	}

	return p.Cause()
}

func kind(t *testing.T, text, expected string) {
	t.Helper()

	f, ok := cause(t, text).(*fault.T)
	if !ok || !f.IsKind(expected) {
		t.Fatalf("Expected %q to raise %s; got %v", text, expected, f)
	}
}

func TestArithmetic(t *testing.T) {
	check(t, "(%+ 40 2)", "42")
	check(t, "(%- 40 2)", "38")
	check(t, "(%* 4294967296 4294967296)", "18446744073709551616")
	check(t, "(%= (%/ 6 3) 2)", "#t")
	check(t, "(%< 1 2)", "#t")
	check(t, "(%>= 1 2)", "#f")
	check(t, `(%<= "abc" "abd")`, "#t")

	kind(t, "(%/ 1 0)", fault.Error)
	kind(t, `(%+ 1 "one")`, fault.TypeError)
	kind(t, "(%+ 1)", fault.ArityError)
}

func TestCatchAndThrow(t *testing.T) {
	check(t, "(catch :tag (%+ 1 (throw :tag 41)))", "41")
	check(t, "(catch :outer (catch :inner (throw :outer 1)) 2)", "1")

	_, err := run(t, "(throw :nowhere 1)")

	var x *control.Exit
	if !errors.As(err, &x) {
		t.Fatalf("Expected an uncaught throw to be an error; got %v", err)
	}
}

func TestClasses(t *testing.T) {
	check(t, `
(def #^point (%make-standard-class 'point #^standard-object))
(def p (%make-instance #^point 'x 1 'y 2))
(%add-method #^point 'sum (lambda (p) (%+ (%slot-value p 'x) (%slot-value p 'y))))
(list
  (%slot-value p 'x)
  (%slot-bound-p p 'z)
  (%typep p #^standard-object)
  (%typep 1 #^number)
  (%subclassp #^point #^object)
  (%class-name (%class-of ()))
  (%class-name (%class-of #'car))
  ((%find-method (%class-of p) 'sum) p))
`, "(1 #f #t #t #t #^nil #^function 3)")

	kind(t, "(%find-method #^object 'nothing)", fault.UnboundMethod)
	kind(t, "(%make-instance #^number)", fault.TypeError)
}

func TestDefun(t *testing.T) {
	check(t, "(defun add1 (x) (%+ x 1)) (add1 41)", "42")
	check(t, "(defun f (a (b . c)) (list a b c)) (f 1 '(2 3))", "(1 2 (3))")
}

func TestDelimitedContinuations(t *testing.T) {
	check(t, `
(%+ 1 (push-prompt :p
        (%+ 10 (take-subcont :p k
                 (push-subcont k (push-subcont k 100))))))
`, "121")

	check(t, `
(def k (push-prompt :p (list :a (take-subcont :p k k) :c)))
(list (push-subcont k :b) (push-subcont k :d))
`, "((:a :b :c) (:a :d :c))")

	v, err := run(t, "(push-prompt :p (%+ 1 (take-subcont :p k (%continuation-trace k))))")
	if err != nil {
		t.Fatal(err)
	}

	if !pair.Is(v) {
		t.Fatalf("Expected a list of traced forms; got %s", literal.String(v))
	}

	kind(t, "(take-subcont :nowhere k k)", fault.PromptNotFound)
}

func TestEnvironments(t *testing.T) {
	check(t, `
(def #'here (vau () env env))
(def e (%make-environment (here)))
(list
  (%boundp 'x e)
  (progn (%eval '(def x 1) e) (%boundp 'x e))
  (%boundp 'x (%make-environment e))
  (%eval 'x e)
  (%boundp 'x (here)))
`, "(#f #t #t 1 #f)")

	kind(t, "(%eval '(%+ 1 2) (%make-environment))", fault.UnboundSymbol)
}

func TestErrorHandler(t *testing.T) {
	check(t, `
(def #'error (lambda (c) (%class-name (%class-of c))))
(list undefined)
`, "(#^unbound-symbol-error)")

	check(t, `
(def #'error (lambda (c) (%slot-value c 'symbol)))
(list not-here)
`, "(not-here)")

	// The handler's value replaces the failed evaluation.
	check(t, `
(def #'error (lambda (c) 0))
(%+ 1 (%car 5))
`, "1")

	// A failed operator lookup is handled where it happens. The handler's
	// value becomes the operator and the operands are still evaluated.
	check(t, `
(def #'error (lambda (c) #'list))
(nope (%+ 0 1) 2)
`, "(1 2)")
}

func TestErrorHandlerFaults(t *testing.T) {
	// A fault in the handler is not handled again.
	kind(t, `
(def #'error (lambda (c) (%symbol-name (%slot-value c 'message))))
(%car 1)
`, fault.TypeError)

	// The handler runs again for the next fault.
	v, err := EvaluateString("test", `
(def #'error (lambda (c) :handled))
(%car 1)
`)
	if err != nil {
		t.Fatalf("Expected the handler to run; got %v", err)
	}

	if actual := literal.String(v); actual != ":handled" {
		t.Fatalf("Expected :handled; got %s", actual)
	}
}

func TestConditionSlots(t *testing.T) {
	check(t, `
(def #'error (lambda (c)
  (list
    (%= (%slot-value c 'message) "type error: 1 is not a cons")
    (%= "type error: 1 is not a cons" (%slot-value c 'message))
    (%intern (%slot-value c 'expected-type))
    (%class-name (%class-of (%slot-value c 'message)))
    (%< (%slot-value c 'expected-type) "d"))))
(%car 1)
`, "(#t #t cons #^string #t)")

	kind(t, "(%intern 1)", fault.TypeError)
	kind(t, `(%< "a" 1)`, fault.TypeError)
}

func TestIf(t *testing.T) {
	check(t, "(if (%< 1 2) :yes :no)", ":yes")
	check(t, "(if (%eq 'a 'b) :yes :no)", ":no")

	kind(t, "(if () 1 2)", fault.TypeError)
}

func TestLisp2(t *testing.T) {
	check(t, "(def x 1) (defun x () 2) (list x (x))", "(1 2)")
}

func TestMatchErrors(t *testing.T) {
	kind(t, "(def (a b) '(1 2 3))", fault.MatchError)
	kind(t, "(def :k :j)", fault.MatchError)
	check(t, "(def (a . b) '(1 2 3)) (list a b)", "(1 (2 3))")
}

func TestPanic(t *testing.T) {
	c := cause(t, "(%panic 1)")
	if literal.String(c) != "1" {
		t.Fatalf("Expected the panic's cause to be 1; got %s", literal.String(c))
	}

	// A handler never sees a panic.
	c = cause(t, "(def #'error (lambda (c) 0)) (%panic :stop)")
	if literal.String(c) != ":stop" {
		t.Fatalf("Expected the panic's cause to be :stop; got %s", literal.String(c))
	}

	kind(t, "undefined", fault.UnboundSymbol)
}

func TestPrimitives(t *testing.T) {
	check(t, "(progn)", "#void")
	check(t, "'(a . b)", "(a . b)")
	check(t, "(%cons 1 2)", "(1 . 2)")
	check(t, "(%cdr '(1 2))", "(2)")
	check(t, `(%symbol-name 'abc)`, `"abc"`)
	check(t, `(%intern "xyz")`, "xyz")
	check(t, "(%function-symbol 'car)", "#'car")
	check(t, "(%keyword-symbol 'k)", ":k")
	check(t, "(%class-symbol 'k)", "#^k")
	check(t, "(%variable-symbol :k)", "k")
	check(t, `(%write-to-string '(1 "a" :k))`, `"(1 \"a\" :k)"`)
	check(t, "(%= '(1 (2)) (list 1 (list 2)))", "#t")
	check(t, "(%eq '(1) '(1))", "#f")
	check(t, "((unwrap #'list) a b)", "(a b)")
	check(t, "((wrap (unwrap #'list)) 1 2)", "(1 2)")
	check(t, "(def #'here (vau () env env)) (%eval '(%+ 1 2) (%make-environment (here)))", "3")
}

func TestUnwindProtect(t *testing.T) {
	check(t, `
(def box (%make-instance (%make-standard-class 'box #^standard-object)))
(list
  (catch :t (unwind-protect (throw :t 1) (%set-slot-value box 'cleaned #t)))
  (%slot-value box 'cleaned)
  (unwind-protect 2 (%set-slot-value box 'again #t))
  (%slot-value box 'again))
`, "(1 #t 2 #t)")
}

func TestArguments(t *testing.T) {
	if err := Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	Arguments([]string{"a", "b"})

	v, err := EvaluateString("test", "*arguments*")
	if err != nil {
		t.Fatal(err)
	}

	if actual := literal.String(v); actual != `("a" "b")` {
		t.Fatalf(`Expected ("a" "b"); got %s`, actual)
	}
}

func TestNames(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := e.Evaluate(pair.Null); err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, n := range e.Names() {
		found[n] = true
	}

	for _, n := range []string{"%car", "defun", "+root-prompt+"} {
		if !found[n] {
			t.Errorf("Expected %s among the bound names", n)
		}
	}
}

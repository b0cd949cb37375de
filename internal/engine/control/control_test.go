package control

import (
	"testing"

	"github.com/michaelmacinnis/vau/internal/common/interface/cell"
	"github.com/michaelmacinnis/vau/internal/common/type/num"
	"github.com/michaelmacinnis/vau/internal/common/type/sym"
)

func TestBindWithoutSuspension(t *testing.T) {
	ran := false

	v := Bind(func() cell.I {
		return num.Int(1)
	}, func(c cell.I) cell.I {
		ran = true

		return num.Int(2).(*num.T).Add(c)
	}, nil)

	if !ran || !v.Equal(num.Int(3)) {
		t.Fatalf("Expected 3; got %v", v)
	}
}

func TestBindDefersUntilResumed(t *testing.T) {
	prompt := sym.Kw("p")
	calls := 0

	v := PushPrompt(prompt, func() cell.I {
		return Bind(func() cell.I {
			return TakeSubcont(prompt, func(k *Continuation) cell.I {
				return k
			})
		}, func(c cell.I) cell.I {
			calls++

			return num.Int(1).(*num.T).Add(c)
		}, NewTrace(prompt, nil))
	}, nil)

	if calls != 0 {
		t.Fatal("The next step should not run before the continuation is resumed")
	}

	k, ok := v.(*Continuation)
	if !ok {
		t.Fatalf("Expected a continuation; got %v", v)
	}

	for _, n := range []int64{10, 20} {
		r := PushSubcont(k, func() cell.I {
			return num.Int(n)
		})

		if !r.Equal(num.Int(n + 1)) {
			t.Fatalf("Expected %d; got %v", n+1, r)
		}
	}

	if calls != 2 {
		t.Fatalf("Expected two resumptions; got %d", calls)
	}

	if traces := k.Traces(); len(traces) != 1 || traces[0].Form != cell.I(prompt) {
		t.Fatalf("Expected one trace marker; got %v", traces)
	}
}

func TestNestedPrompts(t *testing.T) {
	inner, outer := sym.Kw("inner"), sym.Kw("outer")

	v := PushPrompt(outer, func() cell.I {
		return PushPrompt(inner, func() cell.I {
			return TakeSubcont(outer, func(*Continuation) cell.I {
				return num.Int(7)
			})
		}, nil)
	}, nil)

	if !v.Equal(num.Int(7)) {
		t.Fatalf("Expected the outer prompt's handler to run; got %v", v)
	}

	v = PushPrompt(inner, func() cell.I {
		return TakeSubcont(outer, func(*Continuation) cell.I {
			return num.Int(7)
		})
	}, nil)

	if !Suspended(v) {
		t.Fatal("A suspension for another prompt should pass through")
	}
}

func TestCatchAndThrow(t *testing.T) {
	tag := sym.Kw("tag")

	v := Catch(tag, func() cell.I {
		Throw(tag, num.Int(5))

		return num.Int(0)
	}, nil)

	if !v.Equal(num.Int(5)) {
		t.Fatalf("Expected 5; got %v", v)
	}

	defer func() {
		x, ok := recover().(*Exit)
		if !ok || x.Tag != cell.I(sym.Kw("other")) {
			t.Fatalf("Expected an uncaught exit; got %v", x)
		}
	}()

	Catch(tag, func() cell.I {
		Throw(sym.Kw("other"), num.Int(5))

		return nil
	}, nil)
}

func TestProtect(t *testing.T) {
	tag := sym.Kw("tag")
	cleaned := 0

	cleanup := func() cell.I {
		cleaned++

		return nil
	}

	v := Protect(func() cell.I { return num.Int(1) }, cleanup, nil)
	if !v.Equal(num.Int(1)) || cleaned != 1 {
		t.Fatalf("Expected 1 and one cleanup; got %v and %d", v, cleaned)
	}

	Catch(tag, func() cell.I {
		return Protect(func() cell.I {
			Throw(tag, num.Int(2))

			return nil
		}, cleanup, nil)
	}, nil)

	if cleaned != 2 {
		t.Fatalf("Expected cleanup on a nonlocal exit; got %d", cleaned)
	}

	prompt := sym.Kw("p")

	k := PushPrompt(prompt, func() cell.I {
		return Protect(func() cell.I {
			return TakeSubcont(prompt, func(k *Continuation) cell.I {
				return k
			})
		}, cleanup, nil)
	}, nil)

	if cleaned != 2 {
		t.Fatal("Expected no cleanup when suspending")
	}

	PushSubcont(k.(*Continuation), func() cell.I { return num.Int(3) })

	if cleaned != 3 {
		t.Fatalf("Expected cleanup when the resumed computation finishes; got %d", cleaned)
	}
}

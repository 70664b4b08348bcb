package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestErrorKindIs tests that errors.Is matches exceptions against their
// kinds and nothing else.
func TestErrorKindIs(t *testing.T) {
	kinds := []ErrorKind{SyntaxError, AttributeNotFound, ArgumentOutOfRange, MethodNotImplemented, TypeMismatch}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			e := NewExceptionf(k, "test")
			wrapped := fmt.Errorf("wrapped: %w", e)
			for _, other := range kinds {
				want := other == k
				if errors.Is(e, other) != want {
					t.Errorf("errors.Is(%v, %v) != %v", e, other, want)
				}
				if errors.Is(wrapped, other) != want {
					t.Errorf("errors.Is(%v, %v) != %v through wrapping", wrapped, other, want)
				}
			}
		})
	}
}

// TestExceptionError tests exception messages.
func TestExceptionError(t *testing.T) {
	cases := map[string]struct {
		e    *Exception
		want string
	}{
		"Plain":    {NewException(AttributeNotFound, "no x"), "AttributeNotFound: no x"},
		"Located":  {syntaxErrorf(token{Line: 3, Col: 7}, "bad %s", "thing"), "SyntaxError at 3:7: bad thing"},
		"BadKind":  {NewException(ErrorKind(42), "?"), "ErrorKind(42): ?"},
		"Argument": {NewExceptionf(ArgumentOutOfRange, "#%d", 2), "ArgumentOutOfRange: #2"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.e.Error(); got != c.want {
				t.Errorf("wrong message: have %q, want %q", got, c.want)
			}
		})
	}
}

// TestExceptionStack tests that exceptions record the methods they unwind
// through, innermost first.
func TestExceptionStack(t *testing.T) {
	vm := NewVM()
	vm.DisableTrace()
	vm.Sink = SinkFunc(func(string) error { return nil })
	_, err := vm.DoString("inner = {nope}.method\nouter = {inner}.method\nouter")
	var e *Exception
	if !errors.As(err, &e) {
		t.Fatalf("expected an exception, got %v", err)
	}
	if e.Kind != AttributeNotFound {
		t.Errorf("wrong kind %v", e.Kind)
	}
	if len(e.Stack) != 2 {
		t.Fatalf("wrong stack depth %d: %v", len(e.Stack), e.Stack)
	}
	for i, want := range []string{"{nope}", "{inner}"} {
		if e.Stack[i].Method != want {
			t.Errorf("wrong method at %d: have %s, want %s", i, e.Stack[i].Method, want)
		}
		if e.Stack[i].Receiver != vm.Main.String() {
			t.Errorf("wrong receiver at %d: have %s, want %s", i, e.Stack[i].Receiver, vm.Main)
		}
	}
	r := e.Report()
	if !strings.HasPrefix(r, e.Error()) || !strings.Contains(r, "\n\t{nope} on VeloObject('main-script')") {
		t.Errorf("wrong report:\n%s", r)
	}
}

// TestStubMethod tests that a method with no body raises
// MethodNotImplemented.
func TestStubMethod(t *testing.T) {
	vm := NewVM()
	vm.DisableTrace()
	vm.Object.SetAttr("later", vm.NewMethod("later", nil))
	_, err := vm.DoString(`later`)
	if !errors.Is(err, MethodNotImplemented) {
		t.Errorf("stub gave %v", err)
	}
}

// TestArgAt tests native argument helpers.
func TestArgAt(t *testing.T) {
	vm := NewVM()
	obj := vm.NewString("x")
	meth := vm.NewMethod("m", nil)
	args := []Value{obj, meth}
	cases := map[string]struct {
		n       int
		object  bool
		wantErr error
	}{
		"First":        {0, false, nil},
		"FirstObject":  {0, true, nil},
		"Method":       {1, false, nil},
		"MethodObject": {1, true, TypeMismatch},
		"Past":         {2, false, ArgumentOutOfRange},
		"Negative":     {-1, false, ArgumentOutOfRange},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			if c.object {
				_, err = ObjectArgAt(args, c.n, "test")
			} else {
				_, err = ArgAt(args, c.n, "test")
			}
			if c.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("wrong error: have %v, want %v", err, c.wantErr)
			}
		})
	}
}

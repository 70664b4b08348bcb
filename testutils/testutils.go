// Package testutils provides utilities for testing Velo code in Go.
package testutils

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/velo"
)

// testVM is the VM used for tests that don't print.
var testVM *velo.VM

var testVMInit sync.Once

// VM returns a VM for testing Velo. The VM is shared by all tests that use
// this package, and its output is discarded.
func VM() *velo.VM {
	testVMInit.Do(ResetVM)
	return testVM
}

// ResetVM reinitializes the VM returned by VM. It is not safe to call this in
// parallel tests.
func ResetVM() {
	testVM, _ = NewVM()
}

// NewVM creates a VM with tracing disabled whose output lines are collected
// in the returned builder, each followed by a newline.
func NewVM() (*velo.VM, *strings.Builder) {
	vm := velo.NewVM()
	vm.DisableTrace()
	out := &strings.Builder{}
	vm.Sink = velo.SinkFunc(func(line string) error {
		out.WriteString(line)
		out.WriteByte('\n')
		return nil
	})
	return vm, out
}

// A SourceTestCase is a test case containing Velo source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the Velo source code to execute.
	Source string
	// Pass is a predicate taking the result of executing Source, everything
	// Source printed, and the error it raised. If Pass returns false, then
	// the test fails.
	Pass func(result velo.Value, output string, err error) bool
}

// TestFunc returns a test function for the test case. Each run uses a fresh
// VM from NewVM.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		vm, out := NewVM()
		r, err := vm.DoString(c.Source)
		if c.Pass(r, out.String(), err) {
			return
		}
		var e *velo.Exception
		if errors.As(err, &e) {
			t.Errorf("%s: %q produced wrong result; an exception occurred:\n%s\noutput:\n%s", name, c.Source, e.Report(), out.String())
			return
		}
		t.Errorf("%s: %q produced wrong result; got %v (err %v), output:\n%s", name, c.Source, r, err, out.String())
	}
}

// PassOutput returns a Pass function for a SourceTestCase that predicates on
// the exact printed output. The evaluation must succeed.
func PassOutput(want string) func(velo.Value, string, error) bool {
	return func(result velo.Value, output string, err error) bool {
		return err == nil && output == want
	}
}

// PassPayload returns a Pass function for a SourceTestCase that predicates on
// the result being a string-backed object with the given payload.
func PassPayload(want string) func(velo.Value, string, error) bool {
	return func(result velo.Value, output string, err error) bool {
		if err != nil {
			return false
		}
		obj, ok := result.(*velo.Object)
		if !ok || obj == nil {
			return false
		}
		p, ok := obj.Payload()
		return ok && p == want
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff the evaluation raised an exception of the given kind.
func PassFailure(kind velo.ErrorKind) func(velo.Value, string, error) bool {
	return func(result velo.Value, output string, err error) bool {
		return errors.Is(err, kind)
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff the evaluation did not raise an exception.
func PassSuccess() func(velo.Value, string, error) bool {
	return func(result velo.Value, output string, err error) bool {
		return err == nil
	}
}

// CheckAttrs is a testing helper to check whether an object has exactly the
// attributes we expect.
func CheckAttrs(t *testing.T, obj *velo.Object, attrs []string) {
	t.Helper()
	checked := make(map[string]bool, len(attrs))
	for _, name := range attrs {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			v, ok := obj.GetLocalAttr(name)
			if !ok {
				t.Fatal("no attribute", name)
			}
			if v == nil {
				t.Fatal("attribute", name, "is nil")
			}
		})
	}
	for _, name := range obj.AttrNames() {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected attribute", name)
			}
		})
	}
}

// CheckParents is a testing helper to check that an object has exactly the
// given parents in order.
func CheckParents(t *testing.T, obj *velo.Object, parents ...*velo.Object) {
	t.Helper()
	p := obj.Parents()
	if len(p) != len(parents) {
		t.Fatalf("%v has %d parents %v, want %d", obj, len(p), p, len(parents))
	}
	for i, v := range parents {
		if p[i] != v {
			t.Errorf("wrong parent at %d: want %v, have %v", i, v, p[i])
		}
	}
}

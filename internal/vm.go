package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tliron/commonlog"
	"github.com/zephyrtronium/contains"
)

// VM is an object for processing Velo programs. A VM is not safe for
// concurrent use.
type VM struct {
	// Object is the root of the delegation graph. It holds the basic methods
	// every object can use, along with the roots themselves.
	Object *Object
	// String is the parent of every string-backed object.
	String *Object
	// IO holds the output methods.
	IO *Object
	// Main is the receiver of scripts run through DoString and friends.
	Main *Object

	// Sink receives the lines written by IO print.
	Sink Sink
	// Log receives evaluation traces at debug level.
	Log commonlog.Logger

	// protoSet is the set of objects visited during GetAttr.
	protoSet contains.Set

	// scripts caches the parsed forms of payloads run as code, keyed by
	// payload text.
	scripts map[string]*Script

	// StartTime is the time at which VM initialization began, used for the
	// version banner.
	StartTime time.Time
}

// NewVM prepares a new VM to interpret Velo code. Output goes to standard
// output as UTF-8 and traces go to the "velo" logger.
func NewVM() *VM {
	vm := VM{
		Object: &Object{title: "Object", id: nextObject()},
		String: &Object{title: "String", id: nextObject()},
		IO:     &Object{title: "IO", id: nextObject()},

		Sink: NewWriterSink(os.Stdout, nil),
		Log:  commonlog.GetLogger("velo"),

		scripts: make(map[string]*Script),

		StartTime: time.Now(),
	}
	// The roots must all exist before any of them is initialized, because
	// the Object root refers to the other two and they in turn delegate to
	// it.
	vm.initObject()
	vm.initString()
	vm.initIO()
	vm.Main = vm.NewObject("main-script")
	return &vm
}

// Parse parses Velo source read from src. label names the source in traces.
func (vm *VM) Parse(src io.Reader, label string) (*Script, error) {
	script, err := ParseReader(src)
	if err != nil {
		return nil, err
	}
	vm.tracef("parsed %s: %d expressions", label, len(script.Exprs))
	return script, nil
}

// ParsePayload parses text as a script, reusing the result of an earlier
// parse of the same text.
func (vm *VM) ParsePayload(text string) (*Script, error) {
	if s, ok := vm.scripts[text]; ok {
		return s, nil
	}
	s, err := Parse(text)
	if err != nil {
		return nil, err
	}
	vm.tracef("parsed payload %q", text)
	vm.scripts[text] = s
	return s, nil
}

// DoScript evaluates script with Main as the receiver and no arguments.
func (vm *VM) DoScript(script *Script) (Value, error) {
	return script.Eval(vm, vm.Main, nil)
}

// DoString parses and evaluates a string.
func (vm *VM) DoString(src string) (Value, error) {
	return vm.DoReader(strings.NewReader(src), "<string>")
}

// DoReader parses and evaluates the source read from src. label names the
// source in traces.
func (vm *VM) DoReader(src io.Reader, label string) (Value, error) {
	script, err := vm.Parse(src, label)
	if err != nil {
		return nil, err
	}
	return vm.DoScript(script)
}

// MustDoString parses and evaluates a string, panicking if either fails.
func (vm *VM) MustDoString(src string) Value {
	r, err := vm.DoString(src)
	if err != nil {
		panic(fmt.Errorf("velo: error executing %q: %w", src, err))
	}
	return r
}

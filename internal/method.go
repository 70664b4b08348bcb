package internal

import "fmt"

// A NativeFn is a statically compiled method body. receiver is the object on
// which the method was looked up, and args are the evaluated arguments of the
// call.
type NativeFn func(vm *VM, receiver *Object, args []Value) (Value, error)

// A Method is a callable attribute value. Its body is either a NativeFn or a
// parsed Script; a Method with neither is a stub.
type Method struct {
	// Title names the method in traces and error stacks. Methods themselves
	// do not have names.
	Title string
	// Native is the body of a native method.
	Native NativeFn
	// Body is the body of a script method.
	Body *Script
}

func (*Method) isVeloValue() {}

// NewMethod creates a native method. If f is nil, the method is a stub which
// raises MethodNotImplemented when run.
func (vm *VM) NewMethod(title string, f NativeFn) *Method {
	return &Method{Title: title, Native: f}
}

// NewScriptMethod creates a method which evaluates body.
func (vm *VM) NewScriptMethod(title string, body *Script) *Method {
	return &Method{Title: title, Body: body}
}

// Run invokes the method with the given receiver and arguments. Argument
// references in a script body resolve against args, and self resolves to
// receiver.
func (m *Method) Run(vm *VM, receiver *Object, args []Value) (Value, error) {
	vm.tracef("run %v on %v with %d args", m, receiver, len(args))
	var (
		r   Value
		err error
	)
	switch {
	case m.Native != nil:
		r, err = m.Native(vm, receiver, args)
	case m.Body != nil:
		r, err = m.Body.Eval(vm, receiver, args)
	default:
		err = NewExceptionf(MethodNotImplemented, "%v has no body", m)
	}
	if err != nil {
		return nil, unwind(err, m.Title, receiver)
	}
	return r, nil
}

// String returns a description of the method for debugging.
func (m *Method) String() string {
	return fmt.Sprintf("VeloMethod(%s)", m.Title)
}

// ArgAt returns the argument at zero-based position n, raising
// ArgumentOutOfRange if there is no such argument. name is the name of the
// method used in the error message.
func ArgAt(args []Value, n int, name string) (Value, error) {
	if n < 0 || n >= len(args) {
		return nil, NewExceptionf(ArgumentOutOfRange, "%s needs argument %d, but there are %d", name, n+1, len(args))
	}
	return args[n], nil
}

// ObjectArgAt is like ArgAt, but it raises TypeMismatch if the argument is
// not an object.
func ObjectArgAt(args []Value, n int, name string) (*Object, error) {
	v, err := ArgAt(args, n, name)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*Object)
	if !ok || o == nil {
		return nil, NewExceptionf(TypeMismatch, "argument %d to %s must be an object, not %v", n+1, name, v)
	}
	return o, nil
}

// payloadOf returns the payload of v, or the empty string if v is not a
// string-backed object.
func payloadOf(v Value) string {
	if o, ok := v.(*Object); ok && o != nil {
		return o.payload
	}
	return ""
}

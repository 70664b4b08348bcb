package internal

import (
	"fmt"
	"strings"
)

// A Node is an evaluable element of a parsed Velo program.
//
// Every node evaluates against the active receiver and argument list of the
// innermost running method, not against the state at the place the node was
// written. Self and argument references therefore rebind on every call.
type Node interface {
	Eval(vm *VM, receiver *Object, args []Value) (Value, error)
	String() string
}

// Script is a sequence of expressions evaluated in order.
type Script struct {
	Exprs []Node
}

// Self evaluates to the active receiver.
type Self struct{}

// Lookup evaluates Receiver and finds the attribute Name on the result.
type Lookup struct {
	Receiver Node
	Name     string
}

// MethodCall evaluates Callee and, if the result is a method, runs it with
// the evaluated Args.
type MethodCall struct {
	Callee Node
	Args   []Node
}

// Assignment evaluates Value and sets it as the attribute Field on the object
// that Target evaluates to.
type Assignment struct {
	Target Node
	Field  string
	Value  Node
}

// Argument evaluates to the argument at one-based position Index of the
// active argument list.
type Argument struct {
	Index int
}

// StringLiteral evaluates to a new string-backed object each time.
type StringLiteral struct {
	Text string
}

// Eval evaluates each expression against the same receiver and arguments.
// The result is that of the last expression, or nil if there are none.
func (s *Script) Eval(vm *VM, receiver *Object, args []Value) (result Value, err error) {
	for _, e := range s.Exprs {
		result, err = e.Eval(vm, receiver, args)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Eval returns the receiver.
func (*Self) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	return receiver, nil
}

// Eval looks up the attribute. It does not run the result.
func (l *Lookup) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	obj, err := l.target(vm, receiver, args)
	if err != nil {
		return nil, err
	}
	return vm.Lookup(obj, l.Name)
}

// target evaluates the lookup's receiver expression to an object.
func (l *Lookup) target(vm *VM, receiver *Object, args []Value) (*Object, error) {
	v, err := l.Receiver.Eval(vm, receiver, args)
	if err != nil {
		return nil, err
	}
	return vm.asObject(v, receiver)
}

// Eval evaluates the arguments, then the callee. If the callee is a Lookup,
// a resulting method runs against the object on which the lookup happened;
// otherwise it runs against the active receiver. A callee which is not a
// method is the result itself.
func (m *MethodCall) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	var callArgs []Value
	if len(m.Args) > 0 {
		callArgs = make([]Value, 0, len(m.Args))
		for _, a := range m.Args {
			v, err := a.Eval(vm, receiver, args)
			if err != nil {
				return nil, err
			}
			callArgs = append(callArgs, v)
		}
	}
	var (
		v      Value
		target = receiver
		err    error
	)
	if l, ok := m.Callee.(*Lookup); ok {
		if target, err = l.target(vm, receiver, args); err != nil {
			return nil, err
		}
		v, err = vm.Lookup(target, l.Name)
	} else {
		v, err = m.Callee.Eval(vm, receiver, args)
	}
	if err != nil {
		return nil, err
	}
	if meth, ok := v.(*Method); ok {
		return meth.Run(vm, target, callArgs)
	}
	return v, nil
}

// Eval evaluates the value, then the target, and writes the field on the
// target's own attribute table. The result is the value.
func (a *Assignment) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	v, err := a.Value.Eval(vm, receiver, args)
	if err != nil {
		return nil, err
	}
	t, err := a.Target.Eval(vm, receiver, args)
	if err != nil {
		return nil, err
	}
	obj, err := vm.asObject(t, receiver)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, NewExceptionf(AttributeNotFound, "cannot set '%s' on no value", a.Field)
	}
	vm.SetAttr(obj, a.Field, v)
	return v, nil
}

// Eval returns the argument at the node's position in the active argument
// list.
func (a *Argument) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	if a.Index < 1 || a.Index > len(args) {
		return nil, NewExceptionf(ArgumentOutOfRange, "#%d referenced, but there are %d arguments", a.Index, len(args))
	}
	return args[a.Index-1], nil
}

// Eval creates a new string-backed object.
func (s *StringLiteral) Eval(vm *VM, receiver *Object, args []Value) (Value, error) {
	return vm.NewString(s.Text), nil
}

func (s *Script) String() string {
	parts := make([]string, len(s.Exprs))
	for i, e := range s.Exprs {
		parts[i] = e.String()
	}
	return "Script(" + strings.Join(parts, ", ") + ")"
}

func (*Self) String() string {
	return "Self"
}

func (l *Lookup) String() string {
	return fmt.Sprintf("Lookup(%v, %s)", l.Receiver, l.Name)
}

func (m *MethodCall) String() string {
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("MethodCall(%v, [%s])", m.Callee, strings.Join(parts, ", "))
}

func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%v, %s, %v)", a.Target, a.Field, a.Value)
}

func (a *Argument) String() string {
	return fmt.Sprintf("Argument(%d)", a.Index)
}

func (s *StringLiteral) String() string {
	return fmt.Sprintf("StringLiteral({%s})", s.Text)
}

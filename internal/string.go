package internal

import "fmt"

// initString sets up the String root, the parent of every string literal.
func (vm *VM) initString() {
	vm.String.parents = []*Object{vm.Object}
	vm.String.SetAttrs(Attrs{
		"concat": vm.NewMethod("concat", StringConcat),
		"create": vm.NewMethod("create", StringCreate),
		"equals": vm.NewMethod("equals", StringEquals),
		"method": vm.NewMethod("method", StringMethod),
	})
}

// StringConcat is a String method.
//
// concat creates a new string whose payload is the receiver's followed by the
// argument's.
func StringConcat(vm *VM, receiver *Object, args []Value) (Value, error) {
	other, err := ObjectArgAt(args, 0, "concat")
	if err != nil {
		return nil, err
	}
	return vm.NewString(receiver.payload + other.payload), nil
}

// StringEquals is a String method.
//
// equals returns {true} if the receiver and argument have the same payload
// and {} otherwise.
func StringEquals(vm *VM, receiver *Object, args []Value) (Value, error) {
	other, err := ArgAt(args, 0, "equals")
	if err != nil {
		return nil, err
	}
	if receiver.payload == payloadOf(other) {
		return vm.NewString("true"), nil
	}
	return vm.NewString(""), nil
}

// StringMethod is a String method.
//
// method parses the receiver's payload and returns a method which evaluates
// it against whatever receiver and arguments it is later run with.
func StringMethod(vm *VM, receiver *Object, args []Value) (Value, error) {
	body, err := vm.ParsePayload(receiver.payload)
	if err != nil {
		return nil, err
	}
	return vm.NewScriptMethod(scriptTitle(receiver.payload), body), nil
}

// StringCreate is a String method.
//
// create parses the receiver's payload and evaluates it with the argument as
// both the receiver and the sole argument. It returns the argument.
func StringCreate(vm *VM, receiver *Object, args []Value) (Value, error) {
	target, err := ObjectArgAt(args, 0, "create")
	if err != nil {
		return nil, err
	}
	body, err := vm.ParsePayload(receiver.payload)
	if err != nil {
		return nil, err
	}
	if _, err := body.Eval(vm, target, []Value{target}); err != nil {
		return nil, err
	}
	return target, nil
}

// scriptTitle makes a method title from the start of its source.
func scriptTitle(src string) string {
	const maxTitle = 24
	r := []rune(src)
	if len(r) > maxTitle {
		return fmt.Sprintf("{%s...}", string(r[:maxTitle]))
	}
	return fmt.Sprintf("{%s}", src)
}

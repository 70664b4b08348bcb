package internal

// initIO sets up the IO root.
func (vm *VM) initIO() {
	vm.IO.parents = []*Object{vm.Object}
	vm.IO.SetAttrs(Attrs{
		"print": vm.NewMethod("print", IOPrint),
	})
}

// IOPrint is an IO method.
//
// print writes its argument's payload as one line of output. An argument
// without a payload prints an empty line. It returns the argument.
func IOPrint(vm *VM, receiver *Object, args []Value) (Value, error) {
	x, err := ArgAt(args, 0, "print")
	if err != nil {
		return nil, err
	}
	if err := vm.Sink.Print(payloadOf(x)); err != nil {
		return nil, err
	}
	return x, nil
}

package internal

// initObject sets up the Object root. It has no parents.
func (vm *VM) initObject() {
	vm.Object.SetAttrs(Attrs{
		"extend": vm.NewMethod("extend", ObjectExtend),
		"if":     vm.NewMethod("if", ObjectIf),
		"new":    vm.NewMethod("new", ObjectNew),
		"self":   vm.NewMethod("self", ObjectSelf),

		"Object": vm.Object,
		"String": vm.String,
		"IO":     vm.IO,
	})
}

// ObjectExtend is an Object method.
//
// extend makes the receiver delegate to its argument ahead of its existing
// parents. It returns the receiver.
func ObjectExtend(vm *VM, receiver *Object, args []Value) (Value, error) {
	p, err := ObjectArgAt(args, 0, "extend")
	if err != nil {
		return nil, err
	}
	vm.Extend(receiver, p)
	return receiver, nil
}

// ObjectSelf is an Object method.
//
// self returns the receiver.
func ObjectSelf(vm *VM, receiver *Object, args []Value) (Value, error) {
	return receiver, nil
}

// ObjectNew is an Object method.
//
// new creates a fresh object delegating to Object. If an argument is given,
// the new object is extended with it.
func ObjectNew(vm *VM, receiver *Object, args []Value) (Value, error) {
	obj := vm.NewObject("object")
	if len(args) > 0 {
		p, err := ObjectArgAt(args, 0, "new")
		if err != nil {
			return nil, err
		}
		vm.Extend(obj, p)
	}
	return obj, nil
}

// ObjectIf is an Object method.
//
// if selects its second argument if the first is true and its third
// otherwise, then runs the selected branch. A string-backed object with an
// empty payload is false; so is no value. Everything else is true. A branch
// which is a method runs against the receiver; any other branch has its
// create run with the receiver as the argument. A missing branch gives no
// value.
func ObjectIf(vm *VM, receiver *Object, args []Value) (Value, error) {
	cond, err := ArgAt(args, 0, "if")
	if err != nil {
		return nil, err
	}
	n := 2
	if truthy(cond) {
		n = 1
	}
	if n >= len(args) || args[n] == nil {
		return nil, nil
	}
	switch branch := args[n].(type) {
	case *Method:
		return branch.Run(vm, receiver, []Value{receiver})
	case *Object:
		create, err := vm.Lookup(branch, "create")
		if err != nil {
			return nil, err
		}
		if m, ok := create.(*Method); ok {
			return m.Run(vm, branch, []Value{receiver})
		}
		return create, nil
	}
	return nil, nil
}

// truthy reports whether v counts as true for if.
func truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case *Object:
		if v == nil {
			return false
		}
		return !v.hasPayload || v.payload != ""
	}
	return true
}

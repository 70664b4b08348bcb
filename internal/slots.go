package internal

/*
This file contains the implementation of attribute lookup. Lookup checks an
object's own attributes, then each of its parents in order, recursing into
the parents of each parent before moving on to the next. The delegation graph
may contain cycles, so each lookup records the objects it has visited and
never enters one twice.
*/

// GetAttr finds an attribute on obj or its ancestors. owner is the object
// which actually had the attribute. If the attribute is not found, both
// results are nil.
func (vm *VM) GetAttr(obj *Object, name string) (value Value, owner *Object) {
	if obj == nil {
		return nil, nil
	}
	// Check obj itself before using the graph traversal mechanisms.
	if v, ok := obj.attrs[name]; ok {
		return v, obj
	}
	vm.protoSet.Reset()
	vm.protoSet.Add(obj.UniqueID())
	for _, p := range obj.parents {
		if value, owner = vm.getAttrAncestor(p, name); owner != nil {
			return value, owner
		}
	}
	return nil, nil
}

// getAttrAncestor searches p and its ancestors depth-first, skipping objects
// already visited during the current lookup.
func (vm *VM) getAttrAncestor(p *Object, name string) (Value, *Object) {
	if !vm.protoSet.Add(p.UniqueID()) {
		return nil, nil
	}
	if v, ok := p.attrs[name]; ok {
		return v, p
	}
	for _, pp := range p.parents {
		if v, owner := vm.getAttrAncestor(pp, name); owner != nil {
			return v, owner
		}
	}
	return nil, nil
}

// Lookup finds an attribute on obj or its ancestors, raising
// AttributeNotFound if there is no such attribute.
func (vm *VM) Lookup(obj *Object, name string) (Value, error) {
	if obj == nil {
		return nil, NewExceptionf(AttributeNotFound, "could not locate '%s' on no value", name)
	}
	v, owner := vm.GetAttr(obj, name)
	if owner == nil {
		vm.tracef("lookup %s on %v: not found", name, obj)
		return nil, NewExceptionf(AttributeNotFound, "could not locate '%s' on %v", name, obj)
	}
	vm.tracef("lookup %s on %v: found on %v", name, obj, owner)
	return v, nil
}

// Extend makes obj delegate to p ahead of its other parents.
func (vm *VM) Extend(obj, p *Object) {
	vm.tracef("extending %v with %v", obj, p)
	obj.Extend(p)
}

// SetAttr sets an attribute on obj's own table.
func (vm *VM) SetAttr(obj *Object, name string, value Value) {
	vm.tracef("set %s on %v to %v", name, obj, value)
	obj.SetAttr(name, value)
}

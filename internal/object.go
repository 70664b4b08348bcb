package internal

import (
	"fmt"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Value is anything that can be held in an attribute or passed as an
// argument: an *Object or a *Method.
type Value interface {
	fmt.Stringer
	isVeloValue()
}

// Attrs maps attribute names to values.
type Attrs map[string]Value

// Object is the basic type of Velo. Every value that is not a method is an
// Object.
//
// Use NewObject, ObjectWith, or NewString to obtain new objects. Creating
// objects directly leaves them without a unique ID.
type Object struct {
	// attrs is the object's own attribute table. Writes always go here;
	// delegation never writes through to parents.
	attrs Attrs
	// parents are the objects consulted for attributes the object lacks, in
	// order of precedence.
	parents []*Object

	// payload is the raw text of string-backed objects.
	payload    string
	hasPayload bool

	// title names the object in traces and error reports.
	title string
	// id is the object's unique ID.
	id uintptr
}

func (*Object) isVeloValue() {}

// String returns a description of the object for debugging.
func (o *Object) String() string {
	if o == nil {
		return "VeloObject(nil)"
	}
	if o.hasPayload {
		return fmt.Sprintf("VeloObject(%q)", o.payload)
	}
	return fmt.Sprintf("VeloObject('%s')", o.title)
}

// Title returns the object's debugging title.
func (o *Object) Title() string {
	return o.title
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// Payload returns the object's raw text and whether it is string-backed.
func (o *Object) Payload() (string, bool) {
	return o.payload, o.hasPayload
}

// Parents returns a snapshot of the object's parents, highest precedence
// first.
func (o *Object) Parents() []*Object {
	return append([]*Object(nil), o.parents...)
}

// Extend makes the object delegate to p ahead of all its existing parents.
// The object's own attributes still shadow p's.
func (o *Object) Extend(p *Object) {
	o.parents = append(o.parents, nil)
	copy(o.parents[1:], o.parents)
	o.parents[0] = p
}

// SetAttr sets an attribute in the object's own table.
func (o *Object) SetAttr(name string, value Value) {
	if o.attrs == nil {
		o.attrs = Attrs{}
	}
	o.attrs[name] = value
}

// SetAttrs sets multiple attributes in the object's own table.
func (o *Object) SetAttrs(attrs Attrs) {
	for name, value := range attrs {
		o.SetAttr(name, value)
	}
}

// GetLocalAttr checks only the object's own table for an attribute.
func (o *Object) GetLocalAttr(name string) (value Value, ok bool) {
	value, ok = o.attrs[name]
	return value, ok
}

// AttrNames returns the names of the object's own attributes in no
// particular order.
func (o *Object) AttrNames() []string {
	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	return names
}

// IsKindOf evaluates whether the object has kind as any of its ancestors, or
// is itself kind.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil {
		return false
	}
	// Unlike in Lookup, the order of traversal doesn't matter here, so this
	// uses its own set and stack.
	stack := []*Object{o}
	set := contains.Set{}
	set.Add(o.UniqueID())
	for len(stack) > 0 {
		obj := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if obj == kind {
			return true
		}
		for _, p := range obj.parents {
			if set.Add(p.UniqueID()) {
				stack = append(stack, p)
			}
		}
	}
	return false
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// ObjectWith creates a new object with the given title, parents, and
// attributes. The parents slice is used directly.
func (vm *VM) ObjectWith(title string, parents []*Object, attrs Attrs) *Object {
	return &Object{
		attrs:   attrs,
		parents: parents,
		title:   title,
		id:      nextObject(),
	}
}

// NewObject creates a new object whose only parent is the Object root.
func (vm *VM) NewObject(title string) *Object {
	return vm.ObjectWith(title, []*Object{vm.Object}, nil)
}

// NewString creates a new string-backed object whose only parent is the
// String root. Each call produces a distinct object, even for equal text.
func (vm *VM) NewString(text string) *Object {
	o := vm.ObjectWith("string", []*Object{vm.String}, nil)
	o.payload = text
	o.hasPayload = true
	return o
}

// asObject converts a value to the object it denotes. A method is run with no
// arguments against receiver and its result is used instead. The result is nil
// if the value is nil.
func (vm *VM) asObject(v Value, receiver *Object) (*Object, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Object:
		return v, nil
	case *Method:
		r, err := v.Run(vm, receiver, nil)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, nil
		}
		o, ok := r.(*Object)
		if !ok {
			return nil, NewExceptionf(TypeMismatch, "%v produced %v, not an object", v, r)
		}
		return o, nil
	}
	panic(fmt.Sprintf("velo: invalid value %#v", v))
}

// Package object implements the type system of the runtime: type objects,
// instances, the C3 method resolution order, and attribute resolution through
// the descriptor protocol.
//
// Every runtime value is an Object. Objects are handles: they are shared by
// every holder and compared by identity with Is, never structurally. Each
// handle carries a Kind tag and a reference to its type, returned by Class.
//
// A Runtime owns the bootstrap types (type, object, and the small set of
// builtin types the protocol relies on) and implements the operations that
// may invoke user code, such as type.__call__ and type.__getattribute__.
//
// For example:
//
//	rt := object.NewRuntime()
//	a, _ := rt.NewType(rt.TypeType(), "A", []*object.Type{rt.ObjectType()}, nil)
//	inst, _ := rt.Invoke(ctx, a)
//	object.IsInstance(inst, a) // true
package object

import (
	"context"
)

// Kind tags the representation behind an object handle.
type Kind string

// Kind constants
const (
	TYPE              Kind = "type"
	INSTANCE          Kind = "instance"
	STRING            Kind = "string"
	TUPLE             Kind = "tuple"
	DICT              Kind = "dict"
	NONE              Kind = "none"
	BOOL              Kind = "bool"
	BUILTIN           Kind = "builtin"
	METHOD            Kind = "method"
	PROPERTY          Kind = "property"
	MEMBER_DESCRIPTOR Kind = "member_descriptor"
)

// Object is the interface implemented by every object handle.
type Object interface {
	// Kind of the object's representation.
	Kind() Kind

	// Class returns the object's type.
	Class() *Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// GetAttr looks the name up without applying the descriptor protocol.
	// Types search their own dict and then their MRO; instances search their
	// own dict and then their type; everything else searches its type.
	GetAttr(name string) (Object, bool)

	// SetAttr stores the attribute directly in the object's own dict.
	SetAttr(name string, value Object) error
}

// Callable is implemented by objects that wrap Go functions and can be
// invoked without going through __call__.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Is reports whether a and b are the same handle.
func Is(a, b Object) bool {
	return a == b
}

// typeName returns the name of obj's type, as used in error messages.
func typeName(obj Object) string {
	if obj == nil || obj.Class() == nil {
		return "<unknown>"
	}
	return obj.Class().name
}

package object

import (
	"context"

	"github.com/deepnoodle-ai/pytypes/errors"
)

// Invoke calls callable with args.
//
// Callables that wrap Go functions are called directly and bound methods
// prepend their receiver. Any other object is called through the __call__
// attribute of its type; this is how calling a type reaches type.__call__.
// Objects without __call__ are handed to the CallFunc in ctx, if any.
func (rt *Runtime) Invoke(ctx context.Context, callable Object, args ...Object) (Object, error) {
	switch fn := callable.(type) {
	case *Method:
		bound := make([]Object, 0, len(args)+1)
		bound = append(bound, fn.self)
		return rt.Invoke(ctx, fn.fn, append(bound, args...)...)
	case Callable:
		return fn.Call(ctx, args...)
	}
	if call, ok := callable.Class().GetAttr("__call__"); ok {
		bound, err := rt.CallGetDescriptor(ctx, call, callable)
		if err != nil {
			return nil, err
		}
		return rt.Invoke(ctx, bound, args...)
	}
	if fn, ok := GetCallFunc(ctx); ok {
		return fn(ctx, callable, args)
	}
	return nil, TypeErrorf("'%s' object is not callable", typeName(callable)).WithCode(errors.E4007)
}

// CallGetDescriptor binds attr to obj. If attr's type exposes __get__ it is
// invoked as __get__(attr, obj, type(obj)); otherwise attr is returned as is.
func (rt *Runtime) CallGetDescriptor(ctx context.Context, attr, obj Object) (Object, error) {
	get, ok := capability(attr, "__get__")
	if !ok {
		return attr, nil
	}
	return rt.Invoke(ctx, get, attr, obj, obj.Class())
}

// GetMethod looks name up on obj's type and binds the result to obj.
func (rt *Runtime) GetMethod(ctx context.Context, obj Object, name string) (Object, error) {
	method, found, err := rt.lookupMethod(ctx, obj, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, rt.instanceAttributeError(obj, name)
	}
	return method, nil
}

func (rt *Runtime) lookupMethod(ctx context.Context, obj Object, name string) (Object, bool, error) {
	attr, ok := obj.Class().GetAttr(name)
	if !ok {
		return nil, false, nil
	}
	bound, err := rt.CallGetDescriptor(ctx, attr, obj)
	if err != nil {
		return nil, true, err
	}
	return bound, true, nil
}

// GetAttribute resolves obj.name by calling the __getattribute__ of obj's
// type. Types resolve through type.__getattribute__, everything else through
// object.__getattribute__ unless a class overrides it.
func (rt *Runtime) GetAttribute(ctx context.Context, obj Object, name string) (Object, error) {
	getattribute, err := rt.GetMethod(ctx, obj, "__getattribute__")
	if err != nil {
		return nil, err
	}
	return rt.Invoke(ctx, getattribute, rt.NewStr(name))
}

// SetAttribute performs obj.name = value through the __setattr__ of obj's
// type.
func (rt *Runtime) SetAttribute(ctx context.Context, obj Object, name string, value Object) error {
	setattr, err := rt.GetMethod(ctx, obj, "__setattr__")
	if err != nil {
		return err
	}
	_, err = rt.Invoke(ctx, setattr, rt.NewStr(name), value)
	return err
}

// Repr returns the string produced by obj's __repr__.
func (rt *Runtime) Repr(ctx context.Context, obj Object) (string, error) {
	repr, err := rt.GetMethod(ctx, obj, "__repr__")
	if err != nil {
		return "", err
	}
	result, err := rt.Invoke(ctx, repr)
	if err != nil {
		return "", err
	}
	s, ok := result.(*Str)
	if !ok {
		return "", TypeErrorf("__repr__ returned non-string (type %s)", typeName(result))
	}
	return s.value, nil
}

// capability looks name up on the type of attr. Descriptor behavior is
// decided by the attributes of the descriptor's type, never by Go interfaces.
func capability(attr Object, name string) (Object, bool) {
	cls := attr.Class()
	if cls == nil {
		return nil, false
	}
	return cls.GetAttr(name)
}

// isDataDescriptor reports whether attr's type exposes both __get__ and
// __set__.
func isDataDescriptor(attr Object) bool {
	if _, ok := capability(attr, "__get__"); !ok {
		return false
	}
	_, ok := capability(attr, "__set__")
	return ok
}

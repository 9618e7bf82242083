// Package builtins defines the built-in functions that sit directly on top of
// the type system: isinstance, issubclass, getattr and friends.
package builtins

import (
	"context"

	"github.com/deepnoodle-ai/pytypes/object"
)

type env struct {
	rt *object.Runtime
}

func (e *env) IsInstance(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("isinstance", 2, args); err != nil {
		return nil, err
	}
	classes, err := classInfo("isinstance", args[1])
	if err != nil {
		return nil, err
	}
	for _, cls := range classes {
		if object.IsInstance(args[0], cls) {
			return e.rt.True(), nil
		}
	}
	return e.rt.False(), nil
}

func (e *env) IsSubclass(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("issubclass", 2, args); err != nil {
		return nil, err
	}
	typ, ok := args[0].(*object.Type)
	if !ok {
		return nil, object.TypeErrorf("issubclass() arg 1 must be a class")
	}
	classes, err := classInfo("issubclass", args[1])
	if err != nil {
		return nil, err
	}
	for _, cls := range classes {
		if object.IsSubclass(typ, cls) {
			return e.rt.True(), nil
		}
	}
	return e.rt.False(), nil
}

// classInfo accepts a type or a tuple of types.
func classInfo(fn string, arg object.Object) ([]*object.Type, error) {
	switch arg := arg.(type) {
	case *object.Type:
		return []*object.Type{arg}, nil
	case *object.Tuple:
		items := arg.Items()
		classes := make([]*object.Type, 0, len(items))
		for _, item := range items {
			cls, ok := item.(*object.Type)
			if !ok {
				return nil, object.TypeErrorf("%s() arg 2 must be a type or tuple of types", fn)
			}
			classes = append(classes, cls)
		}
		return classes, nil
	default:
		return nil, object.TypeErrorf("%s() arg 2 must be a type or tuple of types", fn)
	}
}

// GetAttr implements getattr(obj, name[, default]). The default is returned
// only for AttributeErrors; other errors propagate.
func (e *env) GetAttr(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("getattr", 2, 3, args); err != nil {
		return nil, err
	}
	name, err := object.Arg[*object.Str](args, 1, "getattr", "str")
	if err != nil {
		return nil, err
	}
	value, err := e.rt.GetAttribute(ctx, args[0], name.Value())
	if err != nil {
		if len(args) == 3 && object.IsKind(err, object.ErrAttribute) {
			return args[2], nil
		}
		return nil, err
	}
	return value, nil
}

func (e *env) SetAttr(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("setattr", 3, args); err != nil {
		return nil, err
	}
	name, err := object.Arg[*object.Str](args, 1, "setattr", "str")
	if err != nil {
		return nil, err
	}
	if err := e.rt.SetAttribute(ctx, args[0], name.Value(), args[2]); err != nil {
		return nil, err
	}
	return e.rt.None(), nil
}

func (e *env) HasAttr(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("hasattr", 2, args); err != nil {
		return nil, err
	}
	name, err := object.Arg[*object.Str](args, 1, "hasattr", "str")
	if err != nil {
		return nil, err
	}
	if _, err := e.rt.GetAttribute(ctx, args[0], name.Value()); err != nil {
		if object.IsKind(err, object.ErrAttribute) {
			return e.rt.False(), nil
		}
		return nil, err
	}
	return e.rt.True(), nil
}

func (e *env) Repr(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("repr", 1, args); err != nil {
		return nil, err
	}
	s, err := e.rt.Repr(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return e.rt.NewStr(s), nil
}

// Dir lists every attribute name visible on obj, in flattening order.
func (e *env) Dir(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("dir", 1, args); err != nil {
		return nil, err
	}
	keys := e.rt.GetAttributes(args[0]).Keys()
	names := make([]object.Object, len(keys))
	for i, key := range keys {
		names[i] = e.rt.NewStr(key)
	}
	return e.rt.NewTuple(names), nil
}

// Builtins returns the built-in namespace for rt, including the bootstrap
// types themselves.
func Builtins(rt *object.Runtime) map[string]object.Object {
	e := &env{rt: rt}
	return map[string]object.Object{
		"dir":        rt.NewBuiltin("dir", e.Dir),
		"getattr":    rt.NewBuiltin("getattr", e.GetAttr),
		"hasattr":    rt.NewBuiltin("hasattr", e.HasAttr),
		"isinstance": rt.NewBuiltin("isinstance", e.IsInstance),
		"issubclass": rt.NewBuiltin("issubclass", e.IsSubclass),
		"object":     rt.ObjectType(),
		"property":   rt.PropertyType(),
		"repr":       rt.NewBuiltin("repr", e.Repr),
		"setattr":    rt.NewBuiltin("setattr", e.SetAttr),
		"type":       rt.TypeType(),
	}
}

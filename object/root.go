package object

import (
	"context"

	"github.com/deepnoodle-ai/pytypes/errors"
)

// initObject installs the operations of the root type. These give instances
// their default construction, initialization, attribute access and repr.
func (rt *Runtime) initObject() {
	o := rt.objectType
	rt.define(o, "__new__", rt.objectNew)
	rt.define(o, "__init__", rt.objectInit)
	rt.define(o, "__getattribute__", rt.objectGetAttribute)
	rt.define(o, "__setattr__", rt.objectSetAttr)
	rt.define(o, "__delattr__", rt.objectDelAttr)
	rt.define(o, "__repr__", rt.objectRepr)
	rt.defineMember(o, "__class__", classOf)
	rt.defineMember(o, "__dict__", func(ctx context.Context, obj Object) (Object, error) {
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, rt.instanceAttributeError(obj, "__dict__")
		}
		return inst.dict, nil
	})
}

// objectNew implements object.__new__(cls, *args). Extra arguments are
// accepted and ignored; they are meant for __init__.
func (rt *Runtime) objectNew(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 1 {
		return nil, TypeErrorf("object.__new__(): not enough arguments")
	}
	cls, ok := args[0].(*Type)
	if !ok {
		return nil, TypeErrorf("object.__new__(X): X is not a type object (%s)",
			typeName(args[0])).WithCode(errors.E4004)
	}
	return rt.NewInstance(cls), nil
}

func (rt *Runtime) objectInit(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 1 {
		return nil, TypeErrorf("object.__init__(): not enough arguments")
	}
	return rt.none, nil
}

func (rt *Runtime) objectGetAttribute(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("object.__getattribute__", 2, args); err != nil {
		return nil, err
	}
	name, err := Arg[*Str](args, 1, "object.__getattribute__", "str")
	if err != nil {
		return nil, err
	}
	return rt.ObjectGetAttribute(ctx, args[0], name.value)
}

// ObjectGetAttribute implements object.__getattribute__, the lookup used for
// instances:
//
//  1. a data descriptor found on the type's MRO is invoked with
//     __get__(attr, obj, type);
//  2. a value in the instance's own dict is returned as is;
//  3. an attribute found on the type's MRO is bound to obj;
//  4. the type's __getattr__ is called with the name;
//  5. an AttributeError is returned.
func (rt *Runtime) ObjectGetAttribute(ctx context.Context, obj Object, name string) (Object, error) {
	cls := obj.Class()
	rt.logger.Trace().Str("class", cls.name).Str("name", name).Msg("object.__getattribute__")

	clsAttr, found := cls.GetAttr(name)
	if found && isDataDescriptor(clsAttr) {
		get, _ := capability(clsAttr, "__get__")
		return rt.Invoke(ctx, get, clsAttr, obj, cls)
	}
	if inst, ok := obj.(*Instance); ok {
		if value, ok := inst.dict.Get(name); ok {
			return value, nil
		}
	}
	if found {
		return rt.CallGetDescriptor(ctx, clsAttr, obj)
	}
	getattr, found, err := rt.lookupMethod(ctx, obj, "__getattr__")
	if err != nil {
		return nil, err
	}
	if found {
		return rt.Invoke(ctx, getattr, rt.NewStr(name))
	}
	return nil, rt.instanceAttributeError(obj, name)
}

// objectSetAttr implements object.__setattr__(obj, name, value). A data
// descriptor on the type takes precedence over the object's own dict.
func (rt *Runtime) objectSetAttr(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("object.__setattr__", 3, args); err != nil {
		return nil, err
	}
	obj, value := args[0], args[2]
	name, err := Arg[*Str](args, 1, "object.__setattr__", "str")
	if err != nil {
		return nil, err
	}
	if attr, ok := obj.Class().GetAttr(name.value); ok {
		if set, ok := capability(attr, "__set__"); ok {
			if _, err := rt.Invoke(ctx, set, attr, obj, value); err != nil {
				return nil, err
			}
			return rt.none, nil
		}
	}
	if err := obj.SetAttr(name.value, value); err != nil {
		return nil, err
	}
	return rt.none, nil
}

func (rt *Runtime) objectDelAttr(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("object.__delattr__", 2, args); err != nil {
		return nil, err
	}
	name, err := Arg[*Str](args, 1, "object.__delattr__", "str")
	if err != nil {
		return nil, err
	}
	var dict *Dict
	switch obj := args[0].(type) {
	case *Instance:
		dict = obj.dict
	case *Type:
		dict = obj.dict
	}
	if dict == nil || !dict.Delete(name.value) {
		return nil, rt.instanceAttributeError(args[0], name.value)
	}
	return rt.none, nil
}

func (rt *Runtime) objectRepr(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("object.__repr__", 1, args); err != nil {
		return nil, err
	}
	return rt.NewStr(args[0].Inspect()), nil
}

// instanceAttributeError reports a failed lookup on obj, with suggestions
// drawn from every name reachable from it.
func (rt *Runtime) instanceAttributeError(obj Object, name string) error {
	err := AttributeErrorf("'%s' object has no attribute '%s'", typeName(obj), name)
	return rt.withSuggestions(err, name, rt.GetAttributes(obj).Keys())
}

func (rt *Runtime) withSuggestions(err *StructuredError, name string, candidates []string) error {
	if !rt.suggest {
		return err
	}
	if hint := errors.FormatSuggestions(errors.SuggestSimilar(name, candidates)); hint != "" {
		err.WithHint(hint)
	}
	return err
}

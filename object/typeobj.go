package object

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/pytypes/errors"
	"github.com/deepnoodle-ai/pytypes/mro"
)

// initType installs the operations of the metatype.
func (rt *Runtime) initType() {
	t := rt.typeType
	rt.define(t, "__call__", rt.typeCall)
	rt.define(t, "__new__", rt.typeNew)
	rt.define(t, "__repr__", rt.typeRepr)
	rt.define(t, "__prepare__", rt.typePrepare)
	rt.define(t, "__getattribute__", rt.typeGetAttribute)
	rt.defineMember(t, "__mro__", rt.typeMro)
	rt.defineMember(t, "__class__", classOf)
	rt.defineMember(t, "__name__", func(ctx context.Context, obj Object) (Object, error) {
		cls, err := requireType(obj, "__name__")
		if err != nil {
			return nil, err
		}
		return rt.NewStr(cls.name), nil
	})
	rt.defineMember(t, "__bases__", func(ctx context.Context, obj Object) (Object, error) {
		cls, err := requireType(obj, "__bases__")
		if err != nil {
			return nil, err
		}
		return rt.NewTuple(typesToObjects(cls.bases)), nil
	})
	rt.defineMember(t, "__dict__", func(ctx context.Context, obj Object) (Object, error) {
		cls, err := requireType(obj, "__dict__")
		if err != nil {
			return nil, err
		}
		return cls.dict, nil
	})
}

// NewType creates a type named name with the given metatype, direct bases
// and attribute dict. The MRO is the C3 linearization of the bases; the type
// is not created if no consistent linearization exists. A nil dict creates
// the type with an empty one.
func (rt *Runtime) NewType(metatype *Type, name string, bases []*Type, dict *Dict) (*Type, error) {
	if metatype == nil {
		return nil, TypeErrorf("type %s: metatype is required", name)
	}
	if len(bases) == 0 {
		return nil, TypeErrorf("type %s: at least one base is required", name)
	}
	for i, b := range bases {
		for _, other := range bases[:i] {
			if b == other {
				return nil, TypeErrorf("duplicate base class %s", b.name).WithCode(errors.E4003)
			}
		}
	}

	rt.logger.Debug().
		Str("name", name).
		Str("metatype", metatype.name).
		Strs("bases", typeNames(bases)).
		Msg("linearising mro")

	ancestors, err := mro.Linearize(bases, (*Type).Mro)
	if err != nil {
		return nil, TypeErrorf(
			"Cannot create a consistent method resolution order (MRO) for bases %s",
			strings.Join(typeNames(bases), ", ")).
			WithCode(errors.E4002).
			WithCause(err)
	}
	if dict == nil {
		dict = rt.NewDict()
	}
	t := &Type{
		class: metatype,
		name:  name,
		dict:  dict,
		bases: append([]*Type(nil), bases...),
		mro:   ancestors,
	}
	rt.logger.Debug().Str("name", name).Strs("mro", typeNames(t.Mro())).Msg("type created")
	return t, nil
}

// typeNew implements type.__new__.
//
//	type.__new__(metatype, obj)                -> type of obj
//	type.__new__(metatype, name, bases, dict)  -> new type
func (rt *Runtime) typeNew(ctx context.Context, args ...Object) (Object, error) {
	rt.logger.Debug().Int("args", len(args)).Msg("type.__new__")
	switch len(args) {
	case 2:
		if _, err := Arg[*Type](args, 0, "type.__new__", "type"); err != nil {
			return nil, err
		}
		return args[1].Class(), nil
	case 4:
		metatype, err := Arg[*Type](args, 0, "type.__new__", "type")
		if err != nil {
			return nil, err
		}
		if !IsSubclass(metatype, rt.typeType) {
			return nil, TypeErrorf("type.__new__(%s): %s is not a subtype of type",
				metatype.name, metatype.name).WithCode(errors.E4004)
		}
		name, err := Arg[*Str](args, 1, "type.__new__", "str")
		if err != nil {
			return nil, err
		}
		basesTuple, err := Arg[*Tuple](args, 2, "type.__new__", "tuple")
		if err != nil {
			return nil, err
		}
		dict, err := Arg[*Dict](args, 3, "type.__new__", "dict")
		if err != nil {
			return nil, err
		}
		bases, err := basesFromTuple(basesTuple)
		if err != nil {
			return nil, err
		}
		if !containsType(bases, rt.objectType) {
			bases = append(bases, rt.objectType)
		}
		cls, err := rt.NewType(metatype, name.value, bases, dict)
		if err != nil {
			return nil, err
		}
		return cls, nil
	default:
		return nil, TypeErrorf("type() takes 1 or 3 arguments")
	}
}

// basesFromTuple converts a tuple of bases, reporting every element that is
// not a type.
func basesFromTuple(tuple *Tuple) ([]*Type, error) {
	var result *multierror.Error
	bases := make([]*Type, 0, len(tuple.items))
	for i, item := range tuple.items {
		base, ok := item.(*Type)
		if !ok {
			result = multierror.Append(result, TypeErrorf(
				"bases must be types: item %d is %s", i, typeName(item)).WithCode(errors.E4004))
			continue
		}
		bases = append(bases, base)
	}
	return bases, result.ErrorOrNil()
}

// typeCall implements type.__call__: __new__ creates the object and
// __init__, when one is found, initializes it.
func (rt *Runtime) typeCall(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 1 {
		return nil, TypeErrorf("type.__call__() needs an argument")
	}
	cls, rest := args[0], args[1:]
	rt.logger.Debug().Str("class", displayName(cls)).Int("args", len(rest)).Msg("type.__call__")

	newFn, ok := cls.GetAttr("__new__")
	if !ok {
		return nil, TypeErrorf("cannot create '%s' instances", displayName(cls))
	}
	newBound, err := rt.CallGetDescriptor(ctx, newFn, cls)
	if err != nil {
		return nil, err
	}
	obj, err := rt.Invoke(ctx, newBound, rest...)
	if err != nil {
		return nil, err
	}

	init, found, err := rt.lookupMethod(ctx, obj, "__init__")
	if err != nil {
		return nil, err
	}
	if found {
		res, err := rt.Invoke(ctx, init, rest...)
		if err != nil {
			return nil, err
		}
		if !Is(res, rt.none) {
			return nil, TypeErrorf("__init__ must return None").WithCode(errors.E4005)
		}
	}
	return obj, nil
}

func (rt *Runtime) typeGetAttribute(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("type.__getattribute__", 2, args); err != nil {
		return nil, err
	}
	name, err := Arg[*Str](args, 1, "type.__getattribute__", "str")
	if err != nil {
		return nil, err
	}
	return rt.TypeGetAttribute(ctx, args[0], name.value)
}

// TypeGetAttribute implements type.__getattribute__. Resolution stops at the
// first step that applies:
//
//  1. a data descriptor (__get__ and __set__) found on the metatype's MRO
//     is invoked as __get__(attr, subject, metatype);
//  2. an attribute found on the subject's own MRO whose type has __get__ is
//     invoked as __get__(attr, None, subject);
//  3. otherwise that attribute is returned as is;
//  4. an attribute found on the metatype is bound to the subject;
//  5. the subject's __getattr__ is called with (metatype, name);
//  6. an AttributeError naming the metatype and the subject is returned.
//
// Descriptors and __getattr__ may re-enter attribute resolution. The depth of
// such recursion is bounded only by the Go stack.
func (rt *Runtime) TypeGetAttribute(ctx context.Context, subject Object, name string) (Object, error) {
	mcl := subject.Class()
	rt.logger.Trace().Str("subject", displayName(subject)).Str("name", name).Msg("type.__getattribute__")

	metaAttr, inMeta := mcl.GetAttr(name)
	if inMeta && isDataDescriptor(metaAttr) {
		get, _ := capability(metaAttr, "__get__")
		return rt.Invoke(ctx, get, metaAttr, subject, mcl)
	}

	if attr, ok := subject.GetAttr(name); ok {
		if get, ok := capability(attr, "__get__"); ok {
			return rt.Invoke(ctx, get, attr, rt.none, subject)
		}
		return attr, nil
	}

	if inMeta {
		return rt.CallGetDescriptor(ctx, metaAttr, subject)
	}

	if getter, ok := subject.GetAttr("__getattr__"); ok {
		return rt.Invoke(ctx, getter, mcl, rt.NewStr(name))
	}

	err := AttributeErrorf("%s object '%s' has no attribute '%s'", mcl.name, displayName(subject), name)
	return nil, rt.withSuggestions(err, name, rt.typeAttributeNames(subject))
}

// typeMro implements the __mro__ accessor.
func (rt *Runtime) typeMro(ctx context.Context, obj Object) (Object, error) {
	full, ok := Mro(obj)
	if !ok {
		return nil, TypeErrorf("Only classes have an MRO.").WithCode(errors.E4006)
	}
	return rt.NewTuple(typesToObjects(full)), nil
}

func (rt *Runtime) typeRepr(ctx context.Context, args ...Object) (Object, error) {
	if err := Require("type.__repr__", 1, args); err != nil {
		return nil, err
	}
	cls, err := Arg[*Type](args, 0, "type.__repr__", "type")
	if err != nil {
		return nil, err
	}
	return rt.NewStr(cls.Inspect()), nil
}

// typePrepare implements type.__prepare__, which returns the namespace a
// class body is evaluated into.
func (rt *Runtime) typePrepare(ctx context.Context, args ...Object) (Object, error) {
	return rt.NewDict(), nil
}

// typeAttributeNames lists every name reachable from a type subject: its own
// MRO first, then its metatype's.
func (rt *Runtime) typeAttributeNames(subject Object) []string {
	var names []string
	if cls, ok := subject.(*Type); ok {
		for _, c := range cls.Mro() {
			names = append(names, c.dict.keys...)
		}
	}
	for _, c := range subject.Class().Mro() {
		names = append(names, c.dict.keys...)
	}
	return names
}

func classOf(ctx context.Context, obj Object) (Object, error) {
	return obj.Class(), nil
}

func requireType(obj Object, attr string) (*Type, error) {
	cls, ok := obj.(*Type)
	if !ok {
		return nil, AttributeErrorf("'%s' object has no attribute '%s'", typeName(obj), attr)
	}
	return cls, nil
}

// displayName names a subject in messages: the class name for types, the
// representation otherwise.
func displayName(obj Object) string {
	if cls, ok := obj.(*Type); ok {
		return cls.name
	}
	return obj.Inspect()
}

func typeNames(types []*Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.name
	}
	return names
}

func typesToObjects(types []*Type) []Object {
	objs := make([]Object, len(types))
	for i, t := range types {
		objs[i] = t
	}
	return objs
}

func containsType(types []*Type, t *Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

package object

import (
	"context"

	"github.com/deepnoodle-ai/pytypes/errors"
)

// initFunction makes builtin functions non-data descriptors: looked up
// through an object they bind to it, looked up through a class they stay
// unbound.
func (rt *Runtime) initFunction() {
	rt.define(rt.functionType, "__get__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := RequireRange("function.__get__", 2, 3, args); err != nil {
			return nil, err
		}
		fn, obj := args[0], args[1]
		if Is(obj, rt.none) {
			return fn, nil
		}
		return rt.NewMethod(fn, obj), nil
	})
}

// initProperty installs the property type: property(fget, fset=None) and
// its __get__/__set__ pair, which makes every property a data descriptor.
func (rt *Runtime) initProperty() {
	p := rt.propertyType
	rt.define(p, "__new__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := RequireRange("property.__new__", 1, 3, args); err != nil {
			return nil, err
		}
		var fget, fset Object
		if len(args) > 1 && !Is(args[1], rt.none) {
			fget = args[1]
		}
		if len(args) > 2 && !Is(args[2], rt.none) {
			fset = args[2]
		}
		return rt.NewProperty(fget, fset), nil
	})
	rt.define(p, "__get__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := RequireRange("property.__get__", 2, 3, args); err != nil {
			return nil, err
		}
		prop, err := Arg[*Property](args, 0, "property.__get__", "property")
		if err != nil {
			return nil, err
		}
		obj := args[1]
		if Is(obj, rt.none) {
			return prop, nil
		}
		if prop.fget == nil {
			return nil, AttributeErrorf("unreadable attribute")
		}
		return rt.Invoke(ctx, prop.fget, obj)
	})
	rt.define(p, "__set__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := Require("property.__set__", 3, args); err != nil {
			return nil, err
		}
		prop, err := Arg[*Property](args, 0, "property.__set__", "property")
		if err != nil {
			return nil, err
		}
		if prop.fset == nil {
			return nil, AttributeErrorf("can't set attribute").WithCode(errors.E4011)
		}
		if _, err := rt.Invoke(ctx, prop.fset, args[1], args[2]); err != nil {
			return nil, err
		}
		return rt.none, nil
	})
}

// initMemberDescriptor installs the accessors behind __mro__, __class__ and
// the other read-only members. They are data descriptors so that a member on
// the metatype outranks a same-named entry in a class dict.
func (rt *Runtime) initMemberDescriptor() {
	m := rt.memberDescriptorType
	rt.define(m, "__get__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := RequireRange("member_descriptor.__get__", 2, 3, args); err != nil {
			return nil, err
		}
		member, err := Arg[*MemberDescriptor](args, 0, "member_descriptor.__get__", "member_descriptor")
		if err != nil {
			return nil, err
		}
		obj := args[1]
		if Is(obj, rt.none) {
			return member, nil
		}
		return member.get(ctx, obj)
	})
	rt.define(m, "__set__", func(ctx context.Context, args ...Object) (Object, error) {
		if err := Require("member_descriptor.__set__", 3, args); err != nil {
			return nil, err
		}
		member, err := Arg[*MemberDescriptor](args, 0, "member_descriptor.__set__", "member_descriptor")
		if err != nil {
			return nil, err
		}
		return nil, AttributeErrorf("readonly attribute '%s'", member.name).WithCode(errors.E4011)
	})
}

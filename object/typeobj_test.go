package object_test

import (
	"context"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/pytypes/errors"
	"github.com/deepnoodle-ai/pytypes/mro"
	"github.com/deepnoodle-ai/pytypes/object"
)

func TestNewTypeDiamond(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	b := newClass(t, rt, "B", a)
	c := newClass(t, rt, "C", a)
	d := newClass(t, rt, "D", b, c)

	require.Equal(t, []string{"D", "B", "C", "A", "object"}, mroNames(d.Mro()))
	require.Equal(t, []string{"B", "C"}, mroNames(d.Bases()))
	require.Same(t, rt.TypeType(), d.Class())
	require.True(t, object.IsSubclass(d, a))
	require.False(t, object.IsSubclass(a, d))
}

func TestNewTypeBasePrecedence(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	b := newClass(t, rt, "B")
	c := newClass(t, rt, "C", a, b)
	require.Equal(t, []string{"C", "A", "B", "object"}, mroNames(c.Mro()))
	require.Equal(t, []string{"A", "B", "object"}, mroNames(c.Ancestors()))
}

func TestNewTypeInconsistent(t *testing.T) {
	rt := object.NewRuntime()
	x := newClass(t, rt, "X")
	y := newClass(t, rt, "Y")
	xy := newClass(t, rt, "XY", x, y)
	yx := newClass(t, rt, "YX", y, x)

	_, err := rt.NewType(rt.TypeType(), "Z", []*object.Type{xy, yx}, nil)
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.ErrType))
	require.True(t, errors.Is(err, mro.ErrInconsistent))
	serr := structured(t, err)
	require.Equal(t, errors.E4002, serr.Code)
	require.Equal(t, "Cannot create a consistent method resolution order (MRO) for bases XY, YX", serr.Message)
}

func TestNewTypeRootBeforeSubclass(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	_, err := rt.NewType(rt.TypeType(), "Bad", []*object.Type{rt.ObjectType(), a}, nil)
	require.True(t, errors.Is(err, mro.ErrInconsistent))
}

func TestNewTypeInvalidBases(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")

	_, err := rt.NewType(rt.TypeType(), "B", []*object.Type{a, a}, nil)
	require.EqualError(t, err, "TypeError: duplicate base class A")
	require.Equal(t, errors.E4003, structured(t, err).Code)

	_, err = rt.NewType(rt.TypeType(), "B", nil, nil)
	require.Error(t, err)

	_, err = rt.NewType(nil, "B", []*object.Type{a}, nil)
	require.Error(t, err)
}

func TestNewTypeKeepsDict(t *testing.T) {
	rt := object.NewRuntime()
	dict := rt.NewDict()
	cls, err := rt.NewType(rt.TypeType(), "A", []*object.Type{rt.ObjectType()}, dict)
	require.NoError(t, err)
	require.Same(t, dict, cls.Dict())
	require.Equal(t, "<class 'A'>", cls.Inspect())
}

// metaclassFixture builds a metatype M with a data descriptor "tag", a plain
// method "hello" and a plain value "origin", and a class A of type M whose
// dict shadows "tag" and "origin".
func metaclassFixture(t *testing.T, rt *object.Runtime) (*object.Type, *object.Type) {
	t.Helper()
	metaDict := rt.NewDict()
	metaDict.Set("tag", rt.NewProperty(rt.NewBuiltin("tag", func(ctx context.Context, args ...object.Object) (object.Object, error) {
		return rt.NewStr("meta:" + object.GetTypeName(args[0])), nil
	}), nil))
	metaDict.Set("hello", rt.NewBuiltin("hello", func(ctx context.Context, args ...object.Object) (object.Object, error) {
		return rt.NewStr("hello " + object.GetTypeName(args[0])), nil
	}))
	metaDict.Set("origin", rt.NewStr("meta"))
	meta, err := rt.NewType(rt.TypeType(), "M", []*object.Type{rt.TypeType()}, metaDict)
	require.NoError(t, err)

	dict := rt.NewDict()
	dict.Set("tag", rt.NewStr("class"))
	dict.Set("origin", rt.NewStr("class"))
	cls, err := rt.NewType(meta, "A", []*object.Type{rt.ObjectType()}, dict)
	require.NoError(t, err)
	return meta, cls
}

func TestTypeGetAttributeMetaDataDescriptor(t *testing.T) {
	rt := object.NewRuntime()
	_, cls := metaclassFixture(t, rt)

	value, err := rt.TypeGetAttribute(context.Background(), cls, "tag")
	require.NoError(t, err)
	require.Equal(t, "meta:A", value.(*object.Str).Value())
}

func TestTypeGetAttributeMetaSetOnly(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()

	setOnlyDict := rt.NewDict()
	setOnlyDict.Set("__set__", constant(rt, "__set__", rt.None()))
	setOnly, err := rt.NewType(rt.TypeType(), "SetOnly", []*object.Type{rt.ObjectType()}, setOnlyDict)
	require.NoError(t, err)
	attr := rt.NewInstance(setOnly)

	metaDict := rt.NewDict()
	metaDict.Set("x", attr)
	meta, err := rt.NewType(rt.TypeType(), "M", []*object.Type{rt.TypeType()}, metaDict)
	require.NoError(t, err)

	// Without __get__ the attribute is not a data descriptor: the metatype
	// value is returned unbound.
	cls, err := rt.NewType(meta, "A", []*object.Type{rt.ObjectType()}, nil)
	require.NoError(t, err)
	value, err := rt.TypeGetAttribute(ctx, cls, "x")
	require.NoError(t, err)
	require.Same(t, attr, value)

	// A same-named class attribute takes precedence.
	dict := rt.NewDict()
	dict.Set("x", rt.NewStr("class"))
	shadow, err := rt.NewType(meta, "B", []*object.Type{rt.ObjectType()}, dict)
	require.NoError(t, err)
	value, err = rt.TypeGetAttribute(ctx, shadow, "x")
	require.NoError(t, err)
	require.Equal(t, "class", value.(*object.Str).Value())
}

func TestTypeGetAttributeOwnAttribute(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	_, cls := metaclassFixture(t, rt)

	value, err := rt.TypeGetAttribute(ctx, cls, "origin")
	require.NoError(t, err)
	require.Equal(t, "class", value.(*object.Str).Value())

	fn := constant(rt, "method", rt.None())
	cls.Dict().Set("method", fn)
	value, err = rt.TypeGetAttribute(ctx, cls, "method")
	require.NoError(t, err)
	require.Same(t, fn, value)

	prop := rt.NewProperty(fn, nil)
	cls.Dict().Set("prop", prop)
	value, err = rt.TypeGetAttribute(ctx, cls, "prop")
	require.NoError(t, err)
	require.Same(t, prop, value)

	init, err := rt.TypeGetAttribute(ctx, cls, "__init__")
	require.NoError(t, err)
	objectInit, _ := rt.ObjectType().Dict().Get("__init__")
	require.Same(t, objectInit, init)
}

func TestTypeGetAttributeMetaAttribute(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	meta, cls := metaclassFixture(t, rt)

	hello, err := rt.TypeGetAttribute(ctx, cls, "hello")
	require.NoError(t, err)
	method, ok := hello.(*object.Method)
	require.True(t, ok)
	require.Same(t, cls, method.Self())
	result, err := rt.Invoke(ctx, hello)
	require.NoError(t, err)
	require.Equal(t, "hello A", result.(*object.Str).Value())

	meta.Dict().Set("plain", rt.NewStr("p"))
	value, err := rt.TypeGetAttribute(ctx, cls, "plain")
	require.NoError(t, err)
	require.Equal(t, "p", value.(*object.Str).Value())
}

func TestTypeGetAttributeGetattr(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")

	var received []object.Object
	cls.Dict().Set("__getattr__", rt.NewBuiltin("__getattr__", func(ctx context.Context, args ...object.Object) (object.Object, error) {
		received = args
		return rt.NewStr("dynamic:" + args[1].(*object.Str).Value()), nil
	}))
	value, err := rt.TypeGetAttribute(ctx, cls, "missing")
	require.NoError(t, err)
	require.Equal(t, "dynamic:missing", value.(*object.Str).Value())
	require.Len(t, received, 2)
	require.Same(t, rt.TypeType(), received[0])
}

func TestTypeGetAttributeMissing(t *testing.T) {
	rt := object.NewRuntime()
	cls := newClass(t, rt, "A")
	cls.Dict().Set("greeting", rt.NewStr("hi"))

	_, err := rt.TypeGetAttribute(context.Background(), cls, "greting")
	require.EqualError(t, err, "AttributeError: type object 'A' has no attribute 'greting'")
	require.True(t, errors.IsKind(err, errors.ErrAttribute))
	require.Equal(t, "Did you mean 'greeting'?", structured(t, err).Hint)

	quiet := object.NewRuntime(object.WithoutSuggestions())
	cls = newClass(t, quiet, "A")
	cls.Dict().Set("greeting", quiet.NewStr("hi"))
	_, err = quiet.TypeGetAttribute(context.Background(), cls, "greting")
	require.Empty(t, structured(t, err).Hint)
}

func TestTypeMembers(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	a := newClass(t, rt, "A")
	b := newClass(t, rt, "B", a)

	value, err := rt.GetAttribute(ctx, b, "__mro__")
	require.NoError(t, err)
	require.Equal(t, "(<class 'B'>, <class 'A'>, <class 'object'>)", value.Inspect())

	value, err = rt.GetAttribute(ctx, rt.TypeType(), "__mro__")
	require.NoError(t, err)
	require.Equal(t, "(<class 'type'>, <class 'object'>)", value.Inspect())

	value, err = rt.GetAttribute(ctx, b, "__name__")
	require.NoError(t, err)
	require.Equal(t, "B", value.(*object.Str).Value())

	value, err = rt.GetAttribute(ctx, b, "__bases__")
	require.NoError(t, err)
	require.Equal(t, "(<class 'A'>,)", value.Inspect())

	value, err = rt.GetAttribute(ctx, b, "__class__")
	require.NoError(t, err)
	require.Same(t, rt.TypeType(), value)

	value, err = rt.GetAttribute(ctx, b, "__dict__")
	require.NoError(t, err)
	require.Same(t, b.Dict(), value)

	// A class dict entry cannot shadow a member of the metatype.
	b.Dict().Set("__name__", rt.NewStr("shadow"))
	value, err = rt.GetAttribute(ctx, b, "__name__")
	require.NoError(t, err)
	require.Equal(t, "B", value.(*object.Str).Value())
}

func TestMroOfNonClass(t *testing.T) {
	rt := object.NewRuntime()
	inst := rt.NewInstance(newClass(t, rt, "A"))
	member, ok := rt.TypeType().Dict().Get("__mro__")
	require.True(t, ok)

	_, err := rt.CallGetDescriptor(context.Background(), member, inst)
	require.EqualError(t, err, "TypeError: Only classes have an MRO.")
	require.Equal(t, errors.E4006, structured(t, err).Code)
}

func TestTypeRepr(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")

	s, err := rt.Repr(ctx, cls)
	require.NoError(t, err)
	require.Equal(t, "<class 'A'>", s)

	s, err = rt.Repr(ctx, rt.TypeType())
	require.NoError(t, err)
	require.Equal(t, "<class 'type'>", s)
}

func TestTypePrepare(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")

	prepare, err := rt.GetAttribute(ctx, cls, "__prepare__")
	require.NoError(t, err)
	first, err := rt.Invoke(ctx, prepare)
	require.NoError(t, err)
	second, err := rt.Invoke(ctx, prepare)
	require.NoError(t, err)
	require.Equal(t, 0, first.(*object.Dict).Len())
	require.NotSame(t, first, second)
}

func TestTypeCallCreatesInstance(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")

	inst, err := rt.Invoke(ctx, cls)
	require.NoError(t, err)
	require.Equal(t, object.INSTANCE, inst.Kind())
	require.Same(t, cls, inst.Class())
	require.True(t, object.IsInstance(inst, cls))
	require.True(t, object.IsInstance(inst, rt.ObjectType()))
	require.Equal(t, "<A object>", inst.Inspect())
}

func TestTypeCallRunsInit(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")
	cls.Dict().Set("__init__", rt.NewBuiltin("__init__", func(ctx context.Context, args ...object.Object) (object.Object, error) {
		if err := args[0].SetAttr("x", args[1]); err != nil {
			return nil, err
		}
		return rt.None(), nil
	}))

	inst, err := rt.Invoke(ctx, cls, rt.NewStr("v"))
	require.NoError(t, err)
	x, err := rt.GetAttribute(ctx, inst, "x")
	require.NoError(t, err)
	require.Equal(t, "v", x.(*object.Str).Value())
}

func TestTypeCallInitMustReturnNone(t *testing.T) {
	rt := object.NewRuntime()
	cls := newClass(t, rt, "A")
	cls.Dict().Set("__init__", constant(rt, "__init__", rt.NewStr("oops")))

	_, err := rt.Invoke(context.Background(), cls)
	require.EqualError(t, err, "TypeError: __init__ must return None")
	require.Equal(t, errors.E4005, structured(t, err).Code)
}

func TestTypeOneArgument(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	cls := newClass(t, rt, "A")
	inst, err := rt.Invoke(ctx, cls)
	require.NoError(t, err)

	for _, tc := range []struct {
		value    object.Object
		expected *object.Type
	}{
		{inst, cls},
		{rt.NewStr("s"), rt.StrType()},
		{cls, rt.TypeType()},
		{rt.TypeType(), rt.TypeType()},
		{rt.None(), rt.NoneType()},
	} {
		result, err := rt.Invoke(ctx, rt.TypeType(), tc.value)
		require.NoError(t, err)
		require.Same(t, tc.expected, result)
	}
}

func TestTypeThreeArguments(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	a := newClass(t, rt, "A")
	dict := rt.NewDict()
	dict.Set("k", rt.True())

	result, err := rt.Invoke(ctx, rt.TypeType(),
		rt.NewStr("B"), rt.NewTuple([]object.Object{a}), dict)
	require.NoError(t, err)
	b, ok := result.(*object.Type)
	require.True(t, ok)
	require.Equal(t, "B", b.Name())
	require.Equal(t, []string{"B", "A", "object"}, mroNames(b.Mro()))
	require.Equal(t, []string{"A", "object"}, mroNames(b.Bases()))
	require.Same(t, dict, b.Dict())

	result, err = rt.Invoke(ctx, rt.TypeType(), rt.NewStr("C"), rt.NewTuple(nil), rt.NewDict())
	require.NoError(t, err)
	require.Equal(t, []string{"C", "object"}, mroNames(result.(*object.Type).Mro()))
	require.Equal(t, []string{"object"}, mroNames(result.(*object.Type).Bases()))
}

func TestTypeWrongArity(t *testing.T) {
	rt := object.NewRuntime()
	_, err := rt.Invoke(context.Background(), rt.TypeType(), rt.NewStr("A"), rt.NewTuple(nil))
	require.EqualError(t, err, "TypeError: type() takes 1 or 3 arguments")
}

func TestTypeNonTypeBases(t *testing.T) {
	rt := object.NewRuntime()
	bases := rt.NewTuple([]object.Object{rt.NewStr("x"), rt.ObjectType(), rt.None()})
	_, err := rt.Invoke(context.Background(), rt.TypeType(), rt.NewStr("A"), bases, rt.NewDict())
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	require.Contains(t, merr.Errors[0].Error(), "bases must be types: item 0 is str")
	require.Contains(t, merr.Errors[1].Error(), "bases must be types: item 2 is NoneType")
}

func TestTypeNewRequiresMetatype(t *testing.T) {
	rt := object.NewRuntime()
	cls := newClass(t, rt, "A")
	typeNew, ok := rt.TypeType().Dict().Get("__new__")
	require.True(t, ok)

	_, err := rt.Invoke(context.Background(), typeNew,
		cls, rt.NewStr("B"), rt.NewTuple(nil), rt.NewDict())
	require.EqualError(t, err, "TypeError: type.__new__(A): A is not a subtype of type")

	_, err = rt.Invoke(context.Background(), typeNew,
		rt.TypeType(), rt.NewStr("B"), rt.NewStr("not a tuple"), rt.NewDict())
	require.EqualError(t, err, "TypeError: type.__new__() argument 3 must be tuple, not str")
}

func TestMetaclassCall(t *testing.T) {
	rt := object.NewRuntime()
	ctx := context.Background()
	meta := newClass(t, rt, "Meta", rt.TypeType())

	result, err := rt.Invoke(ctx, meta, rt.NewStr("C"), rt.NewTuple(nil), rt.NewDict())
	require.NoError(t, err)
	cls, ok := result.(*object.Type)
	require.True(t, ok)
	require.Same(t, meta, cls.Class())
	require.True(t, object.IsInstance(cls, rt.TypeType()))

	inst, err := rt.Invoke(ctx, cls)
	require.NoError(t, err)
	require.Same(t, cls, inst.Class())

	value, err := rt.GetAttribute(ctx, cls, "missing")
	require.Nil(t, value)
	require.EqualError(t, err, "AttributeError: Meta object 'C' has no attribute 'missing'")
}

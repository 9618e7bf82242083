package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/pytypes/object"
)

func TestMroQuery(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")

	full, ok := object.Mro(a)
	require.True(t, ok)
	require.Equal(t, []string{"A", "object"}, mroNames(full))

	_, ok = object.Mro(rt.NewInstance(a))
	require.False(t, ok)

	require.Equal(t, []string{"A", "object"}, mroNames(object.BaseClasses(rt.NewInstance(a))))
	require.Equal(t, []string{"type", "object"}, mroNames(object.BaseClasses(a)))
}

func TestIsInstanceAndSubclass(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	b := newClass(t, rt, "B", a)
	c := newClass(t, rt, "C")
	inst := rt.NewInstance(b)

	require.True(t, object.IsInstance(inst, b))
	require.True(t, object.IsInstance(inst, a))
	require.True(t, object.IsInstance(inst, rt.ObjectType()))
	require.False(t, object.IsInstance(inst, c))
	require.False(t, object.IsInstance(inst, rt.TypeType()))
	require.True(t, object.IsInstance(b, rt.TypeType()))
	require.True(t, object.IsInstance(rt.NewStr("s"), rt.StrType()))

	require.True(t, object.IsSubclass(b, b))
	require.True(t, object.IsSubclass(b, a))
	require.False(t, object.IsSubclass(a, b))
	require.False(t, object.IsSubclass(b, c))
}

func TestGetTypeName(t *testing.T) {
	rt := object.NewRuntime()
	require.Equal(t, "object", object.GetTypeName(rt.ObjectType()))
	require.Equal(t, "A", object.GetTypeName(newClass(t, rt, "A")))
	require.Panics(t, func() {
		object.GetTypeName(rt.NewStr("not a type"))
	})
}

func TestGetAttributesShadowing(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	a.Dict().Set("x", rt.NewStr("A.x"))
	a.Dict().Set("y", rt.NewStr("A.y"))
	b := newClass(t, rt, "B", a)
	b.Dict().Set("x", rt.NewStr("B.x"))
	inst := rt.NewInstance(b)
	require.NoError(t, inst.SetAttr("y", rt.NewStr("own")))

	attrs := rt.GetAttributes(inst)
	x, _ := attrs.Get("x")
	y, _ := attrs.Get("y")
	require.Equal(t, "B.x", x.(*object.Str).Value())
	require.Equal(t, "own", y.(*object.Str).Value())
	require.True(t, attrs.Has("__init__"))

	// Root definitions come first.
	keys := attrs.Keys()
	require.Equal(t, "__new__", keys[0])
	require.Equal(t, []string{"x", "y"}, keys[len(keys)-2:])

	// The type's own dicts are untouched.
	require.Equal(t, []string{"x"}, b.Dict().Keys())
}

func TestGetAttributesOfType(t *testing.T) {
	rt := object.NewRuntime()
	a := newClass(t, rt, "A")
	a.Dict().Set("x", rt.None())

	// For a type the flattened view is taken from its metatype.
	attrs := rt.GetAttributes(a)
	require.True(t, attrs.Has("__mro__"))
	require.False(t, attrs.Has("x"))
}

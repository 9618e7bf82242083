package object_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/pytypes/errors"
	"github.com/deepnoodle-ai/pytypes/object"
)

func newClass(t *testing.T, rt *object.Runtime, name string, bases ...*object.Type) *object.Type {
	t.Helper()
	if len(bases) == 0 {
		bases = []*object.Type{rt.ObjectType()}
	}
	cls, err := rt.NewType(rt.TypeType(), name, bases, nil)
	require.NoError(t, err)
	return cls
}

func mroNames(types []*object.Type) []string {
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = typ.Name()
	}
	return names
}

// constant returns a builtin that ignores its arguments.
func constant(rt *object.Runtime, name string, value object.Object) *object.Builtin {
	return rt.NewBuiltin(name, func(ctx context.Context, args ...object.Object) (object.Object, error) {
		return value, nil
	})
}

func structured(t *testing.T, err error) *errors.StructuredError {
	t.Helper()
	var serr *errors.StructuredError
	require.True(t, errors.As(err, &serr), "expected a structured error, got %v", err)
	return serr
}

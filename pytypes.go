// Package pytypes provides a class-based object model: type objects with C3
// method resolution order, instances, and attribute resolution through the
// descriptor protocol.
//
// The object package holds the model itself. This package ties it to the
// built-in functions and the hierarchy loader:
//
//	rt, set, err := pytypes.LoadFile(ctx, "classes.yaml")
//	d, _ := set.Lookup("D")
//	greeting, err := rt.GetAttribute(ctx, d, "greeting")
package pytypes

import (
	"context"

	"github.com/deepnoodle-ai/pytypes/builtins"
	"github.com/deepnoodle-ai/pytypes/hierarchy"
	"github.com/deepnoodle-ai/pytypes/object"
)

// NewRuntime bootstraps a runtime configured with the given options.
func NewRuntime(opts ...Option) *object.Runtime {
	return object.NewRuntime(collectOptions(opts...).runtimeOpts()...)
}

// Builtins returns the built-in namespace for rt.
func Builtins(rt *object.Runtime) map[string]object.Object {
	return builtins.Builtins(rt)
}

// Load builds the classes described by a hierarchy document in a new
// runtime.
func Load(ctx context.Context, data []byte, opts ...Option) (*object.Runtime, *hierarchy.Set, error) {
	spec, err := hierarchy.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return load(ctx, spec, opts...)
}

// LoadFile builds the classes described by the hierarchy file at path in a
// new runtime.
func LoadFile(ctx context.Context, path string, opts ...Option) (*object.Runtime, *hierarchy.Set, error) {
	spec, err := hierarchy.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return load(ctx, spec, opts...)
}

func load(ctx context.Context, spec *hierarchy.Spec, opts ...Option) (*object.Runtime, *hierarchy.Set, error) {
	o := collectOptions(opts...)
	rt := object.NewRuntime(o.runtimeOpts()...)
	set, err := hierarchy.Load(o.context(ctx), rt, spec)
	if err != nil {
		return nil, nil, err
	}
	return rt, set, nil
}

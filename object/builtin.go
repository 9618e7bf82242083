package object

import (
	"context"
	"fmt"
)

var _ Callable = (*Builtin)(nil) // Ensure that *Builtin implements Callable

// BuiltinFunction holds the type of a built-in function.
type BuiltinFunction func(ctx context.Context, args ...Object) (Object, error)

// Builtin wraps a Go function. Its type is the runtime's function type, which
// is a non-data descriptor: looking a Builtin up through an instance yields a
// bound Method.
type Builtin struct {
	*base
	fn   BuiltinFunction
	name string
}

func (b *Builtin) Kind() Kind {
	return BUILTIN
}

func (b *Builtin) Name() string {
	return b.name
}

func (b *Builtin) Value() BuiltinFunction {
	return b.fn
}

func (b *Builtin) Call(ctx context.Context, args ...Object) (Object, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("<built-in function %s>", b.name)
}

func (b *Builtin) String() string {
	return b.Inspect()
}

// Method is a callable bound to the object it was looked up through. Calling
// it prepends that object to the arguments.
type Method struct {
	*base
	fn   Object
	self Object
}

func (m *Method) Kind() Kind {
	return METHOD
}

// Func returns the underlying unbound callable.
func (m *Method) Func() Object {
	return m.fn
}

// Self returns the object the method is bound to.
func (m *Method) Self() Object {
	return m.self
}

func (m *Method) Inspect() string {
	name := m.fn.Inspect()
	if b, ok := m.fn.(*Builtin); ok {
		name = b.name
	}
	return fmt.Sprintf("<bound method %s of %s>", name, m.self.Inspect())
}

func (m *Method) String() string {
	return m.Inspect()
}

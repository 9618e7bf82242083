package object

import (
	"context"
	"fmt"
)

// Property is a data descriptor built from a getter and an optional setter.
// Either function may be nil.
type Property struct {
	*base
	fget Object
	fset Object
}

func (p *Property) Kind() Kind {
	return PROPERTY
}

func (p *Property) Getter() Object {
	return p.fget
}

func (p *Property) Setter() Object {
	return p.fset
}

func (p *Property) Inspect() string {
	return "<property object>"
}

// MemberGetter computes the value of a read-only member for obj.
type MemberGetter func(ctx context.Context, obj Object) (Object, error)

// MemberDescriptor is a read-only data descriptor backed by a Go function.
// It implements accessors such as __mro__ and __class__.
type MemberDescriptor struct {
	*base
	name  string
	owner string
	get   MemberGetter
}

func (m *MemberDescriptor) Kind() Kind {
	return MEMBER_DESCRIPTOR
}

func (m *MemberDescriptor) Name() string {
	return m.name
}

func (m *MemberDescriptor) Inspect() string {
	return fmt.Sprintf("<member '%s' of '%s' objects>", m.name, m.owner)
}

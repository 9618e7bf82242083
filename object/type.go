package object

import (
	"fmt"
	"slices"
)

// Type is a class: a name, an attribute dict, and the method resolution
// order computed when the type was created.
//
// The name, bases and MRO never change after construction. The dict may be
// mutated freely.
type Type struct {
	class *Type
	name  string
	dict  *Dict
	bases []*Type
	// Ancestors in resolution order, excluding the type itself.
	mro []*Type
}

func (t *Type) Kind() Kind {
	return TYPE
}

// Class returns the metatype.
func (t *Type) Class() *Type {
	return t.class
}

func (t *Type) Name() string {
	return t.name
}

// Dict returns the type's own attribute dict. It is not a copy.
func (t *Type) Dict() *Dict {
	return t.dict
}

// Bases returns the direct bases the type was created with.
func (t *Type) Bases() []*Type {
	return slices.Clone(t.bases)
}

// Mro returns the full method resolution order: the type itself followed by
// its ancestors.
func (t *Type) Mro() []*Type {
	full := make([]*Type, 0, len(t.mro)+1)
	full = append(full, t)
	return append(full, t.mro...)
}

// Ancestors returns the MRO without the type itself.
func (t *Type) Ancestors() []*Type {
	return slices.Clone(t.mro)
}

// GetAttr searches the type's own dict and then each dict along its MRO.
func (t *Type) GetAttr(name string) (Object, bool) {
	if value, ok := t.dict.Get(name); ok {
		return value, true
	}
	for _, ancestor := range t.mro {
		if value, ok := ancestor.dict.Get(name); ok {
			return value, true
		}
	}
	return nil, false
}

// Owner returns the type along the MRO whose dict defines name.
func (t *Type) Owner(name string) (*Type, bool) {
	for _, c := range t.Mro() {
		if c.dict.Has(name) {
			return c, true
		}
	}
	return nil, false
}

func (t *Type) SetAttr(name string, value Object) error {
	t.dict.Set(name, value)
	return nil
}

func (t *Type) Inspect() string {
	return fmt.Sprintf("<class '%s'>", t.name)
}

func (t *Type) String() string {
	return t.Inspect()
}

// createTypeType wires the metatype. Its type is itself and its only
// ancestor is the root type. The dict type may still be an unfilled shell.
func createTypeType(typeType, objectType, dictType *Type) {
	typeType.name = "type"
	typeType.dict = newDict(dictType)
	typeType.bases = []*Type{objectType}
	typeType.mro = []*Type{objectType}
	typeType.class = typeType
}

// createObjectType wires the root type, which has no ancestors.
func createObjectType(objectType, typeType, dictType *Type) {
	objectType.name = "object"
	objectType.dict = newDict(dictType)
	objectType.bases = nil
	objectType.mro = nil
	objectType.class = typeType
}

// fillBuiltinType turns an allocated shell into a direct subclass of object.
func fillBuiltinType(t *Type, name string, typeType, objectType, dictType *Type) {
	t.name = name
	t.dict = newDict(dictType)
	t.bases = []*Type{objectType}
	t.mro = []*Type{objectType}
	t.class = typeType
}

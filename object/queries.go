package object

import "fmt"

// Mro returns the full method resolution order of obj, the type itself
// first. It reports false when obj is not a type.
func Mro(obj Object) ([]*Type, bool) {
	cls, ok := obj.(*Type)
	if !ok {
		return nil, false
	}
	return cls.Mro(), true
}

// BaseClasses returns the full MRO of obj's type.
func BaseClasses(obj Object) []*Type {
	return obj.Class().Mro()
}

// IsInstance reports whether cls appears in the MRO of obj's type.
func IsInstance(obj Object, cls *Type) bool {
	return containsType(BaseClasses(obj), cls)
}

// IsSubclass reports whether cls appears in the MRO of typ. Every type is a
// subclass of itself.
func IsSubclass(typ, cls *Type) bool {
	return containsType(typ.Mro(), cls)
}

// GetTypeName returns the name of a type. Calling it with anything other
// than a type is a bug in the caller and panics.
func GetTypeName(obj Object) string {
	cls, ok := obj.(*Type)
	if !ok {
		panic(fmt.Sprintf("cannot get type name of non-type %s", obj.Inspect()))
	}
	return cls.name
}

// GetAttributes flattens every attribute visible on obj into one dict. The
// dicts along the MRO of obj's type are applied root first, so nearer
// definitions shadow farther ones, and an instance's own attributes are
// applied last.
func (rt *Runtime) GetAttributes(obj Object) *Dict {
	attributes := rt.NewDict()
	classes := BaseClasses(obj)
	for i := len(classes) - 1; i >= 0; i-- {
		attributes.Update(classes[i].dict)
	}
	if inst, ok := obj.(*Instance); ok {
		attributes.Update(inst.dict)
	}
	return attributes
}

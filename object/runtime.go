package object

import (
	"github.com/rs/zerolog"
)

// Runtime owns the bootstrap types and implements the parts of the type
// system that may call back into user code.
//
// A Runtime holds no locks. Callers must not mutate a type's dict while a
// lookup through that type is in progress.
type Runtime struct {
	typeType             *Type
	objectType           *Type
	dictType             *Type
	strType              *Type
	tupleType            *Type
	noneType             *Type
	boolType             *Type
	functionType         *Type
	methodType           *Type
	propertyType         *Type
	memberDescriptorType *Type

	none       *NoneType
	trueValue  *Bool
	falseValue *Bool
	types      *typeRegistry
	logger     zerolog.Logger
	suggest    bool
}

// NewRuntime bootstraps the type system.
//
// The metatype and the root type refer to each other, so they are allocated
// first as empty shells and wired afterwards: type is an instance of itself
// and a subclass of object, object is an instance of type with no ancestors.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		logger:  zerolog.Nop(),
		suggest: true,
		types:   newTypeRegistry(),
	}
	for _, opt := range opts {
		opt(rt)
	}

	rt.typeType = &Type{}
	rt.objectType = &Type{}
	rt.dictType = &Type{}
	createTypeType(rt.typeType, rt.objectType, rt.dictType)
	createObjectType(rt.objectType, rt.typeType, rt.dictType)
	rt.dictType = rt.builtinType(rt.dictType, "dict")

	rt.strType = rt.builtinType(&Type{}, "str")
	rt.tupleType = rt.builtinType(&Type{}, "tuple")
	rt.noneType = rt.builtinType(&Type{}, "NoneType")
	rt.functionType = rt.builtinType(&Type{}, "builtin_function_or_method")
	rt.methodType = rt.builtinType(&Type{}, "method")
	rt.propertyType = rt.builtinType(&Type{}, "property")
	rt.memberDescriptorType = rt.builtinType(&Type{}, "member_descriptor")
	rt.boolType = rt.builtinType(&Type{}, "bool")
	rt.none = &NoneType{base: &base{class: rt.noneType}}
	rt.trueValue = &Bool{base: &base{class: rt.boolType}, value: true}
	rt.falseValue = &Bool{base: &base{class: rt.boolType}, value: false}

	rt.types.register(rt.typeType)
	rt.types.register(rt.objectType)
	rt.types.register(rt.dictType)
	rt.types.register(rt.strType)
	rt.types.register(rt.tupleType)
	rt.types.register(rt.noneType)
	rt.types.register(rt.boolType)
	rt.types.register(rt.functionType)
	rt.types.register(rt.methodType)
	rt.types.register(rt.propertyType)
	rt.types.register(rt.memberDescriptorType)

	rt.initType()
	rt.initObject()
	rt.initFunction()
	rt.initProperty()
	rt.initMemberDescriptor()

	rt.logger.Debug().Int("types", rt.types.len()).Msg("runtime bootstrapped")
	return rt
}

func (rt *Runtime) builtinType(shell *Type, name string) *Type {
	fillBuiltinType(shell, name, rt.typeType, rt.objectType, rt.dictType)
	return shell
}

// TypeType returns the metatype, type.
func (rt *Runtime) TypeType() *Type { return rt.typeType }

// ObjectType returns the root type, object.
func (rt *Runtime) ObjectType() *Type { return rt.objectType }

func (rt *Runtime) DictType() *Type { return rt.dictType }

func (rt *Runtime) StrType() *Type { return rt.strType }

func (rt *Runtime) TupleType() *Type { return rt.tupleType }

func (rt *Runtime) NoneType() *Type { return rt.noneType }

func (rt *Runtime) FunctionType() *Type { return rt.functionType }

func (rt *Runtime) MethodType() *Type { return rt.methodType }

func (rt *Runtime) PropertyType() *Type { return rt.propertyType }

func (rt *Runtime) MemberDescriptorType() *Type { return rt.memberDescriptorType }

func (rt *Runtime) BoolType() *Type { return rt.boolType }

// None returns the None singleton.
func (rt *Runtime) None() *NoneType { return rt.none }

func (rt *Runtime) True() *Bool { return rt.trueValue }

func (rt *Runtime) False() *Bool { return rt.falseValue }

// NewBool returns the True or False singleton.
func (rt *Runtime) NewBool(value bool) *Bool {
	if value {
		return rt.trueValue
	}
	return rt.falseValue
}

// Logger returns the runtime's logger.
func (rt *Runtime) Logger() zerolog.Logger { return rt.logger }

// LookupType returns the builtin type registered under name.
func (rt *Runtime) LookupType(name string) (*Type, bool) {
	return rt.types.lookup(name)
}

// BuiltinTypes returns the builtin types in registration order.
func (rt *Runtime) BuiltinTypes() []*Type {
	return rt.types.all()
}

func (rt *Runtime) NewStr(value string) *Str {
	return &Str{base: &base{class: rt.strType}, value: value}
}

func (rt *Runtime) NewTuple(items []Object) *Tuple {
	return &Tuple{base: &base{class: rt.tupleType}, items: items}
}

func (rt *Runtime) NewDict() *Dict {
	return newDict(rt.dictType)
}

// NewInstance allocates an instance of cls with an empty dict. It does not
// run __new__ or __init__; call the type through Invoke for that.
func (rt *Runtime) NewInstance(cls *Type) *Instance {
	return &Instance{class: cls, dict: rt.NewDict()}
}

func (rt *Runtime) NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{base: &base{class: rt.functionType}, fn: fn, name: name}
}

// NewMethod binds fn to self.
func (rt *Runtime) NewMethod(fn, self Object) *Method {
	return &Method{base: &base{class: rt.methodType}, fn: fn, self: self}
}

// NewProperty creates a data descriptor. fset may be nil for a read-only
// property.
func (rt *Runtime) NewProperty(fget, fset Object) *Property {
	return &Property{base: &base{class: rt.propertyType}, fget: fget, fset: fset}
}

func (rt *Runtime) NewMemberDescriptor(owner *Type, name string, get MemberGetter) *MemberDescriptor {
	return &MemberDescriptor{
		base:  &base{class: rt.memberDescriptorType},
		name:  name,
		owner: owner.name,
		get:   get,
	}
}

// define installs a builtin function in t's dict.
func (rt *Runtime) define(t *Type, name string, fn BuiltinFunction) {
	t.dict.Set(name, rt.NewBuiltin(name, fn))
}

// defineMember installs a read-only member descriptor in t's dict.
func (rt *Runtime) defineMember(t *Type, name string, get MemberGetter) {
	t.dict.Set(name, rt.NewMemberDescriptor(t, name, get))
}

package object

import "fmt"

// Instance is an object created by a user-defined type. Its dict holds only
// its own attributes; inherited attributes are reached through its type.
type Instance struct {
	class *Type
	dict  *Dict
}

func (i *Instance) Kind() Kind {
	return INSTANCE
}

func (i *Instance) Class() *Type {
	return i.class
}

// Dict returns the instance's own attribute dict. It is not a copy.
func (i *Instance) Dict() *Dict {
	return i.dict
}

func (i *Instance) GetAttr(name string) (Object, bool) {
	if value, ok := i.dict.Get(name); ok {
		return value, true
	}
	return i.class.GetAttr(name)
}

func (i *Instance) SetAttr(name string, value Object) error {
	i.dict.Set(name, value)
	return nil
}

func (i *Instance) Inspect() string {
	return fmt.Sprintf("<%s object>", i.class.name)
}

func (i *Instance) String() string {
	return i.Inspect()
}

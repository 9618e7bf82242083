package object

// base is embedded by every kind that has no attribute storage of its own.
type base struct {
	class *Type
}

func (b *base) Class() *Type {
	return b.class
}

func (b *base) GetAttr(name string) (Object, bool) {
	if b.class == nil {
		return nil, false
	}
	return b.class.GetAttr(name)
}

func (b *base) SetAttr(name string, value Object) error {
	return AttributeErrorf("'%s' object has no attribute '%s'", b.class.Name(), name)
}

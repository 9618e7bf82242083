package object

// NoneType is the type of the runtime's None singleton.
type NoneType struct {
	*base
}

func (n *NoneType) Kind() Kind {
	return NONE
}

func (n *NoneType) Inspect() string {
	return "None"
}

func (n *NoneType) String() string {
	return n.Inspect()
}

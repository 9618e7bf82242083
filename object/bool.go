package object

// Bool is the result type of predicates such as isinstance and hasattr.
type Bool struct {
	*base
	value bool
}

func (b *Bool) Kind() Kind {
	return BOOL
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Inspect() string {
	if b.value {
		return "True"
	}
	return "False"
}

func (b *Bool) String() string {
	return b.Inspect()
}

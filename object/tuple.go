package object

import (
	"slices"
	"strings"
)

// Tuple is an immutable sequence of objects.
type Tuple struct {
	*base
	items []Object
}

func (t *Tuple) Kind() Kind {
	return TUPLE
}

// Items returns a copy of the tuple's elements.
func (t *Tuple) Items() []Object {
	return slices.Clone(t.items)
}

func (t *Tuple) Len() int {
	return len(t.items)
}

func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.items))
	for i, item := range t.items {
		parts[i] = item.Inspect()
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) String() string {
	return t.Inspect()
}

package object

import (
	"slices"
	"strings"
)

// Dict is a string-keyed map that preserves insertion order. It holds the
// attributes of types and instances.
type Dict struct {
	*base
	keys  []string
	items map[string]Object
}

func newDict(class *Type) *Dict {
	return &Dict{base: &base{class: class}, items: map[string]Object{}}
}

func (d *Dict) Kind() Kind {
	return DICT
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (Object, bool) {
	value, ok := d.items[key]
	return value, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.items[key]
	return ok
}

// Set stores value under key. Overwriting keeps the key's original position.
func (d *Dict) Set(key string, value Object) {
	if _, ok := d.items[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.items[key] = value
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key string) bool {
	if _, ok := d.items[key]; !ok {
		return false
	}
	delete(d.items, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
	return true
}

func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	return slices.Clone(d.keys)
}

// Enumerate calls fn for each entry in insertion order. Return false to stop.
func (d *Dict) Enumerate(fn func(key string, value Object) bool) {
	for _, key := range d.keys {
		if !fn(key, d.items[key]) {
			return
		}
	}
}

// Update copies every entry of other into d.
func (d *Dict) Update(other *Dict) {
	other.Enumerate(func(key string, value Object) bool {
		d.Set(key, value)
		return true
	})
}

// Copy returns a shallow copy with the same type.
func (d *Dict) Copy() *Dict {
	out := newDict(d.class)
	out.Update(d)
	return out
}

func (d *Dict) Inspect() string {
	var b strings.Builder
	b.WriteString("{")
	for i, key := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'")
		b.WriteString(key)
		b.WriteString("': ")
		b.WriteString(d.items[key].Inspect())
	}
	b.WriteString("}")
	return b.String()
}

func (d *Dict) String() string {
	return d.Inspect()
}

package object

// typeRegistry indexes the builtin types by name.
type typeRegistry struct {
	byName map[string]*Type
	order  []*Type
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{byName: map[string]*Type{}}
}

// register adds t under its name. Registering two types with the same name
// is a bootstrap bug.
func (r *typeRegistry) register(t *Type) {
	if _, exists := r.byName[t.name]; exists {
		panic("type " + t.name + " already registered")
	}
	r.byName[t.name] = t
	r.order = append(r.order, t)
}

func (r *typeRegistry) lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

func (r *typeRegistry) all() []*Type {
	out := make([]*Type, len(r.order))
	copy(out, r.order)
	return out
}

func (r *typeRegistry) len() int {
	return len(r.order)
}

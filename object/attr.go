package object

// AttrSpec describes an attribute visible on a type.
// This provides metadata for introspection and tooling.
type AttrSpec struct {
	// Name is the attribute name (e.g., "__init__", "greeting").
	Name string `json:"name"`

	// Owner is the name of the type along the MRO whose dict defines it.
	Owner string `json:"owner"`

	// Kind is the kind of the stored value.
	Kind Kind `json:"kind"`

	// Descriptor is "data", "non-data" or empty for plain values.
	Descriptor string `json:"descriptor,omitempty"`
}

// TypeSpec describes a type.
type TypeSpec struct {
	Name     string     `json:"name"`
	Metatype string     `json:"metatype"`
	Bases    []string   `json:"bases"`
	Mro      []string   `json:"mro"`
	Attrs    []AttrSpec `json:"attrs"`
}

// DescribeType returns the specification of t. Attributes are listed in
// flattening order: names first defined nearer the root come first.
func DescribeType(t *Type) TypeSpec {
	spec := TypeSpec{
		Name:     t.name,
		Metatype: t.class.name,
		Bases:    typeNames(t.bases),
		Mro:      typeNames(t.Mro()),
	}
	seen := map[string]bool{}
	full := t.Mro()
	for i := len(full) - 1; i >= 0; i-- {
		for _, name := range full[i].dict.keys {
			if seen[name] {
				continue
			}
			seen[name] = true
			owner, _ := t.Owner(name)
			value, _ := owner.dict.Get(name)
			spec.Attrs = append(spec.Attrs, AttrSpec{
				Name:       name,
				Owner:      owner.name,
				Kind:       value.Kind(),
				Descriptor: descriptorKind(value),
			})
		}
	}
	return spec
}

func descriptorKind(value Object) string {
	if isDataDescriptor(value) {
		return "data"
	}
	if _, ok := capability(value, "__get__"); ok {
		return "non-data"
	}
	return ""
}

// AttrNames returns just the attribute names from a slice of AttrSpec.
func AttrNames(attrs []AttrSpec) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}

// FindAttr searches for an attribute by name in a slice of AttrSpec.
func FindAttr(attrs []AttrSpec, name string) (AttrSpec, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return AttrSpec{}, false
}

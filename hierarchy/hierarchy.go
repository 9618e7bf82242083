// Package hierarchy builds classes from a declarative YAML description.
//
//	classes:
//	  - name: Meta
//	    bases: [type]
//	  - name: A
//	  - name: B
//	    bases: [A]
//	    metaclass: Meta
//	    attrs:
//	      greeting: hello
//
// Classes are created in the order they are listed, so bases and metaclasses
// must be defined earlier in the file or be builtin types. A class without
// bases derives from object; a class without a metaclass is an instance of
// type.
package hierarchy

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/pytypes/errors"
	"github.com/deepnoodle-ai/pytypes/object"
)

// Spec is a parsed hierarchy file.
type Spec struct {
	Classes []ClassSpec `yaml:"classes" json:"classes"`
}

// ClassSpec describes one class.
type ClassSpec struct {
	Name      string        `yaml:"name" json:"name"`
	Bases     []string      `yaml:"bases,omitempty" json:"bases,omitempty"`
	Metaclass string        `yaml:"metaclass,omitempty" json:"metaclass,omitempty"`
	Attrs     yaml.MapSlice `yaml:"attrs,omitempty" json:"-"`
}

// Parse decodes a hierarchy document.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.ValueErrorf("invalid hierarchy: %s", err).
			WithCode(errors.E9003).
			WithCause(err)
	}
	return &spec, nil
}

// ReadFile reads and parses the hierarchy document at path.
func ReadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Set holds the classes built from a Spec.
type Set struct {
	rt      *object.Runtime
	classes map[string]*object.Type
	order   []string
}

// Lookup returns the class defined under name.
func (s *Set) Lookup(name string) (*object.Type, bool) {
	cls, ok := s.classes[name]
	return cls, ok
}

// Names returns the class names in definition order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Classes returns the classes in definition order.
func (s *Set) Classes() []*object.Type {
	out := make([]*object.Type, len(s.order))
	for i, name := range s.order {
		out[i] = s.classes[name]
	}
	return out
}

// Resolve returns the class defined under name, or the builtin type of
// that name.
func (s *Set) Resolve(name string) (*object.Type, bool) {
	if cls, ok := s.classes[name]; ok {
		return cls, true
	}
	return s.rt.LookupType(name)
}

// Validate reports every definition problem in spec: empty or duplicate
// names, and references to classes that are neither builtin nor defined
// earlier in the file.
func Validate(rt *object.Runtime, spec *Spec) error {
	var result *multierror.Error
	defined := map[string]bool{}
	known := func(name string) bool {
		if defined[name] {
			return true
		}
		_, ok := rt.LookupType(name)
		return ok
	}
	for i, c := range spec.Classes {
		if c.Name == "" {
			result = multierror.Append(result, errors.ValueErrorf(
				"class %d: name is required", i+1).WithCode(errors.E9003))
			continue
		}
		if known(c.Name) {
			result = multierror.Append(result, errors.ValueErrorf(
				"class %s: already defined", c.Name).WithCode(errors.E9002))
		}
		for _, base := range c.Bases {
			if !known(base) {
				result = multierror.Append(result, errors.ValueErrorf(
					"class %s: unknown base %s", c.Name, base).WithCode(errors.E9001))
			}
		}
		if c.Metaclass != "" && !known(c.Metaclass) {
			result = multierror.Append(result, errors.ValueErrorf(
				"class %s: unknown metaclass %s", c.Name, c.Metaclass).WithCode(errors.E9001))
		}
		defined[c.Name] = true
	}
	return result.ErrorOrNil()
}

// BuildError reports a class that failed to build after validation, for
// example because its bases have no consistent MRO.
type BuildError struct {
	Class string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("class %s: %s", e.Class, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ToFormatted renders the underlying error with the class name as a note.
func (e *BuildError) ToFormatted() *errors.FormattedError {
	note := "while building class " + e.Class
	var serr *errors.StructuredError
	if errors.As(e.Err, &serr) {
		formatted := serr.ToFormatted()
		formatted.Note = note
		return formatted
	}
	return &errors.FormattedError{Message: e.Err.Error(), Note: note}
}

// Load validates spec and then builds each class by calling its metaclass,
// exactly as a class statement would: the namespace comes from the
// metaclass's __prepare__ and the class from type.__call__.
func Load(ctx context.Context, rt *object.Runtime, spec *Spec) (*Set, error) {
	if err := Validate(rt, spec); err != nil {
		return nil, err
	}
	logger := rt.Logger()
	set := &Set{rt: rt, classes: map[string]*object.Type{}}
	for _, c := range spec.Classes {
		cls, err := set.build(ctx, c)
		if err != nil {
			return nil, &BuildError{Class: c.Name, Err: err}
		}
		set.classes[c.Name] = cls
		set.order = append(set.order, c.Name)
		logger.Debug().Str("name", c.Name).Msg("class loaded")
	}
	return set, nil
}

func (s *Set) build(ctx context.Context, c ClassSpec) (*object.Type, error) {
	rt := s.rt
	metatype := rt.TypeType()
	if c.Metaclass != "" {
		metatype, _ = s.Resolve(c.Metaclass)
	}
	bases := make([]object.Object, 0, len(c.Bases))
	for _, name := range c.Bases {
		base, _ := s.Resolve(name)
		bases = append(bases, base)
	}

	prepare, err := rt.GetAttribute(ctx, metatype, "__prepare__")
	if err != nil {
		return nil, err
	}
	ns, err := rt.Invoke(ctx, prepare, rt.NewStr(c.Name), rt.NewTuple(bases))
	if err != nil {
		return nil, err
	}
	dict, ok := ns.(*object.Dict)
	if !ok {
		return nil, errors.TypeErrorf("__prepare__ must return a dict, not %s", ns.Class().Name())
	}
	for _, item := range c.Attrs {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.ValueErrorf("attribute names must be strings, got %v", item.Key).
				WithCode(errors.E9003)
		}
		dict.Set(key, s.value(item.Value))
	}

	result, err := rt.Invoke(ctx, metatype, rt.NewStr(c.Name), rt.NewTuple(bases), dict)
	if err != nil {
		return nil, err
	}
	cls, ok := result.(*object.Type)
	if !ok {
		return nil, errors.TypeErrorf("metaclass %s returned %s, not a class",
			metatype.Name(), result.Class().Name())
	}
	return cls, nil
}

// value converts a decoded YAML scalar to an object. Anything that is not
// null or a boolean is stored as its string form.
func (s *Set) value(v any) object.Object {
	switch v := v.(type) {
	case nil:
		return s.rt.None()
	case bool:
		return s.rt.NewBool(v)
	case string:
		return s.rt.NewStr(v)
	default:
		return s.rt.NewStr(fmt.Sprint(v))
	}
}

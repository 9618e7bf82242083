package builtins

// FuncSpec documents a built-in function.
type FuncSpec struct {
	Name    string   `json:"name"`
	Doc     string   `json:"doc"`
	Args    []string `json:"args"`
	Returns string   `json:"returns"`
	Example string   `json:"example,omitempty"`
}

// Docs returns documentation for all builtin functions.
func Docs() []FuncSpec {
	return builtinDocs
}

var builtinDocs = []FuncSpec{
	{
		Name:    "dir",
		Doc:     "List every attribute name visible on an object",
		Args:    []string{"obj"},
		Returns: "tuple",
		Example: "dir(A)",
	},
	{
		Name:    "getattr",
		Doc:     "Resolve an attribute, returning default on AttributeError",
		Args:    []string{"obj", "name", "default?"},
		Returns: "any",
		Example: "getattr(A, \"__mro__\")",
	},
	{
		Name:    "hasattr",
		Doc:     "Return true if the attribute resolves",
		Args:    []string{"obj", "name"},
		Returns: "bool",
		Example: "hasattr(a, \"x\")",
	},
	{
		Name:    "isinstance",
		Doc:     "Return true if the object's type has the class in its MRO",
		Args:    []string{"obj", "classinfo"},
		Returns: "bool",
		Example: "isinstance(a, (A, B))",
	},
	{
		Name:    "issubclass",
		Doc:     "Return true if the class has the other class in its MRO",
		Args:    []string{"cls", "classinfo"},
		Returns: "bool",
		Example: "issubclass(B, A)",
	},
	{
		Name:    "object",
		Doc:     "The root type",
		Args:    []string{},
		Returns: "object",
		Example: "object()",
	},
	{
		Name:    "property",
		Doc:     "Create a data descriptor from a getter and optional setter",
		Args:    []string{"fget?", "fset?"},
		Returns: "property",
		Example: "property(get_x, set_x)",
	},
	{
		Name:    "repr",
		Doc:     "Return the representation produced by __repr__",
		Args:    []string{"obj"},
		Returns: "string",
		Example: "repr(A)",
	},
	{
		Name:    "setattr",
		Doc:     "Assign an attribute through __setattr__",
		Args:    []string{"obj", "name", "value"},
		Returns: "None",
		Example: "setattr(a, \"x\", 1)",
	},
	{
		Name:    "type",
		Doc:     "Return the type of an object, or create a new type",
		Args:    []string{"obj | name", "bases?", "dict?"},
		Returns: "type",
		Example: "type(\"B\", (A,), {})",
	},
}

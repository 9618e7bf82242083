package object

// Str is a string value. Attribute names passed to __getattribute__ and
// friends are Str objects.
type Str struct {
	*base
	value string
}

func (s *Str) Kind() Kind {
	return STRING
}

func (s *Str) Value() string {
	return s.value
}

func (s *Str) Inspect() string {
	return "'" + s.value + "'"
}

func (s *Str) String() string {
	return s.value
}

package object

import (
	"github.com/deepnoodle-ai/pytypes/errors"
)

func Require(funcName string, count int, args []Object) error {
	nArgs := len(args)
	if nArgs != count {
		if count == 1 {
			return TypeErrorf("%s() takes exactly 1 argument (%d given)", funcName, nArgs)
		}
		return TypeErrorf("%s() takes exactly %d arguments (%d given)", funcName, count, nArgs)
	}
	return nil
}

func RequireRange(funcName string, min, max int, args []Object) error {
	nArgs := len(args)
	if nArgs < min {
		return TypeErrorf("%s() takes at least %d %s (%d given)",
			funcName, min, pluralize("argument", min != 1), nArgs)
	} else if nArgs > max {
		return TypeErrorf("%s() takes at most %d %s (%d given)",
			funcName, max, pluralize("argument", max != 1), nArgs)
	}
	return nil
}

// Arg type-asserts args[index]. The error names the expected and the actual
// type, counting arguments from 1.
func Arg[T Object](args []Object, index int, funcName, expected string) (T, error) {
	var zero T
	if index >= len(args) {
		return zero, TypeErrorf("%s() missing argument %d", funcName, index+1)
	}
	v, ok := args[index].(T)
	if !ok {
		return zero, TypeErrorf("%s() argument %d must be %s, not %s",
			funcName, index+1, expected, typeName(args[index])).WithCode(errors.E4004)
	}
	return v, nil
}

func pluralize(s string, do bool) string {
	if do {
		return s + "s"
	}
	return s
}

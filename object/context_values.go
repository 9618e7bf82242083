package object

import (
	"context"
)

type contextKey string

// CallFunc is the eval layer's invoke capability. The runtime uses it to call
// objects it cannot call itself: anything that is neither a Callable nor an
// object whose type defines __call__.
type CallFunc func(ctx context.Context, fn Object, args []Object) (Object, error)

////////////////////////////////////////////////////////////////////////////////

const callFuncKey = contextKey("pytypes:call")

// WithCallFunc adds a CallFunc to the context.
func WithCallFunc(ctx context.Context, fn CallFunc) context.Context {
	return context.WithValue(ctx, callFuncKey, fn)
}

// GetCallFunc returns the CallFunc from the context, if it exists.
func GetCallFunc(ctx context.Context) (CallFunc, bool) {
	if fn, ok := ctx.Value(callFuncKey).(CallFunc); ok {
		if fn != nil {
			return fn, ok
		}
	}
	return nil, false
}

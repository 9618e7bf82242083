package pytypes

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/pytypes/object"
)

// Option configures a runtime created by this package.
type Option func(*options)

type options struct {
	logger      *zerolog.Logger
	suggestions bool
	callFunc    object.CallFunc
}

func collectOptions(opts ...Option) *options {
	o := &options{suggestions: true}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) runtimeOpts() []object.Option {
	var opts []object.Option
	if o.logger != nil {
		opts = append(opts, object.WithLogger(*o.logger))
	}
	if !o.suggestions {
		opts = append(opts, object.WithoutSuggestions())
	}
	return opts
}

func (o *options) context(ctx context.Context) context.Context {
	if o.callFunc != nil {
		return object.WithCallFunc(ctx, o.callFunc)
	}
	return ctx
}

// WithLogger sets the logger that receives type construction events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithoutSuggestions disables "did you mean" hints on attribute errors.
func WithoutSuggestions() Option {
	return func(o *options) {
		o.suggestions = false
	}
}

// WithCallFunc supplies the function used to call objects the runtime
// cannot call itself, such as functions defined by an interpreter.
func WithCallFunc(fn object.CallFunc) Option {
	return func(o *options) {
		o.callFunc = fn
	}
}

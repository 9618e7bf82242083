package object

import "github.com/rs/zerolog"

// Option is a configuration function for a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for type construction and attribute
// resolution events. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// WithoutSuggestions disables "did you mean" hints on attribute errors.
func WithoutSuggestions() Option {
	return func(rt *Runtime) {
		rt.suggest = false
	}
}

package injector

type (
	// Option configures the middleware built by [New].
	Option func(*setup)

	setup struct {
		hooks Hooks
	}
)

// WithHooks sets the lifecycle hooks of the middleware.
func WithHooks(h Hooks) Option {
	return func(s *setup) {
		s.hooks = h
	}
}

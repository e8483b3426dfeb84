package honk

// Pattern: Decorator — each installed middleware wraps the handler that was
// current when it was installed, so installation order determines which
// middleware sees an invocation first (last installed runs first).

type (
	// Handler processes a single invocation of the app.
	Handler func(inv Invocation) (any, error)

	// Middleware installs behavior on app. It receives the handler composed
	// so far and returns the handler that replaces it. A non-nil error aborts
	// installation and leaves the app's handler unchanged.
	Middleware func(app *App, next Handler) (Handler, error)
)

// Chain composes multiple middlewares into a single middleware.
// Middlewares are installed in order, so the last one ends up outermost.
//
// Chain(a, b, c) installed on an app behaves like Use(a), Use(b), Use(c).
// Installation stops at the first error; middlewares installed before the
// failing one have already run, and only [App.Use] resets app.Services.
// Chain() with zero middlewares returns next unchanged.
func Chain(middlewares ...Middleware) Middleware {
	return func(app *App, next Handler) (Handler, error) {
		for _, mw := range middlewares {
			h, err := mw(app, next)
			if err != nil {
				return nil, err
			}

			next = h
		}

		return next, nil
	}
}

package honk

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMessage is what the built-in handler logs.
const DefaultMessage = "HONK 🚚 HONK"

// App is the composed application.
//
// Services is shared state for middlewares. It is nil until a middleware sets
// it; well-behaved middlewares store a [Services] record there, but nothing
// stops one from storing any other value.
type App struct {
	Services any

	id      string
	logger  *zap.Logger
	handler Handler
}

type (
	// Option configures an App.
	Option func(*appSetup)

	appSetup struct {
		logger *zap.Logger
		id     string
	}
)

// WithLogger sets the logger used by the built-in handler.
func WithLogger(l *zap.Logger) Option {
	return func(s *appSetup) {
		s.logger = l
	}
}

// WithID overrides the generated app ID.
func WithID(id string) Option {
	return func(s *appSetup) {
		s.id = id
	}
}

// New creates an app whose handler is the built-in one: it logs
// [DefaultMessage] and returns (nil, nil) whatever the arguments.
func New(opts ...Option) *App {
	var setup appSetup

	for _, opt := range opts {
		opt(&setup)
	}

	if setup.logger == nil {
		setup.logger = zap.NewNop()
	}

	if setup.id == "" {
		setup.id = uuid.NewString()
	}

	a := &App{
		id:     setup.id,
		logger: setup.logger.With(zap.String("app", setup.id)),
	}
	a.handler = a.defaultHandler

	return a
}

// ID returns the app identifier.
func (a *App) ID() string { return a.id }

// Use installs mw on top of the current handler and returns the same app.
// If mw fails the handler is left as it was, Services is reset to the value
// it held before the call, and the error is returned as is. Changes made
// inside a record that was already there are not undone.
func (a *App) Use(mw Middleware) (*App, error) {
	services := a.Services

	h, err := mw(a, a.handler)
	if err != nil {
		a.Services = services
		return a, err
	}

	a.handler = h

	return a, nil
}

// Honk is the app's primary callable. The arguments are classified by
// [NewInvocation] and passed to the current handler.
func (a *App) Honk(args ...any) (any, error) {
	return a.Handle(NewInvocation(args...))
}

// Handle dispatches an already resolved invocation.
func (a *App) Handle(inv Invocation) (any, error) {
	return a.handler(inv)
}

func (a *App) defaultHandler(inv Invocation) (any, error) {
	a.logger.Info(DefaultMessage,
		zap.Stringer("kind", inv.Kind()),
		zap.Int("args", len(inv.Args)),
	)

	return nil, nil
}

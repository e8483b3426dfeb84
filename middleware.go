package injector

import (
	"maps"
	"reflect"

	"github.com/honkjs/injector/honk"
)

// SelfKey is the services key holding the app's own primary callable.
const SelfKey = "honk"

// Pattern: Decorator — the returned handler wraps next and short-circuits
// service-injection invocations; everything else reaches next untouched.

// New returns a middleware that injects services into single-function
// invocations of the app it is installed on. services may be nil.
//
// Nothing happens until the middleware is installed. At installation the app's
// services record is rebuilt once, later sources winning on key collisions:
//
//  1. SelfKey mapped to app.Honk,
//  2. the record already on app.Services, if any,
//  3. services.
//
// Installation fails with a [*ConfigurationError] and leaves app.Services
// untouched when the slot already holds a value that is not a record. A nil
// slot is fine. Any map keyed by strings counts as a record; a map such as
// map[string]string is copied into the merged record entry by entry.
//
// The installed handler runs [honk.KindInject] invocations with the merged
// record and returns whatever the function returns, error included, without
// wrapping it. Any other invocation goes to next with its arguments intact.
func New(services honk.Services, opts ...Option) honk.Middleware {
	var cfg setup

	for _, opt := range opts {
		opt(&cfg)
	}

	hooks := cfg.hooks

	return func(app *honk.App, next honk.Handler) (honk.Handler, error) {
		existing, err := existingServices(app.Services)
		if err != nil {
			return nil, err
		}

		merged := make(honk.Services, 1+len(existing)+len(services))
		merged[SelfKey] = honk.Func(app.Honk)
		maps.Copy(merged, existing)
		maps.Copy(merged, services)

		app.Services = merged
		hooks.emitInstall(Keys(merged))

		return func(inv honk.Invocation) (any, error) {
			if inv.Kind() == honk.KindInject {
				hooks.emitInject()
				return inv.Action(merged)
			}

			hooks.emitPassThrough()

			return next(inv)
		}, nil
	}
}

// existingServices returns the record stored in slot. A nil slot yields a nil
// record. Any map with string keys is a record; maps with other value types
// are copied entry by entry. Anything else is a configuration error.
func existingServices(slot any) (honk.Services, error) {
	switch s := slot.(type) {
	case nil:
		return nil, nil
	case honk.Services:
		return s, nil
	case map[string]any:
		return s, nil
	}

	v := reflect.ValueOf(slot)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, newConfigurationError(slot)
	}

	services := make(honk.Services, v.Len())

	for iter := v.MapRange(); iter.Next(); {
		services[iter.Key().String()] = iter.Value().Interface()
	}

	return services, nil
}

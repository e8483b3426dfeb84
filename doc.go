// Package injector provides a service-injection middleware for honk apps.
//
// Installing the middleware returned by [New] merges a services record onto
// the app. Afterwards, calling the app with exactly one function argument
// runs that function with the services record instead of passing it down the
// chain; every other call shape falls through untouched.
//
//	app, err := honk.New().Use(injector.New(honk.Services{"db": db}))
//	users, err := app.Honk(func(s honk.Services) (any, error) {
//		return injector.MustGet[*sql.DB](s, "db").Query("...")
//	})
package injector

// Package honk is a minimal application-composition host.
//
// An [App] is built by installing [Middleware] values with [App.Use]. Each
// middleware receives the app and the previously composed [Handler] and
// returns a new handler wrapping it. Calling [App.Honk] turns its arguments
// into an [Invocation] and hands it to the outermost handler.
package honk

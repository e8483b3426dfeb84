package injector

import (
	"maps"
	"reflect"
	"slices"

	"github.com/honkjs/injector/honk"
)

// ---------------------------------------------------------------------------
// Typed access to the services record
// ---------------------------------------------------------------------------

// Get returns the service stored under key as a T.
//
// ok is false if the key is missing or holds a value that is not a T.
func Get[T any](s honk.Services, key string) (T, bool) {
	raw, ok := s[key]
	if !ok {
		var zero T
		return zero, false
	}

	v, ok := raw.(T)

	return v, ok
}

// TryGet returns the service stored under key as a T.
//
// It returns:
//   - *MissingServiceError if the key is absent
//   - *WrongTypeServiceError if the key holds a value that is not a T
func TryGet[T any](s honk.Services, key string) (T, error) {
	var zero T

	raw, ok := s[key]
	if !ok {
		return zero, &MissingServiceError{Key: key}
	}

	v, ok := raw.(T)
	if !ok {
		return zero, &WrongTypeServiceError{Key: key, GotType: typeName(raw)}
	}

	return v, nil
}

// MustGet returns the service stored under key as a T or panics with the
// error [TryGet] would return.
func MustGet[T any](s honk.Services, key string) T {
	v, err := TryGet[T](s, key)
	if err != nil {
		panic(err)
	}

	return v
}

// Self returns the app's primary callable stored under [SelfKey].
func Self(s honk.Services) (honk.Func, bool) {
	return Get[honk.Func](s, SelfKey)
}

// Keys returns the keys of s in sorted order.
func Keys(s honk.Services) []string {
	return slices.Sorted(maps.Keys(s))
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}

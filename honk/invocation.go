package honk

import "reflect"

// Kind discriminates the two calling conventions an app accepts.
type Kind int

const (
	// KindCall is an ordinary invocation: the arguments are passed along the
	// chain untouched.
	KindCall Kind = iota
	// KindInject is a service-injection invocation: exactly one callable
	// argument that expects the services record.
	KindInject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindInject:
		return "inject"
	default:
		return "unknown"
	}
}

type (
	// Services is the string-keyed record shared by middlewares.
	Services map[string]any

	// Func is the signature of an app's primary callable.
	Func func(args ...any) (any, error)

	// Action is the canonical shape of an injected callable.
	Action func(Services) (any, error)

	// Invocation is a resolved call into the app. Args always holds the
	// original argument list; Action is set only for KindInject. Build it
	// with [NewInvocation]: the kind is fixed there, so a literal Invocation
	// is always KindCall.
	Invocation struct {
		Action Action
		Args   []any
		kind   Kind
	}
)

// NewInvocation classifies args once at the app boundary.
//
// A single non-nil, non-variadic function argument becomes a KindInject
// invocation when it takes either nothing or one parameter a [Services]
// record can be assigned to (Services, map[string]any, any), and returns
// nothing, one value, or a value and an error. A lone error result is
// reported as the error. Action adapts the function to the canonical
// signature; these shapes take a direct path, everything else goes through
// reflect:
//
//	Action
//	func(Services) (any, error)
//	func(Services) any
//	func(Services)
//	func() (any, error)
//	func() any
//	func()
//
// Any other argument list, including a single function of another shape,
// becomes a KindCall invocation.
func NewInvocation(args ...any) Invocation {
	inv := Invocation{Args: args}
	if len(args) == 1 {
		inv.Action = asAction(args[0])
	}

	if inv.Action != nil {
		inv.kind = KindInject
	}

	return inv
}

// Kind reports how the invocation should be dispatched.
func (inv Invocation) Kind() Kind { return inv.kind }

//nolint:cyclop // one case per accepted shape
func asAction(arg any) Action {
	switch fn := arg.(type) {
	case Action:
		if fn == nil {
			return nil
		}

		return fn
	case func(Services) (any, error):
		if fn == nil {
			return nil
		}

		return fn
	case func(Services) any:
		if fn == nil {
			return nil
		}

		return func(s Services) (any, error) { return fn(s), nil }
	case func(Services):
		if fn == nil {
			return nil
		}

		return func(s Services) (any, error) {
			fn(s)
			return nil, nil
		}
	case func() (any, error):
		if fn == nil {
			return nil
		}

		return func(Services) (any, error) { return fn() }
	case func() any:
		if fn == nil {
			return nil
		}

		return func(Services) (any, error) { return fn(), nil }
	case func():
		if fn == nil {
			return nil
		}

		return func(Services) (any, error) {
			fn()
			return nil, nil
		}
	default:
		return reflectAction(arg)
	}
}

//nolint:gochecknoglobals // immutable type descriptors
var (
	servicesType = reflect.TypeFor[Services]()
	errorType    = reflect.TypeFor[error]()
)

// reflectAction adapts any other accepted function shape, or returns nil.
//
//nolint:cyclop // shape checks
func reflectAction(arg any) Action {
	fn := reflect.ValueOf(arg)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil
	}

	t := fn.Type()
	if t.IsVariadic() || t.NumIn() > 1 || t.NumOut() > 2 {
		return nil
	}

	if t.NumIn() == 1 && !servicesType.AssignableTo(t.In(0)) {
		return nil
	}

	if t.NumOut() == 2 && t.Out(1) != errorType {
		return nil
	}

	return func(s Services) (any, error) {
		var in []reflect.Value
		if t.NumIn() == 1 {
			in = []reflect.Value{reflect.ValueOf(s)}
		}

		out := fn.Call(in)

		switch len(out) {
		case 0:
			return nil, nil
		case 1:
			if t.Out(0) == errorType {
				return nil, asError(out[0])
			}

			return out[0].Interface(), nil
		default:
			return out[0].Interface(), asError(out[1])
		}
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}

	return v.Interface().(error) //nolint:forcetypeassert // type checked by caller
}

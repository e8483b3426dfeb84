package injector

import (
	"errors"
	"fmt"
	"strconv"
)

// ---------------------------------------------------------------------------
// Errors originated by the injector
// ---------------------------------------------------------------------------

// ErrConfiguration is matched by every [ConfigurationError] through
// errors.Is.
var ErrConfiguration = errors.New("injector: invalid configuration")

type (
	// ConfigurationError is returned at installation time when the app's
	// services slot already holds something that is not a services record.
	// The fix belongs to whoever builds the chain: reorder the middlewares or
	// make the earlier one store a record.
	ConfigurationError struct {
		// Found is the dynamic type of the value found in the slot.
		Found string
	}

	// MissingServiceError is returned by [TryGet] when the key is absent.
	MissingServiceError struct{ Key string }

	// WrongTypeServiceError is returned by [TryGet] when the key is present
	// but holds a value of another type.
	WrongTypeServiceError struct {
		Key     string
		GotType string
	}
)

func newConfigurationError(found any) *ConfigurationError {
	return &ConfigurationError{Found: fmt.Sprintf("%T", found)}
}

func (e *ConfigurationError) Error() string {
	return "injector: app.Services is already set by a previous middleware and is not a services record (found " +
		e.Found + "); make that middleware store a honk.Services record if it needs to share state"
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (*ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration //nolint:errorlint // sentinel identity
}

func (e *MissingServiceError) Error() string {
	return "injector: service " + strconv.Quote(e.Key) + " missing"
}

func (e *WrongTypeServiceError) Error() string {
	return "injector: service " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}

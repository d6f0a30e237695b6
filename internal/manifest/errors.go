package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is matched by every *UnknownFieldError via errors.Is
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError occurs when an input key does not name a known field.
// Field holds the key as the caller supplied it, before name translation.
type UnknownFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// Is makes errors.Is(err, ErrUnknownField) hold.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// ValueTypeError occurs when a known field is given a value of the wrong type.
type ValueTypeError struct {
	Field Field
	Value any
	Want  string
	Cause error
}

// Error implements the error interface.
func (e *ValueTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field %q: expected %s, got %T: %s", e.Field, e.Want, e.Value, e.Cause)
	}
	return fmt.Sprintf("field %q: expected %s, got %T", e.Field, e.Want, e.Value)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *ValueTypeError) Unwrap() error {
	return e.Cause
}

// InvalidValueError occurs in strict mode when an enumerated field holds a
// value outside its legal list.
type InvalidValueError struct {
	Field   Field
	Value   string
	Allowed []string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("field %q: invalid value %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

package snapfit

import "fmt"

// UnknownProfileError is returned when a profile id is outside the catalog.
type UnknownProfileError struct {
	Profile Profile
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", string(e.Profile))
}

// MissingParameterError is returned when a geometry field required by the
// selected profile family was not supplied.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Field)
}

// InvalidParameterError is returned when a supplied value violates its
// domain constraint.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InvalidParameterError{Field: field, Reason: reason}
}

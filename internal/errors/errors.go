package errors

import (
	stderrors "errors"
	"fmt"
)

// UserError is an input error reported to the user. The operation aborts
// without mutating state and the menu loop continues.
type UserError struct {
	Code    string
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// The user-error taxonomy. Messages match what the interactive flow prints.
var (
	ErrInvalidDateFormat  = &UserError{Code: "invalid_date_format", Message: "Invalid date format. Please use DD/MM/YYYY"}
	ErrAgeOutOfRange      = &UserError{Code: "age_out_of_range", Message: "Customer should be between 18 and 75 years old to rent a car."}
	ErrDuplicateCustomer  = &UserError{Code: "duplicate_customer", Message: "Customer details already exists."}
	ErrNameContainsDigits = &UserError{Code: "name_contains_digits", Message: "Name cannot contain numbers."}
	ErrInvalidEmail       = &UserError{Code: "invalid_email", Message: "Invalid email format. Please enter a valid email address."}

	ErrNoVehiclesAvailable = &UserError{Code: "no_vehicles_available", Message: "Sorry, no cars are currently available."}
	ErrUnknownVehicle      = &UserError{Code: "unknown_vehicle", Message: "Invalid registration number."}
	ErrNoActiveRental      = &UserError{Code: "no_active_rental", Message: "No rental found for this registration number."}
)

// IsUserError reports whether err (or anything it wraps) is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return stderrors.As(err, &ue)
}

// ParseError reports a stored line that failed to parse. The whole read
// aborts; a rental or financial record is never silently dropped.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IntegrityError reports stored data that contradicts itself, such as an
// active rental whose vehicle no longer exists. Distinct from user errors:
// the operation cannot proceed and the store needs attention.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

// IsIntegrityFault reports whether err is a data-integrity condition
// (integrity or parse error) rather than a user error.
func IsIntegrityFault(err error) bool {
	var ie *IntegrityError
	var pe *ParseError
	return stderrors.As(err, &ie) || stderrors.As(err, &pe)
}

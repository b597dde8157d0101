package service

import "errors"

var (
	// ErrUnauthorized means no resolved identity accompanied the request.
	// It is checked before validation and before any persistence call.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned by registration when the email already has an
	// account.
	ErrEmailTaken = errors.New("Email already exists")
)

// InvalidInputError carries the first violated constraint of a payload as a
// human-readable message naming the offending field.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func invalidInput(err error) error {
	return &InvalidInputError{Message: err.Error()}
}

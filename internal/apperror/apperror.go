// Package apperror defines the domain error taxonomy shared by the service
// and repository layers.
//
// Each sentinel below marks a class of failure. Services and repositories
// return an *AppError wrapping one of them; the HTTP layer maps sentinels to
// status codes in exactly one place (handler.writeError). errors.Is walks
// the chain, so wrapping with fmt.Errorf("%w") along the way is safe.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AppError struct {
	Err     error  // sentinel (one of the vars above)
	Message string // human-readable, safe to send to clients
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// UserExists is returned on sign-up when the email is already registered.
// The wire contract maps it to 403, matching the client's expectations.
func UserExists(email string) *AppError {
	return &AppError{
		Err:     ErrUserExists,
		Message: fmt.Sprintf("user already exists with email %s", email),
	}
}

// InvalidCredentials is returned on sign-in for BOTH an unknown email and a
// wrong password. The shared message is deliberate: the response must not
// reveal which of the two checks failed.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

package services

import (
	"errors"
	"fmt"
)

// Identity rejections carry distinct, user-facing messages: the sign-up form
// shows a different line for a taken email than for a weak password.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// ValidationError is a pre-submission rejection. It never reaches the store;
// the write is refused before any persistence call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

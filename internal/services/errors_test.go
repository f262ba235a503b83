package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each identity rejection reads differently to the user; the sign-up form
// relies on the messages being distinct.
func TestIdentityErrorsHaveDistinctMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []error{ErrInvalidCredentials, ErrEmailInUse, ErrWeakPassword, ErrInvalidEmail} {
		assert.NotEmpty(t, err.Error())
		assert.False(t, seen[err.Error()], "duplicate message %q", err.Error())
		seen[err.Error()] = true
	}
}

func TestIsValidation(t *testing.T) {
	err := validationErrorf("fill all fields of all questions")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "fill all fields of all questions", err.Error())

	wrapped := fmt.Errorf("create activity: %w", err)
	assert.True(t, IsValidation(wrapped))

	assert.False(t, IsValidation(nil))
	assert.False(t, IsValidation(ErrWeakPassword))
	assert.False(t, IsValidation(assert.AnError))
}

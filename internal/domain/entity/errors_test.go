package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "simple validation error",
			field:    "email",
			message:  "invalid format",
			expected: "validation error on field 'email': invalid format",
		},
		{
			name:     "required field error",
			field:    "url",
			message:  "required",
			expected: "validation error on field 'url': required",
		},
		{
			name:     "length validation error",
			field:    "password",
			message:  "must be at least 8 characters",
			expected: "validation error on field 'password': must be at least 8 characters",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_WithErrorsAs(t *testing.T) {
	err := &ValidationError{
		Field:   "email",
		Message: "invalid format",
	}

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "invalid format", validationErr.Message)
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: "entity not found",
		},
		{
			name:     "ErrDuplicateEmail",
			err:      ErrDuplicateEmail,
			expected: "email already exists",
		},
		{
			name:     "ErrInvalidCredentials",
			err:      ErrInvalidCredentials,
			expected: "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSentinelErrors_WithErrorsIs(t *testing.T) {
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicateEmail))
	assert.False(t, errors.Is(ErrDuplicateEmail, ErrInvalidCredentials))

	// Wrapped sentinels still match.
	wrapped := errors.Join(errors.New("find user"), ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

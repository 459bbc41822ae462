package entity

import (
	"net/mail"
	"strings"
	"unicode"
)

// minPasswordLength is the minimum accepted password length at signup.
const minPasswordLength = 8

// passwordSymbols is the fixed punctuation set accepted as the "symbol"
// character class in the password policy.
const passwordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// ValidatePassword checks a plaintext password against the signup policy:
// at least 8 characters, with at least one uppercase letter, one lowercase
// letter, one digit, and one symbol from the fixed punctuation set.
// Returns a ValidationError naming the first missing requirement.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return &ValidationError{Field: "password", Message: "password must contain an uppercase letter"}
	case !hasLower:
		return &ValidationError{Field: "password", Message: "password must contain a lowercase letter"}
	case !hasDigit:
		return &ValidationError{Field: "password", Message: "password must contain a digit"}
	case !hasSymbol:
		return &ValidationError{Field: "password", Message: "password must contain a symbol"}
	}

	return nil
}

// ValidateEmail checks that the email address is present and well-formed.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	return nil
}

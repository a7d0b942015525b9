// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"html"
	"regexp"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 4 {
		return fmt.Errorf("username must be at least 4 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must contain only letters and numbers")
	}

	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	return nil
}

// ValidateName checks a first or last name form field.
func ValidateName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s field is required", field)
	}
	if len(name) > 100 {
		return fmt.Errorf("%s must not exceed 100 characters", field)
	}
	return nil
}

// Sanitize escapes markup-significant characters in untrusted free text.
// It is applied exactly once, at write time, so stored rows never contain
// executable markup.
func Sanitize(s string) string {
	return html.EscapeString(s)
}

package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const MinPasswordLen = 8

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Validator checks credentials before they are sent to the server.
type Validator interface {
	ValidateSignUp(email, password string) error
	ValidateLogin(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct {
	requireDigit bool
	requireUpper bool
}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		requireDigit: true,
		requireUpper: true,
	}
}

// ValidateSignUp requires a well-formed email and a strong password.
func (v *CredentialsValidator) ValidateSignUp(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateLogin only requires a well-formed email and a non-blank password.
func (v *CredentialsValidator) ValidateLogin(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password must not be empty")
	}

	return nil
}

func (v *CredentialsValidator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email must not be empty")
	}

	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not valid", email)
	}

	return nil
}

func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasUpper := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

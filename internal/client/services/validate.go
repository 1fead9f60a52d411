package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"storehub-client/internal/client/api"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field rules mirror the service's own validation so obviously bad input is
// rejected before any request is issued.

func validateName(name string) error {
	if len(name) < 20 || len(name) > 60 {
		return fmt.Errorf("%w: name must be 20-60 characters", api.ErrValidation)
	}
	return nil
}

func validateAddress(address string) error {
	if len(address) > 400 {
		return fmt.Errorf("%w: address must not exceed 400 characters", api.ErrValidation)
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", api.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return fmt.Errorf("%w: password must be 8-16 characters", api.ErrValidation)
	}
	hasUpper := strings.IndexFunc(password, unicode.IsUpper) >= 0
	hasSpecial := strings.IndexFunc(password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0
	if !hasUpper || !hasSpecial {
		return fmt.Errorf("%w: password must include an uppercase letter and a special character", api.ErrValidation)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/models"
)

// report renders a service error for the user. Denials and missing resources
// are stated plainly; transient failures invite a retry and leave whatever
// the screen already shows untouched.
func report(err error) {
	switch {
	case errors.Is(err, api.ErrAuth):
		printlnFn("Please sign in first.")
	case errors.Is(err, api.ErrAccessDenied):
		printlnFn("You do not have access to this resource.")
	case errors.Is(err, api.ErrNotFound):
		printlnFn("Not found.")
	case errors.Is(err, api.ErrValidation):
		printlnFn("Invalid input:", err.Error())
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Service unavailable, please try again.")
	default:
		printlnFn("Error:", err.Error())
	}
}

func renderStore(s models.Store) string {
	line := fmt.Sprintf("#%d %s | %s | avg %s", s.ID, s.Name, s.Address, models.FormatRating(s.AverageRating))
	if s.Owner != nil {
		line += fmt.Sprintf(" | owner %s", s.Owner.Name)
	}
	if s.UserRating != nil {
		line += fmt.Sprintf(" | yours %d", *s.UserRating)
	}
	return line
}

func renderUser(u models.User) string {
	line := fmt.Sprintf("#%d %s | %s | %s | %s", u.ID, u.Name, u.Email, u.Address, u.Role)
	if u.AverageRating != nil {
		line += fmt.Sprintf(" | store avg %.2f", *u.AverageRating)
	}
	return line
}

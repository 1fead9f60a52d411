package models

import "fmt"

// Store is a row of the public store list and of the admin store list.
// AverageRating and UserRating are server-derived aggregates; the client
// renders them verbatim and never recomputes them locally.
type Store struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	OwnerID       int64    `json:"ownerId"`
	AverageRating *float64 `json:"averageRating"`
	UserRating    *int     `json:"userRating"`

	// Owner is populated by the admin store list only.
	Owner *UserRef `json:"User,omitempty"`
}

// UserRef is the abbreviated user the service nests into other entities.
type UserRef struct {
	Name string `json:"name"`
}

// FormatRating renders a server-derived average for display: two decimals,
// or "N/A" when the store has no ratings yet.
func FormatRating(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *avg)
}

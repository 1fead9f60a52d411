// Package models defines the entities the StoreHub service exchanges with the
// client. Entities are never owned long-term by the client: every rendered
// list reflects the most recent server read.
package models

// Role is the closed set of user roles known to the service. Role strings are
// compared in exactly one place (the access package); screens never inspect
// them directly.
type Role string

const (
	RoleNormalUser  Role = "Normal User"
	RoleStoreOwner  Role = "Store Owner"
	RoleSystemAdmin Role = "System Administrator"
)

// Valid reports whether r is one of the roles the service defines.
// Unknown roles are treated as carrying no capabilities.
func (r Role) Valid() bool {
	switch r {
	case RoleNormalUser, RoleStoreOwner, RoleSystemAdmin:
		return true
	}
	return false
}

// User is the identity resolved from the session token, and the row shape of
// the admin user list. AverageRating is populated by the server for store
// owners only.
type User struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Role          Role     `json:"role"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

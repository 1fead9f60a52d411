// Package api is the stateless request/response wrapper around the StoreHub
// data service. It carries the bearer token, encodes list queries verbatim,
// and maps HTTP failures into the client error taxonomy. Everything above it
// consumes the Client interface so tests can substitute fakes.
package api

import (
	"context"

	"storehub-client/internal/client/listview"
	"storehub-client/internal/client/models"
)

// SignupRequest creates a normal-user account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// AddUserRequest creates a user of any role (admin only).
type AddUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Address  string      `json:"address"`
	Role     models.Role `json:"role"`
}

// NewOwner is the inline owner account created together with a store.
type NewOwner struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// AddStoreRequest creates a store, either assigned to an existing owner
// (OwnerID) or to a freshly created one (Owner). Exactly one of the two is
// set; the service rejects the rest.
type AddStoreRequest struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	OwnerID *int64    `json:"ownerId,omitempty"`
	Owner   *NewOwner `json:"owner,omitempty"`
}

// Client is the full surface of the data service the StoreHub client
// consumes. Every call is a single round trip returning value-or-error.
type Client interface {
	// SetToken installs (or, with "", clears) the bearer token attached to
	// authenticated requests. Login installs its token itself.
	SetToken(token string)

	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error

	Stores(ctx context.Context, q listview.Query) ([]models.Store, error)
	SubmitRating(ctx context.Context, storeID int64, rating int) error

	AdminDashboard(ctx context.Context) (*models.DashboardStats, error)
	AdminUsers(ctx context.Context, q listview.Query) ([]models.User, error)
	AddUser(ctx context.Context, req AddUserRequest) (*models.User, error)
	AdminStores(ctx context.Context, q listview.Query) ([]models.Store, error)
	AddStore(ctx context.Context, req AddStoreRequest) (*models.Store, error)

	MyStore(ctx context.Context) (int64, error)
	OwnerDashboard(ctx context.Context, storeID int64) (*models.OwnerDashboard, error)
}

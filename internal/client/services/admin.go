package services

import (
	"context"
	"fmt"

	"storehub-client/internal/client/access"
	"storehub-client/internal/client/api"
	"storehub-client/internal/client/listview"
	"storehub-client/internal/client/models"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

// AdminPanel backs the administrator screen: headline counters plus the user
// and store lists, each with its own independent query state, and the
// add-user / add-store mutations.
type AdminPanel struct {
	client  api.Client
	session *session.Controller

	users  *listview.Controller[models.User]
	stores *listview.Controller[models.Store]
}

func NewAdminPanel(client api.Client, sess *session.Controller, log logging.Logger) *AdminPanel {
	return &AdminPanel{
		client:  client,
		session: sess,
		users:   listview.New(client.AdminUsers, "name", log.With("view", "admin-users")),
		stores:  listview.New(client.AdminStores, "name", log.With("view", "admin-stores")),
	}
}

// Users and Stores expose the two list controllers; the shell renders and
// drives them directly.
func (p *AdminPanel) Users() *listview.Controller[models.User]   { return p.users }
func (p *AdminPanel) Stores() *listview.Controller[models.Store] { return p.stores }

func (p *AdminPanel) guard() error {
	identity := p.session.Identity()
	if identity == nil {
		return fmt.Errorf("%w: sign in as an administrator", api.ErrAuth)
	}
	if !access.For(identity).CanViewAdmin {
		return fmt.Errorf("%w: administrator role required", api.ErrAccessDenied)
	}
	return nil
}

// Stats fetches the dashboard counters. The service enforces the same check;
// gating here avoids issuing requests a non-admin could never use.
func (p *AdminPanel) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	return p.client.AdminDashboard(ctx)
}

// Refresh re-issues both list queries. Either failure is returned; results
// of the other list are unaffected.
func (p *AdminPanel) Refresh(ctx context.Context) error {
	if err := p.guard(); err != nil {
		return err
	}
	if err := p.users.Refresh(ctx); err != nil {
		return err
	}
	return p.stores.Refresh(ctx)
}

// AddUser creates a user of any role, then re-reads the user list.
func (p *AdminPanel) AddUser(ctx context.Context, req api.AddUserRequest) error {
	if err := p.guard(); err != nil {
		return err
	}
	if !req.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", api.ErrValidation, req.Role)
	}
	if err := validateNewAccount(req.Name, req.Email, req.Password, req.Address); err != nil {
		return err
	}

	return p.users.Submit(ctx, func(ctx context.Context) error {
		_, err := p.client.AddUser(ctx, req)
		return err
	})
}

// AddStore creates a store assigned either to an existing owner or to a new
// owner account created inline, then re-reads the store list.
func (p *AdminPanel) AddStore(ctx context.Context, req api.AddStoreRequest) error {
	if err := p.guard(); err != nil {
		return err
	}
	if err := validateName(req.Name); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validateAddress(req.Address); err != nil {
		return err
	}
	if (req.OwnerID == nil) == (req.Owner == nil) {
		return fmt.Errorf("%w: provide either an existing owner id or a new owner, not both", api.ErrValidation)
	}
	if req.Owner != nil {
		if err := validateNewAccount(req.Owner.Name, req.Owner.Email, req.Owner.Password, req.Owner.Address); err != nil {
			return err
		}
	}

	return p.stores.Submit(ctx, func(ctx context.Context) error {
		_, err := p.client.AddStore(ctx, req)
		return err
	})
}

func (p *AdminPanel) Close() {
	p.users.Close()
	p.stores.Close()
}

func validateNewAccount(name, email, password, address string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	return validateAddress(address)
}

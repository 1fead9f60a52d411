package services

import (
	"context"
	"fmt"

	"storehub-client/internal/client/access"
	"storehub-client/internal/client/api"
	"storehub-client/internal/client/models"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

// OwnerBoard backs the read-only owner dashboard. Whether the caller may
// open the view at all is a role question answered here; whether they own
// the specific store is answered by the service, and its denial is rendered
// as a terminal state by the shell.
type OwnerBoard struct {
	client  api.Client
	session *session.Controller
	log     logging.Logger
}

func NewOwnerBoard(client api.Client, sess *session.Controller, log logging.Logger) *OwnerBoard {
	return &OwnerBoard{client: client, session: sess, log: log}
}

func (o *OwnerBoard) guard() error {
	identity := o.session.Identity()
	if identity == nil {
		return fmt.Errorf("%w: sign in as a store owner", api.ErrAuth)
	}
	if !access.For(identity).CanViewOwnerDashboard {
		return fmt.Errorf("%w: store owner or administrator role required", api.ErrAccessDenied)
	}
	return nil
}

// MyStore returns the id of the store owned by the caller.
func (o *OwnerBoard) MyStore(ctx context.Context) (int64, error) {
	if err := o.guard(); err != nil {
		return 0, err
	}
	return o.client.MyStore(ctx)
}

// Dashboard fetches aggregate feedback for one store. ErrAccessDenied and
// ErrNotFound pass through unchanged: they mean the view itself is
// inapplicable, not that the request should be retried.
func (o *OwnerBoard) Dashboard(ctx context.Context, storeID int64) (*models.OwnerDashboard, error) {
	if err := o.guard(); err != nil {
		return nil, err
	}
	return o.client.OwnerDashboard(ctx, storeID)
}

// Package services holds the screen-facing application services of the
// StoreHub client. Each list screen owns one listview.Controller; mutations
// go through the controller so the rendered rows are always re-read from the
// service rather than patched locally.
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

// StoreBrowser backs the public store list: filter by name/address, sort by
// any column, and submit ratings with read-after-write refetch.
type StoreBrowser struct {
	client  api.Client
	session *session.Controller
	list    *listview.Controller[models.Store]
}

func NewStoreBrowser(client api.Client, sess *session.Controller, log logging.Logger) *StoreBrowser {
	return &StoreBrowser{
		client:  client,
		session: sess,
		list:    listview.New(client.Stores, "name", log.With("view", "stores")),
	}
}

func (b *StoreBrowser) Refresh(ctx context.Context) error { return b.list.Refresh(ctx) }

func (b *StoreBrowser) SetFilter(ctx context.Context, field, substring string) error {
	return b.list.SetFilter(ctx, field, substring)
}

func (b *StoreBrowser) SortBy(ctx context.Context, field string) error {
	return b.list.SortBy(ctx, field)
}

func (b *StoreBrowser) Results() []models.Store { return b.list.Results() }
func (b *StoreBrowser) Query() listview.Query   { return b.list.Query() }
func (b *StoreBrowser) Close()                  { b.list.Close() }

// Rate submits a rating for the store and, only after the service confirms
// it, re-issues the current query so averageRating and userRating come back
// server-computed. Values outside 1..5 and callers without the rating
// capability are rejected before any request is issued.
func (b *StoreBrowser) Rate(ctx context.Context, storeID int64, value int) error {
	identity := b.session.Identity()
	if identity == nil {
		return fmt.Errorf("%w: sign in to rate stores", api.ErrAuth)
	}
	if !access.For(identity).CanSubmitRating {
		return fmt.Errorf("%w: role %q may not submit ratings", api.ErrAccessDenied, identity.Role)
	}
	if value < 1 || value > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", api.ErrValidation)
	}

	return b.list.Submit(ctx, func(ctx context.Context) error {
		return b.client.SubmitRating(ctx, storeID, value)
	})
}

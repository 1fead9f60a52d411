// Package session owns the client's belief about who is authenticated.
//
// The Controller holds the three-part session state: the bearer token
// (persisted across restarts in the local store), the resolved identity
// and a readiness flag. Readiness is false only between process start and the
// first resolution attempt completing; consumers must treat a not-ready
// session as "unknown" and defer any redirect decision instead of assuming
// the visitor is anonymous.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/models"
	"storehub-client/internal/client/repositories/localstore"
	"storehub-client/internal/dbx"
	"storehub-client/internal/logging"
)

// Fixed local-store keys. tokenKey is the single durable slot the session
// token lives under; emailKey remembers the last signed-in account so the
// login prompt can be prefilled.
const (
	tokenKey = "token"
	emailKey = "email"
)

// Controller is the owner of the session lifecycle. All mutation goes through
// Resolve, Login and Logout; consumers read Ready and Identity.
type Controller struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu        sync.Mutex
	resolving bool
	ready     bool
	identity  *models.User
}

func NewController(client api.Client, db *sql.DB, log logging.Logger) *Controller {
	return &Controller{client: client, db: db, log: log}
}

func (c *Controller) repo() localstore.Repository {
	return localstore.NewSQLiteRepository(c.db)
}

// Ready reports whether the first resolution attempt has completed. Until
// then the identity is unknown, not anonymous.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Identity returns the resolved user, or nil for an anonymous session.
func (c *Controller) Identity() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// Resolve performs the startup resolution: if a persisted token exists, the
// current identity is fetched with it; any failure silently demotes the
// session to anonymous and clears the stale token. Without a token no network
// call is made. The session is ready once Resolve returns. A second call
// while one is in flight (or after completion) is a no-op.
func (c *Controller) Resolve(ctx context.Context) {
	c.mu.Lock()
	if c.resolving || c.ready {
		c.mu.Unlock()
		return
	}
	c.resolving = true
	c.mu.Unlock()

	repo := c.repo()
	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		c.log.Warn(ctx, "local store unreadable, starting anonymous", "err", err)
	}
	if len(token) == 0 {
		c.finish(nil)
		return
	}

	c.client.SetToken(string(token))
	identity, err := c.client.Profile(ctx)
	if err != nil {
		// A stale or invalid token demotes to logged-out; never surfaced
		// to the user as an error.
		c.log.Warn(ctx, "session resolution failed, demoting to anonymous", "err", err)
		c.client.SetToken("")
		if err := repo.Delete(ctx, tokenKey); err != nil {
			c.log.Warn(ctx, "failed to drop stale token", "err", err)
		}
		c.finish(nil)
		return
	}

	c.log.Info(ctx, "session resolved", "user", identity.Email, "role", identity.Role)
	c.finish(identity)
}

func (c *Controller) finish(identity *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = identity
	c.ready = true
	c.resolving = false
}

// Login authenticates, persists the returned token, then fetches the
// identity before reporting success: a caller never observes an
// authenticated session with an absent role. Both rejected credentials and
// an unreachable service fail with ErrAuth, leaving the session unchanged.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	token, err := c.client.Login(ctx, email, password)
	if err != nil {
		return asAuthError(err)
	}

	// Persist token and account email together; a persistence failure only
	// costs durability across restarts, not the live session.
	err = dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, emailKey, []byte(email))
	})
	if err != nil {
		c.log.Warn(ctx, "failed to persist session token", "err", err)
	}

	identity, err := c.client.Profile(ctx)
	if err != nil {
		c.client.SetToken("")
		if derr := c.repo().Delete(ctx, tokenKey); derr != nil {
			c.log.Warn(ctx, "failed to drop token after identity fetch failure", "err", derr)
		}
		return asAuthError(err)
	}

	c.mu.Lock()
	c.identity = identity
	c.ready = true
	c.mu.Unlock()

	c.log.Info(ctx, "logged in", "user", identity.Email, "role", identity.Role)
	return nil
}

// Logout clears the persisted token and the identity. It is synchronous,
// makes no network round trip and never fails; local-store trouble is only
// logged.
func (c *Controller) Logout(ctx context.Context) {
	c.client.SetToken("")
	if err := c.repo().Delete(ctx, tokenKey); err != nil {
		c.log.Warn(ctx, "failed to clear persisted token", "err", err)
	}

	c.mu.Lock()
	c.identity = nil
	c.ready = true
	c.mu.Unlock()

	c.log.Info(ctx, "logged out")
}

// LastEmail returns the most recently signed-in account, if known.
func (c *Controller) LastEmail(ctx context.Context) string {
	v, err := c.repo().Get(ctx, emailKey)
	if err != nil {
		return ""
	}
	return string(v)
}

// TokenExpiry peeks, without signature verification, at the expiry claim of
// the persisted token. Informational only (status line, profile screen); the
// service remains the authority on token validity.
func (c *Controller) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token, err := c.repo().Get(ctx, tokenKey)
	if err != nil || len(token) == 0 {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func asAuthError(err error) error {
	if errors.Is(err, api.ErrAuth) {
		return err
	}
	return fmt.Errorf("%w: %v", api.ErrAuth, err)
}

package services

import (
	"context"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

// Account handles self-service account operations: signup and password
// change. Field validation runs client-side first; the service re-validates
// and its rejections surface as ErrValidation.
type Account struct {
	client  api.Client
	session *session.Controller
	log     logging.Logger
}

func NewAccount(client api.Client, sess *session.Controller, log logging.Logger) *Account {
	return &Account{client: client, session: sess, log: log}
}

// Signup creates a normal-user account and signs it in right away, so the
// caller lands in an authenticated session.
func (a *Account) Signup(ctx context.Context, req api.SignupRequest) error {
	if err := validateNewAccount(req.Name, req.Email, req.Password, req.Address); err != nil {
		return err
	}
	if _, err := a.client.Signup(ctx, req); err != nil {
		return err
	}
	return a.session.Login(ctx, req.Email, req.Password)
}

// UpdatePassword changes the signed-in account's password.
func (a *Account) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	return a.client.UpdatePassword(ctx, currentPassword, newPassword)
}

package cli

import (
	"context"
	"os"

	"storehub-client/internal/client/access"
	"storehub-client/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is persisted locally, so the next start of the
// program restores it without asking again. All sign-in failures, including
// an unreachable server, are reported as one "check your credentials or try
// again" condition; the session stays anonymous.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn("Sign-in failed: check your credentials, or try again later.")
		return err
	}

	printlnFn("Welcome back,", email)
	return nil
}

// Logout ends the session. It always succeeds from the user's point of view:
// the token is gone from this machine even if the local store misbehaves.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Signup collects the new-account fields, registers the account and signs
// the user in. Field rules are checked before anything is sent, so a typo
// is reported instantly.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name (20-60 characters)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password (8-16 chars, one uppercase, one special)")
	if err != nil {
		return err
	}

	req := api.SignupRequest{Name: name, Email: email, Address: address, Password: password}
	if err := a.account.Signup(ctx, req); err != nil {
		report(err)
		return err
	}

	printlnFn("Account created, you are signed in.")
	return nil
}

// Profile prints the signed-in identity and what it may do.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.Identity()
	if u == nil {
		report(api.ErrAuth)
		return api.ErrAuth
	}

	printlnFn("Name:   ", u.Name)
	printlnFn("Email:  ", u.Email)
	printlnFn("Address:", u.Address)
	printlnFn("Role:   ", string(u.Role))

	caps := access.For(u)
	switch {
	case caps.CanViewAdmin:
		printlnFn("You can manage users and stores (stats, users, astores, adduser, addstore).")
	case caps.CanViewOwnerDashboard:
		printlnFn("You can view your store's dashboard (mystore, dashboard).")
	case caps.CanSubmitRating:
		printlnFn("You can rate stores (rate <storeID> <1..5>).")
	}

	if exp, ok := a.session.TokenExpiry(ctx); ok {
		printlnFn("Session valid until:", exp.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

// Passwd changes the account password. The new password is validated
// locally first; the current one is verified by the service.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout, "New password (8-16 chars, one uppercase, one special)")
	if err != nil {
		return err
	}

	if err := a.account.UpdatePassword(ctx, current, next); err != nil {
		report(err)
		return err
	}

	printlnFn("Password updated.")
	return nil
}

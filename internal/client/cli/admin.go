package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/models"
)

// Stats prints the platform counters of the admin landing screen.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		report(err)
		return err
	}
	printlnFn(fmt.Sprintf("Users: %d  Stores: %d  Ratings: %d",
		stats.UsersCount, stats.StoresCount, stats.RatingsCount))
	return nil
}

// Users re-reads and prints the admin user list. Filter and sort state of
// the list is independent from the store lists.
func (a *App) Users(ctx context.Context) error {
	err := a.admin.Users().Refresh(ctx)
	if err != nil {
		report(err)
	}
	for _, u := range a.admin.Users().Results() {
		printlnFn(renderUser(u))
	}
	return err
}

// AdminStores re-reads and prints the admin store list, owners included.
func (a *App) AdminStores(ctx context.Context) error {
	err := a.admin.Stores().Refresh(ctx)
	if err != nil {
		report(err)
	}
	for _, s := range a.admin.Stores().Results() {
		printlnFn(renderStore(s))
	}
	return err
}

// AddUser collects the fields of a new account, including its role, and
// creates it. On success the user list is re-read by the service, so the
// next 'users' shows the new account.
func (a *App) AddUser(ctx context.Context) error {
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
	role, err := getSimpleText(a.reader, "Enter role (Normal User | Store Owner | System Administrator)", os.Stdout)
	if err != nil {
		return err
	}

	req := api.AddUserRequest{
		Name:     name,
		Email:    email,
		Address:  address,
		Password: password,
		Role:     models.Role(role),
	}
	if err := a.admin.AddUser(ctx, req); err != nil {
		report(err)
		return err
	}

	printlnFn("User created.")
	return nil
}

// AddStore collects the fields of a new store. The owner is either an
// existing user (by id) or a new Store Owner account created together with
// the store.
func (a *App) AddStore(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter store name (20-60 characters)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter store email", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter store address", os.Stdout)
	if err != nil {
		return err
	}

	req := api.AddStoreRequest{Name: name, Email: email, Address: address}

	ownerInput, err := getSimpleText(a.reader, "Enter owner user id (leave empty to create a new owner)", os.Stdout)
	if err != nil {
		return err
	}
	if ownerInput != "" {
		ownerID, err := strconv.ParseInt(ownerInput, 10, 64)
		if err != nil {
			printlnFn("Owner id must be a number.")
			return err
		}
		req.OwnerID = &ownerID
	} else {
		owner, err := a.inputNewOwner()
		if err != nil {
			return err
		}
		req.Owner = owner
	}

	if err := a.admin.AddStore(ctx, req); err != nil {
		report(err)
		return err
	}

	printlnFn("Store created.")
	return nil
}

func (a *App) inputNewOwner() (*api.NewOwner, error) {
	name, err := getSimpleText(a.reader, "Enter owner full name (20-60 characters)", os.Stdout)
	if err != nil {
		return nil, err
	}
	email, err := getSimpleText(a.reader, "Enter owner email", os.Stdout)
	if err != nil {
		return nil, err
	}
	address, err := getSimpleText(a.reader, "Enter owner address", os.Stdout)
	if err != nil {
		return nil, err
	}
	password, err := getPassword(os.Stdout, "Enter owner password (8-16 chars, one uppercase, one special)")
	if err != nil {
		return nil, err
	}
	return &api.NewOwner{Name: name, Email: email, Address: address, Password: password}, nil
}

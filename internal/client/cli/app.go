package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/config"
	"storehub-client/internal/client/repositories/localstore"
	"storehub-client/internal/client/services"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

// App wires the StoreHub client services behind the interactive shell.
// All screens share one session controller, so a login or logout is
// observed everywhere at once.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Controller
	account *services.Account
	browser *services.StoreBrowser
	admin   *services.AdminPanel
	owner   *services.OwnerBoard
	reader  *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := localstore.Open(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	sess := session.NewController(apiClient, db, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		account: services.NewAccount(apiClient, sess, log),
		browser: services.NewStoreBrowser(apiClient, sess, log),
		admin:   services.NewAdminPanel(apiClient, sess, log),
		owner:   services.NewOwnerBoard(apiClient, sess, log),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.close()
	a.session.Resolve(ctx)
	a.Root(ctx)
}

func (a *App) close() {
	a.browser.Close()
	a.admin.Close()
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "error closing local database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Identity() != nil
}

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		if u := a.session.Identity(); u != nil {
			s = u.Email + " " + string(u.Role)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/config"
	"storehub-client/internal/client/listview"
	"storehub-client/internal/client/models"
	"storehub-client/internal/client/services"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

// fakeClient implements api.Client for the shell tests. Responses are
// scripted per method; calls and arguments are recorded for assertions.
type fakeClient struct {
	mu sync.Mutex

	Token string

	LoginToken  string
	LoginErr    error
	ProfileUser *models.User

	StoresResponses [][]models.Store
	StoresErr       error
	StoresQueries   []listview.Query

	SubmitRatingErr error

	AdminStats    *models.DashboardStats
	UsersResponse []models.User
	StoresAdmin   []models.Store
	AddUserReqs   []api.AddUserRequest
	AddStoreReqs  []api.AddStoreRequest
	SignupReqs    []api.SignupRequest
	UpdatePwCalls int

	MyStoreID      int64
	MyStoreErr     error
	DashboardResp  *models.OwnerDashboard
	DashboardErr   error
	DashboardCalls []int64
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.SetToken(f.LoginToken)
	return f.LoginToken, nil
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	return f.ProfileUser, nil
}

func (f *fakeClient) Signup(ctx context.Context, req api.SignupRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupReqs = append(f.SignupReqs, req)
	return &models.User{ID: 99, Email: req.Email, Role: models.RoleNormalUser}, nil
}

func (f *fakeClient) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdatePwCalls++
	return nil
}

func (f *fakeClient) Stores(ctx context.Context, q listview.Query) ([]models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StoresQueries = append(f.StoresQueries, q)
	if f.StoresErr != nil {
		return nil, f.StoresErr
	}
	i := len(f.StoresQueries) - 1
	if i < len(f.StoresResponses) {
		return f.StoresResponses[i], nil
	}
	if len(f.StoresResponses) > 0 {
		return f.StoresResponses[len(f.StoresResponses)-1], nil
	}
	return nil, nil
}

func (f *fakeClient) SubmitRating(ctx context.Context, storeID int64, rating int) error {
	return f.SubmitRatingErr
}

func (f *fakeClient) AdminDashboard(ctx context.Context) (*models.DashboardStats, error) {
	return f.AdminStats, nil
}

func (f *fakeClient) AdminUsers(ctx context.Context, q listview.Query) ([]models.User, error) {
	return f.UsersResponse, nil
}

func (f *fakeClient) AddUser(ctx context.Context, req api.AddUserRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddUserReqs = append(f.AddUserReqs, req)
	return &models.User{ID: 100, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeClient) AdminStores(ctx context.Context, q listview.Query) ([]models.Store, error) {
	return f.StoresAdmin, nil
}

func (f *fakeClient) AddStore(ctx context.Context, req api.AddStoreRequest) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddStoreReqs = append(f.AddStoreReqs, req)
	return &models.Store{ID: 200, Name: req.Name}, nil
}

func (f *fakeClient) MyStore(ctx context.Context) (int64, error) {
	return f.MyStoreID, f.MyStoreErr
}

func (f *fakeClient) OwnerDashboard(ctx context.Context, storeID int64) (*models.OwnerDashboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DashboardCalls = append(f.DashboardCalls, storeID)
	return f.DashboardResp, f.DashboardErr
}

// ------------ helpers ------------

func newTestApp(t *testing.T, fc *fakeClient) *App {
	t.Helper()

	db, err := sql.Open("sqlite", "file:cli_tests_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS localstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	log := testLogger()
	sess := session.NewController(fc, db, log)
	sess.Resolve(context.Background())

	return &App{
		config:  &config.Config{},
		log:     log,
		db:      db,
		session: sess,
		account: services.NewAccount(fc, sess, log),
		browser: services.NewStoreBrowser(fc, sess, log),
		admin:   services.NewAdminPanel(fc, sess, log),
		owner:   services.NewOwnerBoard(fc, sess, log),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func loginAs(t *testing.T, a *App, fc *fakeClient, u *models.User) {
	t.Helper()
	fc.LoginToken = "tok-test"
	fc.ProfileUser = u
	require.NoError(t, a.session.Login(context.Background(), u.Email, "Password1!"))
}

// captureOutput replaces the output seam and collects every printed line.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func containsLine(lines []string, substring string) bool {
	for _, l := range lines {
		if strings.Contains(l, substring) {
			return true
		}
	}
	return false
}

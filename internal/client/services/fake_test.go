package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"storehub-client/internal/client/api"
	"storehub-client/internal/client/listview"
	"storehub-client/internal/client/models"
	"storehub-client/internal/client/session"
	"storehub-client/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

// fakeClient implements api.Client for the service tests. Responses are
// scripted per method; calls and arguments are recorded for assertions.
type fakeClient struct {
	mu sync.Mutex

	Token string

	LoginToken  string
	LoginErr    error
	ProfileUser *models.User
	ProfileErr  error

	StoresResponses [][]models.Store
	StoresErr       error
	StoresQueries   []listview.Query

	SubmitRatingErr   error
	SubmitRatingCalls []struct {
		StoreID int64
		Rating  int
	}

	AdminStats     *models.DashboardStats
	AdminStatsErr  error
	UsersResponse  []models.User
	UsersQueries   []listview.Query
	StoresAdmin    []models.Store
	StoresAdminQs  []listview.Query
	AddUserErr     error
	AddUserReqs    []api.AddUserRequest
	AddStoreErr    error
	AddStoreReqs   []api.AddStoreRequest
	SignupErr      error
	SignupReqs     []api.SignupRequest
	UpdatePwErr    error
	UpdatePwCalls  int
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
	return f.ProfileUser, f.ProfileErr
}

func (f *fakeClient) Signup(ctx context.Context, req api.SignupRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupReqs = append(f.SignupReqs, req)
	if f.SignupErr != nil {
		return nil, f.SignupErr
	}
	return &models.User{ID: 99, Email: req.Email, Role: models.RoleNormalUser}, nil
}

func (f *fakeClient) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdatePwCalls++
	return f.UpdatePwErr
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SubmitRatingCalls = append(f.SubmitRatingCalls, struct {
		StoreID int64
		Rating  int
	}{storeID, rating})
	return f.SubmitRatingErr
}

func (f *fakeClient) AdminDashboard(ctx context.Context) (*models.DashboardStats, error) {
	return f.AdminStats, f.AdminStatsErr
}

func (f *fakeClient) AdminUsers(ctx context.Context, q listview.Query) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UsersQueries = append(f.UsersQueries, q)
	return f.UsersResponse, nil
}

func (f *fakeClient) AddUser(ctx context.Context, req api.AddUserRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddUserReqs = append(f.AddUserReqs, req)
	if f.AddUserErr != nil {
		return nil, f.AddUserErr
	}
	return &models.User{ID: 100, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeClient) AdminStores(ctx context.Context, q listview.Query) ([]models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StoresAdminQs = append(f.StoresAdminQs, q)
	return f.StoresAdmin, nil
}

func (f *fakeClient) AddStore(ctx context.Context, req api.AddStoreRequest) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddStoreReqs = append(f.AddStoreReqs, req)
	if f.AddStoreErr != nil {
		return nil, f.AddStoreErr
	}
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

func (f *fakeClient) ratingCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SubmitRatingCalls)
}

func (f *fakeClient) storesCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.StoresQueries)
}

// sessionWith builds a resolved session whose identity has the given role.
// A nil role yields an anonymous, ready session.
func sessionWith(t *testing.T, fc *fakeClient, u *models.User) *session.Controller {
	t.Helper()
	db, err := sql.Open("sqlite", "file:services_tests_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS localstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	sess := session.NewController(fc, db, testLogger())
	if u == nil {
		sess.Resolve(context.Background())
		return sess
	}

	fc.LoginToken = "tok-test"
	fc.ProfileUser = u
	require.NoError(t, sess.Login(context.Background(), u.Email, "Password1!"))
	return sess
}

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storehub-client/internal/client/listview"
	"storehub-client/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, testLogger())
}

func TestLogin_CapturesAndInstallsToken(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))

	token, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.Equal(t, map[string]string{"email": "a@b.c", "password": "secret"}, gotBody)
	require.Equal(t, "tok-123", c.currentToken())
}

func TestLogin_BadCredentialsIsAuthError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))

	_, err := c.Login(context.Background(), "a@b.c", "nope")
	require.ErrorIs(t, err, ErrAuth)
	require.Contains(t, err.Error(), "invalid credentials")
}

func TestProfile_AttachesBearerToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Someone", "role": "Normal User"})
	}))
	c.SetToken("tok-9")

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 7, u.ID)
}

func TestStores_EncodesQueryVerbatim(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stores", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "S1", q.Get("name"))
		require.Equal(t, "Main", q.Get("address"))
		require.Equal(t, "averageRating", q.Get("orderBy"))
		require.Equal(t, "DESC", q.Get("order"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"S1","averageRating":4.25,"userRating":4}]`))
	}))

	q := listview.Query{
		Filters: map[string]string{"name": "S1", "address": "Main"},
		Sort:    listview.Sort{Field: "averageRating", Direction: listview.Descending},
	}
	stores, err := c.Stores(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.NotNil(t, stores[0].AverageRating)
	require.InDelta(t, 4.25, *stores[0].AverageRating, 0.001)
	require.NotNil(t, stores[0].UserRating)
	require.Equal(t, 4, *stores[0].UserRating)
}

func TestSubmitRating_PostsVerbatimBody(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/ratings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	require.NoError(t, c.SubmitRating(context.Background(), 42, 4))
	require.EqualValues(t, 42, got["storeId"])
	require.EqualValues(t, 4, got["rating"])
}

func TestOwnerDashboard_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"forbidden", http.StatusForbidden, ErrAccessDenied},
		{"missing store", http.StatusNotFound, ErrNotFound},
		{"validation", http.StatusBadRequest, ErrValidation},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/store-owner/dashboard/5", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			_, err := c.OwnerDashboard(context.Background(), 5)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOwnerDashboard_DecodesRatings(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"average":4.5,"ratings":[{"id":1,"rating":5,"User":{"name":"Alice"}}]}`))
	}))

	d, err := c.OwnerDashboard(context.Background(), 1)
	require.NoError(t, err)
	require.InDelta(t, 4.5, d.Average, 0.001)
	require.Len(t, d.Ratings, 1)
	require.Equal(t, 5, d.Ratings[0].Value)
	require.Equal(t, "Alice", d.Ratings[0].Rater.Name)
}

func TestDo_UnreachableServerIsUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 500*time.Millisecond, testLogger())
	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestValidationErrorListMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"msg":"name too short"}]}`))
	}))

	_, err := c.Signup(context.Background(), SignupRequest{})
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "name too short")
}

func TestMyStore(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store-owner/my-store", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":11}`))
	}))

	id, err := c.MyStore(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 11, id)
}

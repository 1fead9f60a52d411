package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"storehub-client/internal/client/listview"
	"storehub-client/internal/client/models"
	"storehub-client/internal/logging"
)

// HTTPClient is the production Client over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the failure payload shape the service emits: either a single
// message or a list of field validation errors.
type errorBody struct {
	Error  string `json:"error"`
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

func (e errorBody) message() string {
	if e.Error != "" {
		return e.Error
	}
	if len(e.Errors) > 0 {
		return e.Errors[0].Msg
	}
	return ""
}

// do executes one request: optional JSON body in, optional JSON value out.
// Transport failures and non-2xx statuses come back already mapped into the
// error taxonomy.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		c.log.Warn(ctx, "request rejected", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode)
		return mapStatus(resp.StatusCode, eb.message())
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
	}
	return nil
}

func mapStatus(status int, msg string) error {
	var base error
	switch status {
	case http.StatusUnauthorized:
		base = ErrAuth
	case http.StatusForbidden:
		base = ErrAccessDenied
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		base = ErrValidation
	default:
		base = ErrUnavailable
	}
	if msg == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, msg)
}

// queryParams encodes a list query onto the wire: filter substrings verbatim
// under their field names plus orderBy/order.
func queryParams(q listview.Query) url.Values {
	params := url.Values{}
	for field, substring := range q.Filters {
		params.Set(field, substring)
	}
	params.Set("orderBy", q.Sort.Field)
	params.Set("order", string(q.Sort.Direction))
	return params
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/auth/update-password", nil, body, nil)
}

func (c *HTTPClient) Stores(ctx context.Context, q listview.Query) ([]models.Store, error) {
	var stores []models.Store
	if err := c.do(ctx, http.MethodGet, "/stores", queryParams(q), nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *HTTPClient) SubmitRating(ctx context.Context, storeID int64, rating int) error {
	body := map[string]any{"storeId": storeID, "rating": rating}
	return c.do(ctx, http.MethodPost, "/ratings", nil, body, nil)
}

func (c *HTTPClient) AdminDashboard(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context, q listview.Query) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", queryParams(q), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AddUser(ctx context.Context, req AddUserRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) AdminStores(ctx context.Context, q listview.Query) ([]models.Store, error) {
	var stores []models.Store
	if err := c.do(ctx, http.MethodGet, "/admin/stores", queryParams(q), nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *HTTPClient) AddStore(ctx context.Context, req AddStoreRequest) (*models.Store, error) {
	var s models.Store
	if err := c.do(ctx, http.MethodPost, "/stores", nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) MyStore(ctx context.Context) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/store-owner/my-store", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *HTTPClient) OwnerDashboard(ctx context.Context, storeID int64) (*models.OwnerDashboard, error) {
	var d models.OwnerDashboard
	path := "/store-owner/dashboard/" + strconv.FormatInt(storeID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

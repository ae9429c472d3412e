// Package client is a typed HTTP client for the genset monitoring API.
//
// Every response travels in the {acknowledge, data, message?} envelope; the
// client unwraps it and surfaces message as the error text when acknowledge is
// false or the status is non-2xx. Session credentials are ambient: the login
// call stores the session cookie in the client's jar and every later request
// carries it automatically. There is no retry, backoff, or caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

// APIError is a request the server answered but refused.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client issues requests against one configured base URL.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base URL. When httpClient is nil a
// default client with a fresh cookie jar is used.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	base := strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient = &http.Client{Jar: jar}
	}

	return &Client{base: base, http: httpClient}, nil
}

type apiEnvelope struct {
	Acknowledge bool            `json:"acknowledge"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
}

// do performs one request and decodes the envelope. out may be nil when the
// caller has no use for data.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if res.StatusCode >= 300 {
			return &APIError{StatusCode: res.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if res.StatusCode >= 300 || !env.Acknowledge {
		return &APIError{StatusCode: res.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and stores the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, loginRequest{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/users/logout", nil, nil, nil)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string `json:"name"`
	NIPP     string `json:"nipp"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Password string `json:"password"`
}

// Register creates an unverified employee account.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveCurrentUser asks the API who the current caller is using the ambient
// session cookie. It returns nil on any failure — 401, network error,
// malformed response — and never an error: an unknown caller and a failed
// check look the same to a protected view.
func (c *Client) ResolveCurrentUser(ctx context.Context) *domain.User {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// ListUsers fetches the full employee directory.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser verifies an employee account.
func (c *Client) ApproveUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/users/approve/"+url.PathEscape(id), nil, nil, nil)
}

// DeleteUser removes an employee account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

// ListStations fetches the station directory.
func (c *Client) ListStations(ctx context.Context) ([]domain.Station, error) {
	var stations []domain.Station
	if err := c.do(ctx, http.MethodGet, "/stations", nil, nil, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// Reading is a telemetry row as served by the monitoring endpoint, including
// the server-derived status.
type Reading struct {
	ID          string    `json:"id"`
	StationCode string    `json:"gensetId"`
	Voltage     float64   `json:"voltage"`
	Current     float64   `json:"currentA"`
	Power       float64   `json:"power"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListReadings fetches telemetry readings, optionally filtered server-side by
// station code.
func (c *Client) ListReadings(ctx context.Context, stationCode string) ([]Reading, error) {
	var query url.Values
	if stationCode != "" {
		query = url.Values{"stationCode": {stationCode}}
	}
	var readings []Reading
	if err := c.do(ctx, http.MethodGet, "/genset-monitoring", query, nil, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// ListNotifications fetches one user's notifications.
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var items []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(userID), nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkNotificationRead flips one notification's read flag.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/notifications/read/"+url.PathEscape(id), nil, nil, nil)
}

// Summary fetches the dashboard card counts.
func (c *Client) Summary(ctx context.Context) (*domain.Summary, error) {
	var sum domain.Summary
	if err := c.do(ctx, http.MethodGet, "/notifications/summary/data", nil, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

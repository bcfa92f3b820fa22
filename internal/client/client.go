// Package client is the programmatic API client for the Pulse backend. It
// carries the session token explicitly, and its View type implements the
// resource list-view data flow: authenticated load, client-side
// filter/search/pagination, debounced search, and single-flight optimistic
// mutations with rollback.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"pulse-backend/internal/models"
)

var (
	// ErrUnauthorized is returned for any 401 response; callers are
	// expected to redirect to the login entry point, not retry.
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotLoggedIn = errors.New("not logged in")
)

// Session is the only shared client-side state: the token and a minimal
// profile projection, written at login and cleared as a unit at logout.
type Session struct {
	Token   string
	Profile models.Profile
}

// APIError carries the server's message for a non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the Pulse REST API
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a client for the given base URL, e.g. "http://localhost:8080"
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Session returns the current session, or nil if not logged in
func (c *Client) Session() *Session {
	return c.session
}

type loginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    models.Profile `json:"user"`
}

// Login authenticates and stores the resulting session on the client
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	c.session = &Session{Token: out.Token, Profile: out.User}
	return c.session, nil
}

// Logout clears the session. Tokens are stateless, so this is purely a
// client-side discard; token and profile are invalidated together.
func (c *Client) Logout() {
	c.session = nil
}

// do issues an authenticated request and decodes the JSON response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.session == nil {
		return ErrNotLoggedIn
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Load fetches the full session-scoped collection from a list endpoint
func Load[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Mutate sends a mutation and returns the canonical updated item
func Mutate[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var item T
	if err := c.do(ctx, method, path, body, &item); err != nil {
		return item, err
	}
	return item, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Server error"}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}

	return apiErr
}

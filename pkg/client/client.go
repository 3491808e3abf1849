// Package client is a Go client for the fitness tracker REST API. It keeps
// the bearer token of the logged-in user and, for workouts and progress, a
// per-user copy of the last fetched list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client talks to one API server. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *Cache

	mu    sync.RWMutex
	token string
	user  *User

	Diets     *Resource[DietPlan]
	Workouts  *Resource[WorkoutPlan]
	Progress  *Resource[Progress]
	Reminders *Resource[Reminder]
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache shares a cache between clients. Each client gets its own otherwise.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithToken starts the client already authenticated.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for baseURL, e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, o := range opts {
		o(c)
	}
	if c.cache == nil {
		c.cache = NewCache()
	}

	c.Diets = &Resource[DietPlan]{client: c, path: "/api/diets"}
	c.Workouts = &Resource[WorkoutPlan]{client: c, path: "/api/workouts", cached: true}
	c.Progress = &Resource[Progress]{client: c, path: "/api/progress", cached: true}
	c.Reminders = &Resource[Reminder]{client: c, path: "/api/reminders"}
	return c, nil
}

// Register creates an account and logs in as it.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/users/register", body, &resp); err != nil {
		return nil, err
	}
	c.setSession(resp.Token, &resp.User)
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &resp); err != nil {
		return nil, err
	}
	c.setSession(resp.Token, &resp.User)
	return &resp.User, nil
}

// Logout forgets the token and everything cached for the session, including
// lists stored under the bare token before Me resolved the user.
func (c *Client) Logout() {
	c.mu.Lock()
	keys := []string{c.token}
	if c.user != nil {
		keys = append(keys, c.user.ID)
	}
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	for _, key := range keys {
		if key != "" {
			c.cache.Forget(key)
		}
	}
}

// Me fetches the profile behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	if c.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &u); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = &u
	c.mu.Unlock()
	return &u, nil
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// User returns the logged-in user, or nil.
func (c *Client) User() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

func (c *Client) setSession(token string, u *User) {
	c.mu.Lock()
	c.token = token
	c.user = u
	c.mu.Unlock()
}

// principal is the cache key of the current session. Sessions built from a
// bare token share the token itself until Me resolves the user.
func (c *Client) principal() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.principalLocked()
}

func (c *Client) principalLocked() string {
	if c.user != nil {
		return c.user.ID
	}
	return c.token
}

// do sends body as JSON and decodes a 2xx answer into out. Anything else
// becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

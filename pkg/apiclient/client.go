package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/immogest/immogest-backend/internal/dashboard"
	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/config"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/types"
)

const responseBodyReadLimit int64 = 4096

// Client talks to the Immogest API and feeds the client-side state core.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	token string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds an API client from configuration.
func NewClient(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken drops the bearer token after logout.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        users.UserDTO `json:"user"`
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.AccessToken)
	return &result, nil
}

// Logout revokes the server session and drops the local token either way.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.ClearToken()
	return err
}

// Dashboard fetches the initial page payload.
func (c *Client) Dashboard(ctx context.Context) (*dashboard.Payload, error) {
	var payload dashboard.Payload
	if _, err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GlobalPermissions fetches the caller's scope permissions. It satisfies the
// state core's permission fetcher.
func (c *Client) GlobalPermissions(ctx context.Context) (permissions.GlobalPermissions, error) {
	var perms permissions.GlobalPermissions
	if _, err := c.do(ctx, http.MethodGet, "/api/dashboard/permissions", nil, &perms); err != nil {
		return perms, err
	}
	return perms, nil
}

// do executes one API call. 2xx responses decode the success envelope into
// out. Validation failures come back as the field-error map with a nil
// error so forms can stay open; every other failure is a typed error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (map[string]string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil, nil
		}
		envelope := types.SuccessEnvelope{Data: out}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&envelope); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response")
		}
		return nil, nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error.Code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if envelope.Error.Code == string(pkgerrors.CodeValidation) && len(envelope.Error.Details) > 0 {
		return envelope.Error.Details, nil
	}

	return nil, pkgerrors.New(pkgerrors.Code(envelope.Error.Code), envelope.Error.Message)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fintrack-labs/fintrack-go/config"
	"github.com/fintrack-labs/fintrack-go/logger"
	"github.com/fintrack-labs/fintrack-go/models"
)

// Client dispatches authenticated JSON requests against the Fintrack backend.
// On a 401 it attempts exactly one token refresh and, if that succeeds,
// replays the original request once; otherwise it clears both tokens, fires
// OnSessionExpired and fails with ErrSessionExpired.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenStore

	// OnSessionExpired is the client-side analogue of the browser redirect
	// to the login screen. Optional.
	OnSessionExpired func()

	log *zap.Logger
}

func New(cfg config.ClientConfig) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Tokens:     NewFileTokenStore(cfg.TokenFile, cfg.TokenKey),
		log:        logger.Get(),
	}
}

// NewWithTokens builds a client around an explicit token store. Used by tests
// and by programs that manage persistence themselves.
func NewWithTokens(baseURL string, tokens TokenStore) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Tokens:     tokens,
		log:        logger.Get(),
	}
}

// Do performs one authenticated JSON call. body, when non-nil, is marshalled
// as the JSON request body; out, when non-nil, receives the decoded response.
// headers are merged over the defaults, caller values winning.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	return c.do(ctx, method, path, body, out, headers, false)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, nil)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out, nil)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out, nil)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, headers map[string]string, retried bool) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token := c.Tokens.GetAccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if !retried && c.refresh(ctx) {
			return c.do(ctx, method, path, body, out, headers, true)
		}
		if err := c.Tokens.ClearTokens(); err != nil {
			c.log.Warn("failed to clear tokens", zap.Error(err))
		}
		if c.OnSessionExpired != nil {
			c.OnSessionExpired()
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Refresh exchanges the stored refresh token for a new pair, reporting
// whether it succeeded. The dispatcher calls this at most once per failed
// request; it is exported for callers that want to renew a session eagerly.
func (c *Client) Refresh(ctx context.Context) bool {
	return c.refresh(ctx)
}

// refresh exchanges the stored refresh token for a new pair. It reports
// failure without touching the stored tokens; the caller decides what a
// failed refresh means.
func (c *Client) refresh(ctx context.Context) bool {
	refreshToken := c.Tokens.GetRefreshToken()
	if refreshToken == "" {
		return false
	}

	data, err := json.Marshal(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/refresh/", bytes.NewReader(data))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.Warn("token refresh failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("token refresh rejected", zap.Int("status", resp.StatusCode))
		return false
	}

	var pair models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return false
	}
	if err := c.Tokens.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		c.log.Warn("failed to persist refreshed tokens", zap.Error(err))
		return false
	}

	c.log.Debug("access token refreshed")
	return true
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: GenericErrorDetail}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		apiErr.Detail = parsed.Detail
	}
	return apiErr
}

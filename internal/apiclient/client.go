// Package apiclient is the typed HTTP client for the invoicing backend. Every
// hard concern — persistence, auth issuance, PDF generation, email delivery,
// currency rates — lives behind this contract; the rest of the application
// only sees typed requests and responses.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"invoicer/internal/token"
	"invoicer/pkg/logging"
)

const refreshPath = "/api/v1/auth/refresh"

// ErrSessionExpired signals that the access token expired and the refresh
// attempt failed too. Local credentials are already cleared when this is
// returned; the caller must surface a logged-out state.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError carries a non-2xx backend response. Detail is the server-provided
// message when one was present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Detail)
}

// Client talks to the backend with bearer authentication and a single
// refresh-and-retry on 401.
type Client struct {
	hc      *http.Client
	baseURL string
	tokens  *token.Store
	log     *slog.Logger

	// refreshMu serializes refresh attempts so concurrent 401s trigger one
	// refresh, not a stampede.
	refreshMu sync.Mutex
}

// New builds a client for the backend at baseURL.
func New(baseURL string, tokens *token.Store, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		tokens:  tokens,
		log:     logger.With(logging.Module("apiclient")),
	}
}

// do performs a JSON request. out may be nil for endpoints without a response
// body. On 401 it refreshes once and retries; a second 401 (or a failed
// refresh) clears the stored tokens and returns ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != refreshPath {
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, raw, err = c.send(ctx, method, path, query, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.tokens.Clear()
			return ErrSessionExpired
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if access := c.tokens.AccessToken(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	t1 := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("request failed", slog.String("method", method), slog.String("path", path), logging.Err(err))
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	c.log.Debug("backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(t1)))

	return resp, raw, nil
}

// refresh exchanges the stored refresh token for a new pair. Failure clears
// the stored credentials: the session is over.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		_ = c.tokens.Clear()
		return ErrSessionExpired
	}

	var tokens TokenResponse
	err := c.do(ctx, http.MethodPost, refreshPath, nil, RefreshRequest{RefreshToken: refreshToken}, &tokens)
	if err != nil {
		c.log.Warn("token refresh failed", logging.Err(err))
		_ = c.tokens.Clear()
		return ErrSessionExpired
	}

	if err := c.tokens.Set(token.Pair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}); err != nil {
		return err
	}
	c.log.Info("access token refreshed")
	return nil
}

// doRaw performs a request expecting a binary response (PDF download).
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	resp, raw, err := c.send(ctx, method, path, nil, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
		resp, raw, err = c.send(ctx, method, path, nil, nil)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.tokens.Clear()
			return nil, ErrSessionExpired
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

func parseAPIError(status int, raw []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return &APIError{Status: status, Detail: payload.Detail}
	}
	return &APIError{Status: status, Detail: http.StatusText(status)}
}

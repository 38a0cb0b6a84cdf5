// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/session"
)

// Configuration constants for the WellBot API.
const (
	// DefaultBaseURL is the development server origin.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout is the transport-level timeout for API requests.
	// There is no per-call deadline on top of this; a hung call is bounded
	// by the transport alone.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// Connection pooling is shared by every client instance.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnauthorized indicates the server rejected the credentials or token.
// Session state is left unchanged when this is returned; there is no
// partial login.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the server. Detail carries the
// server's "detail" field verbatim when it was present.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server error (HTTP %d)", e.Status)
}

// Is reports 401 responses as ErrUnauthorized, so callers can write
// errors.Is(err, api.ErrUnauthorized) without losing the verbatim detail.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Detail extracts the server-provided detail from err, or the error's own
// message for transport failures. The result is shown to the user verbatim.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

// errorBody is the FastAPI error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the WellBot server. Tokens are read from the session
// store on every call, so a login on one screen is immediately visible to
// the next.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
	tokens     session.Store
	log        zerolog.Logger
}

// NewClient creates a client for the given base URL, reading bearer tokens
// from tokens.
func NewClient(baseURL string, tokens session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   DefaultTimeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// WithTimeout sets the transport-level request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c
}

// SetBaseURL swaps the server origin. Called when the config file is
// reloaded; in-flight requests keep the URL they were issued with.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// BaseURL returns the current server origin.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// =============================================================================
// AUTH ENDPOINTS
// =============================================================================

// Login authenticates a regular user. The returned token is not stored;
// the caller decides when the session becomes real.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/login", "", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The server responds with an
// acknowledgement only; the caller seeds the user from the submitted form.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminLogin authenticates the admin.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", "", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// USER ENDPOINTS
// =============================================================================

// Chat sends a message to the wellness bot and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat", session.RoleUser, ChatRequest{Message: message}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitFeedback sends a rating and optional review.
func (c *Client) SubmitFeedback(ctx context.Context, rating, review string) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/feedback", session.RoleUser, FeedbackRequest{Rating: rating, Review: review}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile updates the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/update", session.RoleUser, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// ADMIN ENDPOINTS
// =============================================================================

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*model.Stats, error) {
	var resp model.Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats", session.RoleAdmin, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LatestReviews fetches the most recent feedback entries.
func (c *Client) LatestReviews(ctx context.Context) (*ReviewsResponse, error) {
	var resp ReviewsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/latest-reviews", session.RoleAdmin, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// KnowledgeBase fetches every disease entry.
func (c *Client) KnowledgeBase(ctx context.Context) (*KnowledgeBaseResponse, error) {
	var resp KnowledgeBaseResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/knowledge-base", session.RoleAdmin, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddDisease creates a knowledge base entry.
func (c *Client) AddDisease(ctx context.Context, d model.Disease) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/add-disease", session.RoleAdmin, d, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditDisease replaces the entry identified by name in the URL path.
func (c *Client) EditDisease(ctx context.Context, name string, d model.Disease) (*MessageResponse, error) {
	var resp MessageResponse
	path := "/api/admin/edit-disease/" + url.PathEscape(name)
	if err := c.doJSON(ctx, http.MethodPut, path, session.RoleAdmin, d, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDisease removes the entry identified by name.
func (c *Client) DeleteDisease(ctx context.Context, name string) (*MessageResponse, error) {
	var resp MessageResponse
	path := "/api/admin/delete-disease/" + url.PathEscape(name)
	if err := c.doJSON(ctx, http.MethodDelete, path, session.RoleAdmin, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// doJSON performs one HTTP round trip: marshal body, attach the role's
// bearer token when role is non-empty, read the size-limited response, and
// decode either the success shape into out or the error detail into an
// APIError. No retries; manual resubmission is the only retry path.
func (c *Client) doJSON(ctx context.Context, method, path string, role session.Role, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "wellbot-tui/1.0")

	if role != "" {
		if token, ok := c.tokens.Token(role); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	// Never log headers or bodies: they carry tokens and health data.
	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	if err != nil {
		c.log.Warn().Str("path", path).Err(err).Msg("api transport failure")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := readResponse(resp)
	if err != nil {
		return err
	}

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// readResponse reads the body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// handleErrorResponse converts a non-2xx response into a typed error. The
// "detail" field, when parseable, is preserved verbatim for display.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{Status: statusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		apiErr.Detail = eb.Detail
	} else if len(body) > 0 {
		apiErr.Detail = strings.TrimSpace(string(body))
	}

	return apiErr
}

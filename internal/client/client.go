package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/retry"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

// Client talks to the case API over HTTP. Only Login is retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
	retryOpts  []retry.Option
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRetry(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

func New(baseURL string, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    log,
		retryOpts: []retry.Option{retry.WithMaxAttempts(3)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type LoginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	err := retry.Do(ctx, func() error {
		err := c.send(ctx, http.MethodPost, "/api/auth/login", "", body, &out)
		if err != nil && !retryable(err) {
			return retry.Permanent(err)
		}
		return err
	}, c.retryOpts...)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportCases posts records to the bulk import endpoint exactly once. The
// call is not idempotent: a lost response may still have stored the records,
// so resubmitting is left to the caller.
func (c *Client) ImportCases(ctx context.Context, bearer string, records []domain.CaseRecord) (*domain.ImportResult, error) {
	var out domain.ImportResult
	body := map[string]interface{}{"cases": records}
	if err := c.send(ctx, http.MethodPost, "/api/cases/import", bearer, body, &out); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmission, err)
	}
	return &out, nil
}

// transportError is a request that never produced an HTTP response.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// retryable reports whether a failed send may be repeated: transport
// failures and 5xx answers.
func retryable(err error) bool {
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode >= 500
}

// send performs one request.
func (c *Client) send(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if traceID := logger.GetTraceID(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "Request failed", "method", method, "path", path, "error", err)
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %v", domain.ErrUnauthenticated, statusErr)
		}
		if resp.StatusCode >= 500 {
			c.logger.Warn(ctx, "Server error", "method", method, "path", path, "status", resp.StatusCode)
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// ExpiryValidator rejects tokens that are malformed or already expired
// without contacting the server.
type ExpiryValidator struct {
	Now func() time.Time
}

func (v ExpiryValidator) ValidateToken(ctx context.Context, tokenString string) error {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	_, err := token.CheckUnverified(tokenString, now())
	return err
}

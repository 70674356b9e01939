// Package backend is the HTTP client for the judgments REST API.
// Every failed call returns a *domain.APIError whose Kind is derived from
// the HTTP status.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/pkg/ctxutil"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// transportMessage is shown to users when the backend cannot be reached.
const transportMessage = "Could not reach the server"

// Client calls the judgments backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. baseURL must already include the "/api" prefix.
func New(baseURL string, timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "backend"),
	}
}

// response is a fully read backend reply.
type response struct {
	status int
	body   []byte
}

// do sends a JSON request and decodes a JSON reply into out. A nil out,
// a 204 status, or an empty body leave out untouched.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return c.doWithFallback(ctx, method, path, in, out, "")
}

// doWithFallback is do with a custom message for error replies that carry
// no JSON "error" field. An empty fallback means "HTTP <status>".
func (c *Client) doWithFallback(ctx context.Context, method, path string, in, out any, fallback string) error {
	resp, err := c.send(ctx, method, path, in)
	if err != nil {
		return err
	}

	if resp.status < 200 || resp.status > 299 {
		return c.statusError(ctx, method, path, resp, fallback)
	}

	if out == nil || resp.status == http.StatusNoContent || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &domain.APIError{
			Kind:    domain.ErrorKindOther,
			Status:  resp.status,
			Message: "Unexpected response from server",
			Err:     fmt.Errorf("backend: decode %s %s: %w", method, path, err),
		}
	}
	return nil
}

// send performs the request and reads the whole body. Only transport
// failures are returned as errors; any HTTP status is a valid response.
func (c *Client) send(ctx context.Context, method, path string, in any) (*response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backend: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token := ctxutil.TokenFromCtx(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			c.log.ErrorContext(ctx, "backend request failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		return nil, &domain.APIError{
			Kind:    domain.ErrorKindTransport,
			Message: transportMessage,
			Err:     fmt.Errorf("backend: %s %s: %w", method, path, err),
		}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.APIError{
			Kind:    domain.ErrorKindTransport,
			Status:  resp.StatusCode,
			Message: transportMessage,
			Err:     fmt.Errorf("backend: read body: %w", err),
		}
	}

	c.log.DebugContext(ctx, "backend response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return &response{status: resp.StatusCode, body: b}, nil
}

func (c *Client) statusError(ctx context.Context, method, path string, resp *response, fallback string) error {
	msg := errorField(resp.body)
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = "HTTP " + strconv.Itoa(resp.status)
	}

	kind := domain.KindFromStatus(resp.status)
	if kind == domain.ErrorKindServer {
		c.log.WarnContext(ctx, "backend error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.status),
			slog.String("message", msg),
		)
	}

	return &domain.APIError{Kind: kind, Status: resp.status, Message: msg}
}

// errorField extracts the "error" string from a JSON error body.
func errorField(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}

// Ping reports whether the backend answers HTTP at all. Any status counts
// as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("backend: create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: ping: %w", err)
	}
	resp.Body.Close()
	return nil
}

// IsTransport reports whether err means the backend could not be reached.
func IsTransport(err error) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr) && apiErr.Kind == domain.ErrorKindTransport
}

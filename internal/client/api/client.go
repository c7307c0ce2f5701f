// Package api is the typed HTTP transport the client core uses to reach the
// todo server. Failures are never retried here; the caller decides.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/pkg/ctxutil"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 16 << 10

// Client talks to the REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout means requests are bounded
// only by their context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a Client on a caller-provided http.Client (for testing).
func NewClientWithHTTP(baseURL string, hc *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		log:        logger.With("adapter", "api"),
	}
}

type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	ctx, requestID := ctxutil.EnsureRequestID(ctx)
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(ctxutil.RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "api request failed",
			slog.String("op", op),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api response",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		te := &TransportError{Op: op, Status: resp.StatusCode}
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			te.Message = eb.Error
			te.Fields = eb.Fields
		} else {
			te.Message = strings.TrimSpace(string(raw))
		}
		return te
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

func sourcePath(src domain.Source) (string, error) {
	switch src.Kind {
	case domain.SourceDay:
		return "/todos/day/" + url.PathEscape(src.Date), nil
	case domain.SourceList:
		return "/todos/list/" + url.PathEscape(src.TabID) + "/" + url.PathEscape(src.ListID), nil
	default:
		return "", domain.NewValidationError("source", "invalid source")
	}
}

// Package client calls the flashcard generation endpoint over HTTP.
package client

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
	"strings"

	"github.com/phrazzld/flashdeck/internal/viewer"
)

// GeneratePath is the endpoint path relative to the server URL.
const GeneratePath = "/api/generate-flashcards"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

var (
	// ErrRequestFailed is returned when the server answers with a non-2xx status.
	ErrRequestFailed = errors.New("flashcard request failed")

	// ErrInvalidResponse is returned when a 2xx body does not carry an array
	// of flashcards.
	ErrInvalidResponse = errors.New("invalid flashcard response")
)

// Client talks to a flashdeck server.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the server at serverURL.
func New(serverURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", serverURL)
	}

	c := &Client{
		endpoint:   strings.TrimRight(u.String(), "/") + GeneratePath,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "flashcard_client")
	return c, nil
}

type generateRequest struct {
	Topic string `json:"topic"`
}

type generateResponse struct {
	Flashcards json.RawMessage `json:"flashcards"`
	Error      string          `json:"error"`
}

// GenerateFlashcards asks the server for a deck about topic. Any failure,
// including a well-formed response without an array of flashcards, is an
// error; callers show no cards in that case.
func (c *Client) GenerateFlashcards(ctx context.Context, topic string) ([]viewer.Flashcard, error) {
	body, err := json.Marshal(generateRequest{Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	traceID := resp.Header.Get("X-Trace-ID")

	var decoded generateResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := decoded.Error
		if decodeErr != nil || message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		c.logger.DebugContext(ctx, "server rejected request",
			"status_code", resp.StatusCode,
			"trace_id", traceID)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, message)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
	}

	trimmed := bytes.TrimSpace(decoded.Flashcards)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: flashcards is not an array", ErrInvalidResponse)
	}

	var cards []viewer.Flashcard
	if err := json.Unmarshal(trimmed, &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.logger.DebugContext(ctx, "flashcards received",
		"card_count", len(cards),
		"trace_id", traceID)
	return cards, nil
}

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Envelope status values used by every backend endpoint.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const maxResponseBytes = 1 << 20

// TokenSource supplies the bearer credential attached to outgoing requests.
// Absence of a token means the request goes out unauthenticated.
type TokenSource interface {
	AccessToken() (string, bool)
}

// Envelope is the backend's standard response shape. Data stays raw until a
// typed endpoint method decodes it.
type Envelope struct {
	Status  string              `json:"status"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`

	httpStatus int
}

// APIError is a request the server answered with an error envelope. Message
// carries the server's message verbatim for user display; Fields carries
// per-field validation errors when present.
type APIError struct {
	Message    string
	Fields     map[string][]string
	HTTPStatus int
}

func (e *APIError) Error() string {
	return e.Message
}

// Client issues envelope requests against one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the given base URL. httpClient may be nil,
// in which case [http.DefaultClient] is used. tokens may be nil for a client
// that never authenticates.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}, nil
}

// do sends a request with the access token from the client's token source.
func (c *Client) do(ctx context.Context, method, path string, body any) (Envelope, error) {
	bearer := ""
	if c.tokens != nil {
		if tok, ok := c.tokens.AccessToken(); ok {
			bearer = tok
		}
	}
	return c.doWithBearer(ctx, method, path, body, bearer)
}

// doWithBearer sends a request with an explicit bearer credential. The
// refresh endpoint authenticates with the refresh token rather than the
// access token, so the caller picks.
func (c *Client) doWithBearer(ctx context.Context, method, path string, body any, bearer string) (Envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Envelope{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Envelope{}, fmt.Errorf("read response body: %w", err)
	}

	env, parseErr := parseEnvelope(raw)
	if parseErr != nil {
		env = Envelope{
			Status:  StatusError,
			Data:    json.RawMessage("{}"),
			Message: "invalid response",
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		env.Status = StatusError
		if len(env.Data) == 0 {
			env.Data = json.RawMessage("{}")
		}
		if env.Message == "" {
			env.Message = fmt.Sprintf("request failed: %d", resp.StatusCode)
		}
	}

	env.httpStatus = resp.StatusCode
	return env, nil
}

// parseEnvelope is the explicit fallible parse step: either a decoded
// envelope or an error, never a best-effort partial object.
func parseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Status != StatusSuccess && env.Status != StatusError {
		return Envelope{}, fmt.Errorf("unknown envelope status %q", env.Status)
	}
	return env, nil
}

// decodeSuccess converts an envelope into the typed payload out, turning
// error envelopes into *APIError.
func decodeSuccess(env Envelope, fallbackMessage string, out any) error {
	if env.Status != StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = fallbackMessage
		}
		return &APIError{Message: msg, Fields: env.Errors, HTTPStatus: env.httpStatus}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("decode payload: empty data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/tokenstore"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var ErrInvalidResponse = errors.New("api: response is not valid JSON")

type Config struct {
	// BaseURL is the API root, e.g. https://host/api. Paths are appended verbatim.
	BaseURL    string
	HTTPClient *http.Client
	Tokens     tokenstore.Store
	Logger     *zap.Logger
	Observer   Observer
}

// Client dispatches every backend call and owns the bearer token.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   tokenstore.Store
	logger   *zap.Logger
	observer Observer

	mu    sync.RWMutex
	token string
}

// New builds a client and loads any previously stored token.
func New(cfg Config) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     cfg.HTTPClient,
		tokens:   cfg.Tokens,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if c.http == nil {
		c.http = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if c.tokens == nil {
		c.tokens = tokenstore.NewMemoryStore("")
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.observer == nil {
		c.observer = nopObserver{}
	}

	token, err := c.tokens.Load()
	if err != nil {
		c.logger.Warn("stored token unreadable, starting signed out", zap.Error(err))
	}
	c.token = token

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken persists token and then holds it in memory. A failed save
// leaves the previous token in place.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tokens.Save(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	c.token = token
	return nil
}

// ClearToken forgets the token in memory and in the durable store.
func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := c.tokens.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (c *Client) CurrentToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Authenticated is a local guess only; a 401 from the server is authoritative.
func (c *Client) Authenticated(now time.Time) bool {
	token, ok := c.CurrentToken()
	return ok && TokenValid(token, now)
}

// Request sends one JSON request to baseURL+path and returns the raw 2xx body.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, "request", method, path, body)
}

// Call dispatches facade.name from the endpoint table and returns the
// payload with any {data: ...} envelope removed.
func (c *Client) Call(ctx context.Context, facade, name string, args Args) (json.RawMessage, error) {
	endpoint, ok := Lookup(facade, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownEndpoint, facade, name)
	}
	path, err := endpoint.Expand(args)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, facade+"."+name, endpoint.Method, path, args.Body)
	if err != nil {
		return nil, err
	}
	return Unwrap(raw), nil
}

// Invoke is Call followed by decoding into T.
func Invoke[T any](ctx context.Context, c *Client, facade, name string, args Args) (T, error) {
	raw, err := c.Call(ctx, facade, name, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](raw)
}

func (c *Client) do(ctx context.Context, label, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token, ok := c.CurrentToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observer.Observe(label, method, 0, time.Since(start))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	c.observer.Observe(label, method, resp.StatusCode, duration)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api request",
		zap.String("endpoint", label),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
		zap.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newStatusError(resp.StatusCode, statusText(resp), data)
		if apiErr.Kind == KindAuthenticationFailed {
			if err := c.ClearToken(); err != nil {
				c.logger.Error("failed to clear token after 401", zap.Error(err))
			}
		}
		c.logger.Warn("api request failed",
			zap.String("endpoint", label),
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(apiErr.Kind)),
			zap.String("message", apiErr.Message),
			zap.String("request_id", requestID),
		)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return jsonNull, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrInvalidResponse)
	}
	return data, nil
}

// statusText is the reason phrase of resp.Status ("404 Not Found" -> "Not Found").
func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

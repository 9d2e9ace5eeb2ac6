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
	"time"

	"github.com/google/uuid"

	"github.com/usestring/wetrace/pkg/contenttype"
)

// DefaultBaseURL is the default base URL for the Wetrace API.
const DefaultBaseURL = "http://127.0.0.1:5200/api/v1"

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "wetrace-go"

// Client is a Wetrace API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new Wetrace API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is a successful API response.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsFile reports whether the response carries a file download rather than JSON.
func (r *Response) IsFile() bool {
	return contenttype.IsFile(r.ContentType)
}

// Decode returns the body as raw bytes for file downloads and as a decoded
// JSON value otherwise. Numbers are kept as json.Number. A text/* body that
// is not JSON is returned as a string.
func (r *Response) Decode() (any, error) {
	category := contenttype.Classify(r.ContentType)
	if category == contenttype.File {
		return r.Body, nil
	}
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}
	v, err := decodeJSON(r.Body)
	if err != nil {
		if category == contenttype.Text {
			return string(r.Body), nil
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return v, nil
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// Do performs a single request against the API. The path is joined to the
// base URL and query is URL-encoded when non-empty. Non-2xx statuses are
// returned as *APIError and transport failures as *ConnectionError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values) (*Response, error) {
	start := time.Now()

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, &ConnectionError{Reason: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp)
		slog.Debug("HTTP request returned error",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Reason: err}
	}

	slog.Debug("HTTP request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// request performs a request and returns raw bytes for file downloads or the
// decoded JSON body otherwise.
func (c *Client) request(ctx context.Context, method, path string, query url.Values) (any, error) {
	resp, err := c.Do(ctx, method, path, query)
	if err != nil {
		return nil, err
	}
	return resp.Decode()
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.request(ctx, http.MethodGet, path, query)
}

// download performs a GET and returns the body untouched regardless of its
// declared content type; text exports (html, txt, csv) arrive as text/*.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// parseError extracts an APIError from an error response.
func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: *errResp.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
}

// unwrapURLError strips the *url.Error wrapper so the reason reads like the
// underlying dial or read failure.
func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok && ue.Err != nil {
		return ue.Err
	}
	return err
}

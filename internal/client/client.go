// Package client wraps the upstream admin API behind a flat table of named
// operations. Every call returns the upstream envelope or an error; there is
// no retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/admin-console/internal/config"
)

type tokenKey struct{}

// WithToken returns a context whose calls authenticate with token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Response is the upstream envelope. Total, Page and PageSize are set on
// paged list responses only.
type Response struct {
	Code     int             `json:"code"`
	Msg      string          `json:"msg"`
	Data     json.RawMessage `json:"data,omitempty"`
	Total    *int            `json:"total,omitempty"`
	Page     *int            `json:"page,omitempty"`
	PageSize *int            `json:"page_size,omitempty"`
}

// Decode unmarshals the envelope data into v. Empty data leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client calls the upstream API.
type Client struct {
	http        *http.Client
	baseURL     string
	tokenHeader string
	maxResponse int64
	logger      *slog.Logger
}

// New creates a Client from the upstream configuration.
func New(cfg *config.UpstreamConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: cfg.TimeoutDuration()},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		tokenHeader: cfg.TokenHeader,
		maxResponse: cfg.MaxResponseSizeBytes(),
		logger:      logger.With("system", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call invokes the named operation with input as its query or body.
func (c *Client) Call(ctx context.Context, op string, input any) (*Response, error) {
	ep, ok := Operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	resp, err := c.Do(ctx, ep, input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// Do sends input to ep and decodes the envelope.
func (c *Client) Do(ctx context.Context, ep Endpoint, input any) (*Response, error) {
	req, err := c.newRequest(ctx, ep, input)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("upstream request", "method", ep.Method, "path", ep.Path)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ep.Method, ep.Path, err)
	}
	defer res.Body.Close()

	limit := c.limit()
	body, err := io.ReadAll(io.LimitReader(res.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%s %s: %w (%d bytes)", ep.Method, ep.Path, ErrResponseTooLarge, limit)
	}

	var env Response
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return nil, &APIError{Method: ep.Method, Path: ep.Path, Status: res.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", jsonErr)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 || env.Code != http.StatusOK {
		return nil, &APIError{
			Method: ep.Method,
			Path:   ep.Path,
			Status: res.StatusCode,
			Code:   env.Code,
			Msg:    env.Msg,
		}
	}

	return &env, nil
}

func (c *Client) newRequest(ctx context.Context, ep Endpoint, input any) (*http.Request, error) {
	target := c.baseURL + ep.Path

	var body io.Reader
	switch ep.Method {
	case http.MethodGet, http.MethodDelete:
		values, err := queryValues(input)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			target += "?" + values.Encode()
		}
	default:
		if input == nil {
			input = struct{}{}
		}
		data, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if !ep.NoToken {
		token := TokenFromContext(ctx)
		if token == "" {
			return nil, ErrMissingToken
		}
		req.Header.Set(c.tokenHeader, token)
	}

	return req, nil
}

func (c *Client) limit() int64 {
	if c.maxResponse > 0 {
		return c.maxResponse
	}
	return 10 << 20
}

// queryValues flattens input into query parameters. Structs and maps are
// taken through their JSON form so json tags name the parameters; nil and
// empty values are omitted.
func queryValues(input any) (url.Values, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return v, nil
	case map[string]string:
		values := url.Values{}
		for k, s := range v {
			if s != "" {
				values.Set(k, s)
			}
		}
		return values, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("query input must be an object: %w", err)
	}

	values := url.Values{}
	for k, f := range fields {
		switch fv := f.(type) {
		case nil:
		case string:
			if fv != "" {
				values.Set(k, fv)
			}
		case float64:
			values.Set(k, strconv.FormatFloat(fv, 'f', -1, 64))
		case bool:
			values.Set(k, strconv.FormatBool(fv))
		default:
			raw, err := json.Marshal(fv)
			if err != nil {
				return nil, fmt.Errorf("encode query %s: %w", k, err)
			}
			values.Set(k, string(raw))
		}
	}
	return values, nil
}
